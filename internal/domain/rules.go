// Package domain provides the pure types and fixed rule tables for prompt
// template validation.
package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionRule describes a required section heading.
type SectionRule struct {
	// Name is the section identifier in snake_case (e.g. "output_format").
	Name string
	// Pattern matches a "## <Name>" heading anywhere in the document.
	Pattern *regexp.Regexp
}

// PhraseRule describes a discouraged generic phrase.
type PhraseRule struct {
	// Phrase is the canonical form of the generic phrase.
	Phrase string
	// Pattern matches the phrase with flexible internal whitespace.
	Pattern *regexp.Regexp
}

// requiredSections is the fixed, ordered table of sections every prompt
// template must contain. Order determines the order of missing-section
// findings, so it must stay stable.
var requiredSections = []SectionRule{
	{Name: "context", Pattern: regexp.MustCompile(`(?i)##\s+Context`)},
	{Name: "task", Pattern: regexp.MustCompile(`(?i)##\s+Task`)},
	{Name: "requirements", Pattern: regexp.MustCompile(`(?i)##\s+Requirements`)},
	{Name: "validation", Pattern: regexp.MustCompile(`(?i)##\s+Validation`)},
	{Name: "output_format", Pattern: regexp.MustCompile(`(?i)##\s+Output\s+Format`)},
	{Name: "security", Pattern: regexp.MustCompile(`(?i)##\s+Security`)},
}

// genericPhrases is the fixed table of low-specificity request patterns that
// signal a vague prompt.
var genericPhrases = []PhraseRule{
	{Phrase: "build me a", Pattern: regexp.MustCompile(`(?i)build\s+me\s+a`)},
	{Phrase: "create a simple", Pattern: regexp.MustCompile(`(?i)create\s+a\s+simple`)},
	{Phrase: "make it work", Pattern: regexp.MustCompile(`(?i)make\s+it\s+work`)},
	{Phrase: "fix this", Pattern: regexp.MustCompile(`(?i)fix\s+this`)},
}

// RequiredSections returns the ordered required-section rules.
// Callers must not modify the returned slice.
func RequiredSections() []SectionRule {
	return requiredSections
}

// GenericPhrases returns the generic-phrase rules.
// Callers must not modify the returned slice.
func GenericPhrases() []PhraseRule {
	return genericPhrases
}

// titleCaser title-cases section names for human-readable messages.
var titleCaser = cases.Title(language.English)

// SectionTitle converts a snake_case section name into its human-readable
// form: underscores become spaces and each word is title-cased, so
// "output_format" becomes "Output Format".
func SectionTitle(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}
