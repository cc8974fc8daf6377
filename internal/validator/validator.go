// Package validator provides the application service for validating prompt
// template files against the fixed rule tables.
package validator

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/eykd/promptlint-go/internal/domain"
	"github.com/eykd/promptlint-go/internal/frontmatter"
)

// FileReader abstracts reading a file's full contents.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// Validator runs all checks for a single prompt template file and collects
// findings in insertion order. A Validator is not safe for concurrent use;
// create a fresh instance per file.
type Validator struct {
	path    string
	reader  FileReader
	content string
	errs    []domain.Finding
	warns   []domain.Finding
}

// New creates a Validator for the given path using the given reader.
func New(path string, reader FileReader) *Validator {
	return &Validator{path: path, reader: reader}
}

// Path returns the file path this Validator was created for.
func (v *Validator) Path() string {
	return v.path
}

// Errors returns the error findings collected by the last Validate call.
func (v *Validator) Errors() []domain.Finding {
	return v.errs
}

// Warnings returns the warning findings collected by the last Validate call.
func (v *Validator) Warnings() []domain.Finding {
	return v.warns
}

// Validate runs all checks and reports whether the file is valid. Validity
// means the error list is empty; warnings are advisory and never affect the
// result. Findings from any previous call are discarded first, so repeated
// calls on an unmodified file yield identical lists.
func (v *Validator) Validate(ctx context.Context) bool {
	v.content = ""
	v.errs = nil
	v.warns = nil

	if !v.load(ctx) {
		return false
	}

	v.checkRequiredSections()
	v.checkSpecificity()
	v.checkExamples()
	v.checkFrontmatter()

	return len(v.errs) == 0
}

// load reads the file into memory. On failure it records a finding and
// returns false; no further checks run against an unloaded document.
func (v *Validator) load(ctx context.Context) bool {
	data, err := v.reader.ReadFile(ctx, v.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v.appendError(domain.FindingFileNotFound, "File not found: "+v.path)
		} else {
			v.appendError(domain.FindingReadError, "Error reading file: "+err.Error())
		}
		return false
	}
	v.content = string(data)
	return true
}

// checkRequiredSections records one error for each required section heading
// that does not appear anywhere in the document.
func (v *Validator) checkRequiredSections() {
	for _, rule := range domain.RequiredSections() {
		if !rule.Pattern.MatchString(v.content) {
			v.appendError(domain.FindingMissingSection,
				"Missing required section: "+domain.SectionTitle(rule.Name))
		}
	}
}

// checkSpecificity records a warning when the document contains a generic,
// low-specificity request phrase. At most one warning is emitted per file:
// the first matching phrase wins.
func (v *Validator) checkSpecificity() {
	for _, rule := range domain.GenericPhrases() {
		if rule.Pattern.MatchString(v.content) {
			v.appendWarning(domain.FindingGenericPhrase,
				"Generic phrase \""+rule.Phrase+"\" detected; state specific requirements instead")
			return
		}
	}
}

// checkExamples records a warning when the document contains no fenced
// code-block marker.
func (v *Validator) checkExamples() {
	if !strings.Contains(v.content, "```") {
		v.appendWarning(domain.FindingMissingExamples,
			"No code examples found; consider adding a fenced code block")
	}
}

// checkFrontmatter records a warning when the document opens a YAML
// frontmatter block that is unclosed or does not parse. Advisory only;
// templates without frontmatter pass untouched.
func (v *Validator) checkFrontmatter() {
	if err := frontmatter.Check(v.content); err != nil {
		v.appendWarning(domain.FindingMalformedFrontmatter,
			"Malformed YAML frontmatter: "+err.Error())
	}
}

func (v *Validator) appendError(findingType, message string) {
	v.errs = append(v.errs, domain.Finding{
		Type:     findingType,
		Severity: domain.SeverityError,
		Message:  message,
		Path:     v.path,
	})
}

func (v *Validator) appendWarning(findingType, message string) {
	v.warns = append(v.warns, domain.Finding{
		Type:     findingType,
		Severity: domain.SeverityWarning,
		Message:  message,
		Path:     v.path,
	})
}
