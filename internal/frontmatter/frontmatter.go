// Package frontmatter checks the well-formedness of YAML frontmatter in
// prompt template files.
package frontmatter

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnclosed is returned when a frontmatter block is opened but never closed.
var ErrUnclosed = errors.New("unclosed frontmatter")

// Split separates a document into frontmatter and body components.
// Frontmatter is delimited by --- on its own line at the very start of the
// document. Documents without frontmatter return an empty frontmatter and
// the input unchanged.
func Split(input string) (frontmatter, body string, err error) {
	if !strings.HasPrefix(input, "---\n") {
		return "", input, nil
	}

	rest := input[4:]
	pos := 0
	for pos < len(rest) {
		nlIdx := strings.IndexByte(rest[pos:], '\n')

		var line string
		var nextPos int
		if nlIdx < 0 {
			line = rest[pos:]
			nextPos = len(rest)
		} else {
			line = rest[pos : pos+nlIdx]
			nextPos = pos + nlIdx + 1
		}

		if line == "---" {
			return rest[:pos], rest[nextPos:], nil
		}

		pos = nextPos
	}

	return "", "", ErrUnclosed
}

// Check reports whether the document's frontmatter, if any, is well-formed.
// A document without a frontmatter block passes. A block that is unclosed or
// does not parse as YAML returns the underlying error.
func Check(input string) error {
	fm, _, err := Split(input)
	if err != nil {
		return err
	}
	if fm == "" {
		return nil
	}

	var doc yaml.Node
	return yaml.Unmarshal([]byte(fm), &doc)
}
