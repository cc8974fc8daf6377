package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError indicates a finding that must be resolved.
	SeverityError FindingSeverity = "error"
	// SeverityWarning indicates a finding that should be reviewed.
	SeverityWarning FindingSeverity = "warning"
)

// Finding type constants identify the kind of issue found.
const (
	FindingFileNotFound         = "file_not_found"
	FindingReadError            = "read_error"
	FindingMissingSection       = "missing_section"
	FindingGenericPhrase        = "generic_phrase"
	FindingMissingExamples      = "missing_examples"
	FindingMalformedFrontmatter = "malformed_frontmatter"
)

// Finding represents a validation issue discovered while checking a prompt
// template file.
type Finding struct {
	Type     string
	Severity FindingSeverity
	Message  string
	Path     string
}
