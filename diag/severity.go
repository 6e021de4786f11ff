// Package diag implements the collecting diagnostics model used by the
// front end: an [Issue] carries a severity, a message, and a source
// location; a [Report] collects every issue a collecting phase finds
// (spec.md §7's "collecting where feasible" validator) rather than
// stopping at the first.
package diag

// Severity is the severity level of a diagnostic issue, an ordered
// enumeration where lower numeric values are more severe.
type Severity uint8

const (
	// Error indicates a violation that makes the schema set unusable.
	// Errors cause the overall Report to be unsuccessful.
	Error Severity = iota

	// Warning indicates a condition worth surfacing but that does not, by
	// itself, invalidate the schema set.
	Warning
)

// String returns the canonical lowercase label for the severity.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// IsFailure reports whether the severity indicates a failure (Error).
func (s Severity) IsFailure() bool {
	return s == Error
}
