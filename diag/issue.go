package diag

import (
	"fmt"

	"github.com/elan-voss/schemalink/srcrange"
)

// Issue is a single diagnostic: a severity, a human-readable message, and
// the source location it pertains to. Use [NewIssue] to construct one.
type Issue struct {
	severity Severity
	source   string
	span     srcrange.Range
	message  string
}

// Severity returns the issue's severity.
func (i Issue) Severity() Severity {
	return i.severity
}

// Source returns the path (or synthetic identifier) of the source file the
// issue was raised against. Empty for issues with no associated file.
func (i Issue) Source() string {
	return i.source
}

// Span returns the issue's source range. Zero if the issue has no
// meaningful span (e.g. an I/O failure before any bytes were tokenized).
func (i Issue) Span() srcrange.Range {
	return i.span
}

// Message returns the human-readable diagnostic text.
func (i Issue) Message() string {
	return i.message
}

// Error implements error so an Issue can be returned or wrapped directly.
func (i Issue) Error() string {
	if i.source == "" {
		return i.message
	}
	if i.span.IsZero() {
		return fmt.Sprintf("%s: %s", i.source, i.message)
	}
	return fmt.Sprintf("%s@%s: %s", i.source, i.span, i.message)
}

// String renders the issue the same way Error does, so Issue prints
// sensibly with %v and %s.
func (i Issue) String() string {
	return i.Error()
}

// IssueBuilder provides fluent construction of [Issue] values. Direct
// struct literal construction is unavailable outside the package; this is
// the only construction path.
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue with its required fields: severity and
// message. message must not be empty.
func NewIssue(severity Severity, message string) *IssueBuilder {
	if message == "" {
		panic("diag.NewIssue: empty message")
	}
	return &IssueBuilder{issue: Issue{severity: severity, message: message}}
}

// WithSource sets the originating file path or synthetic source identifier.
func (b *IssueBuilder) WithSource(source string) *IssueBuilder {
	b.issue.source = source
	return b
}

// WithSpan sets the source range the issue pertains to.
func (b *IssueBuilder) WithSpan(span srcrange.Range) *IssueBuilder {
	b.issue.span = span
	return b
}

// Build returns the constructed issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
