package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders the first rune of a segment in title case using
// Unicode-aware rules, so non-ASCII segments (e.g. "café") capitalize
// correctly rather than only ever affecting bytes 'a'-'z'.
var titleCaser = cases.Title(language.Und)

// Identifier is a canonicalized name, decomposed into lowercase word
// segments. The zero value is the empty identifier.
//
// Identifier holds a slice, so it is not itself comparable with == and
// cannot be used directly as a map key; use [Identifier.Equal] to compare
// two identifiers and [Identifier.Key] to key a map by one. Use [New]
// rather than constructing a literal.
type Identifier struct {
	segments []string
}

// New splits raw into lowercase word segments and returns the resulting
// Identifier. See the package doc for the segmentation rule. An empty or
// entirely-discarded input (e.g. "___") yields the zero Identifier.
func New(raw string) Identifier {
	return Identifier{segments: segment(raw)}
}

// FromSegments builds an Identifier directly from already-lowercased
// segments, for callers that already have a segmented form (e.g. joining
// namespace components). Segments must be non-empty and lowercase;
// callers within this module only ever pass output from [segment].
func FromSegments(segments []string) Identifier {
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Identifier{segments: cp}
}

// IsZero reports whether this is the empty identifier.
func (id Identifier) IsZero() bool {
	return len(id.segments) == 0
}

// Segments returns a defensive copy of the lowercase word segments.
func (id Identifier) Segments() []string {
	cp := make([]string, len(id.segments))
	copy(cp, id.segments)
	return cp
}

// PascalCase concatenates the segments with each segment's first rune
// capitalized (e.g. "http" + "proxy" -> "HttpProxy").
func (id Identifier) PascalCase() string {
	var b strings.Builder
	for _, seg := range id.segments {
		b.WriteString(titleCaser.String(seg))
	}
	return b.String()
}

// SnakeCase joins the segments with underscores (e.g. "http" + "proxy" ->
// "http_proxy").
func (id Identifier) SnakeCase() string {
	return strings.Join(id.segments, "_")
}

// Equal reports whether two identifiers have the same segmented form.
func (id Identifier) Equal(other Identifier) bool {
	if len(id.segments) != len(other.segments) {
		return false
	}
	for i, seg := range id.segments {
		if seg != other.segments[i] {
			return false
		}
	}
	return true
}

// Compare orders identifiers lexicographically by segmented form, segment
// by segment. It is suitable for sorting identifiers deterministically
// (e.g. module tree children by name).
func (id Identifier) Compare(other Identifier) int {
	for i := 0; i < len(id.segments) && i < len(other.segments); i++ {
		if c := strings.Compare(id.segments[i], other.segments[i]); c != 0 {
			return c
		}
	}
	return len(id.segments) - len(other.segments)
}

// Key returns a string uniquely determined by the segmented form, suitable
// for use as a map key (Identifier itself holds a slice and so cannot key
// a map directly) or for composing into a larger string key.
func (id Identifier) Key() string {
	return strings.Join(id.segments, "\x00")
}

// String returns the snake_case rendering, useful for debugging and
// %v/%s formatting.
func (id Identifier) String() string {
	return id.SnakeCase()
}

// segment splits raw text into lowercase word segments per the rule
// documented on the package: an uppercase letter or underscore starts a
// new segment, underscores are discarded, and a run of uppercase letters
// followed by a lowercase letter splits before the final uppercase letter
// of the run.
func segment(raw string) []string {
	runes := []rune(raw)
	var segments []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			segments = append(segments, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if r == '_' {
			flush()
			continue
		}

		if unicode.IsUpper(r) {
			prevUpper := len(current) > 0 && unicode.IsUpper(current[len(current)-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			switch {
			case len(current) == 0:
				// Starting fresh; nothing to flush.
			case !prevUpper:
				// Transition from a non-uppercase segment: new word starts here.
				flush()
			case prevUpper && nextLower:
				// Last letter of an acronym run, but a word follows:
				// split the run, and this letter begins the next word.
				flush()
			}
		}

		current = append(current, r)
	}

	flush()
	return segments
}
