// Package ident implements the canonicalized identifier described by the
// schema data model: a name decomposed into lowercase word segments, with
// two case-convention renderings.
//
// # Segmentation
//
// [New] splits raw source text into segments using a single rule: an
// uppercase letter or underscore starts a new segment, underscores are
// discarded, and a run of uppercase letters immediately followed by a
// lowercase letter splits at the final uppercase letter in the run (so an
// acronym run stays together, but the last letter of the run joins the
// following word):
//
//	WORKS_AT   -> [works, at]
//	HTTPProxy  -> [http, proxy]
//	CreatedBy  -> [created, by]
//	UserID     -> [user, id]
//
// # Identity
//
// Two Identifiers compare equal, hash equal, and order equal iff their
// segment slices are equal. [Identifier.PascalCase] and
// [Identifier.SnakeCase] are the only two renderings; they are always
// derived from the segmented form, never from the raw input, so
// "FooBar", "foo_bar", and "fooBar" render identically.
package ident
