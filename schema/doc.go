// Package schema is the validated, cross-linked data model the front end
// produces: a [Namespace]-keyed [Set] of [Schema] values, each an ordered
// list of [Import]s and an ordered list of [Declaration]s.
//
// Types in this package distinguish, wherever the distinction matters, the
// syntactic form as written in source (a RawName/RawPath field, preserved
// for diagnostics and source reconstruction) from the canonical semantic
// form (an [ident.Identifier], used for equality, lookup, and code
// emission) — the same split yammm's schema.TypeRef/TypeID pair draws
// between display and identity.
package schema
