// Package parse implements the recursive-descent parser: a [token.Token]
// stream in, a [schema.Schema] out. Grammar, per spec.md §4.3:
//
//	file        := import* declaration*
//	import      := "import" string "as" ident
//	declaration := ("struct" | "choice") ident "{" field* "}"
//	field       := ident ":" "restricted"? type "=" int
//	type        := "bool" | ident ("." ident)?
package parse
