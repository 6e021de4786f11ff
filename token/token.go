// Package token implements the tokenizer: source text in, a flat sequence
// of ranged tokens out.
package token

import "github.com/elan-voss/schemalink/srcrange"

// Kind classifies a token.
type Kind uint8

const (
	// EOF marks the end of the token stream. It is always the last token
	// [Tokenize] produces.
	EOF Kind = iota

	// Punctuation.
	LBrace // {
	RBrace // }
	Colon  // :
	Equals // =
	Dot    // .

	// Keywords.
	Import     // import
	As         // as
	Struct     // struct
	Choice     // choice
	Restricted // restricted
	Bool       // bool (the sole primitive type name)

	// Literals and names.
	String // 'single-quoted import path'
	Int    // unsigned decimal integer
	Ident  // any other identifier
)

// keywords maps reserved words to their Kind. Anything not in this table
// tokenizes as Ident.
var keywords = map[string]Kind{
	"import":     Import,
	"as":         As,
	"struct":     Struct,
	"choice":     Choice,
	"restricted": Restricted,
	"bool":       Bool,
}

// String returns a human-readable label for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of file"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Colon:
		return "':'"
	case Equals:
		return "'='"
	case Dot:
		return "'.'"
	case Import:
		return "'import'"
	case As:
		return "'as'"
	case Struct:
		return "'struct'"
	case Choice:
		return "'choice'"
	case Restricted:
		return "'restricted'"
	case Bool:
		return "'bool'"
	case String:
		return "string literal"
	case Int:
		return "integer literal"
	case Ident:
		return "identifier"
	default:
		return "unknown token"
	}
}

// Token is a single lexeme tagged with its source range.
type Token struct {
	Kind Kind
	Text string // the exact source text (string literals exclude the quotes)
	Span srcrange.Range
}
