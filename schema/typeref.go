package schema

import (
	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/srcrange"
)

// TypeRef is a reference to a type, as written in a field declaration:
// either the primitive "bool", or a (possibly import-qualified) name of a
// struct or choice declaration. RawImport/RawName preserve the exact
// source spelling for diagnostics and source reconstruction; ImportName/
// Name hold the canonical form used for resolution and equality.
type TypeRef struct {
	Span srcrange.Range

	Primitive bool

	RawImport  string // empty when unqualified
	ImportName ident.Identifier

	RawName string
	Name    ident.Identifier
}

// BoolTypeRef builds a reference to the primitive bool type.
func BoolTypeRef(span srcrange.Range) TypeRef {
	return TypeRef{Span: span, Primitive: true}
}

// LocalTypeRef builds an unqualified reference to a declaration in the
// same schema.
func LocalTypeRef(rawName string, span srcrange.Range) TypeRef {
	return TypeRef{Span: span, RawName: rawName, Name: ident.New(rawName)}
}

// QualifiedTypeRef builds an import-qualified reference, e.g. "unit.Unit".
func QualifiedTypeRef(rawImport, rawName string, span srcrange.Range) TypeRef {
	return TypeRef{
		Span:       span,
		RawImport:  rawImport,
		ImportName: ident.New(rawImport),
		RawName:    rawName,
		Name:       ident.New(rawName),
	}
}

// IsQualified reports whether the reference names an import binding.
func (t TypeRef) IsQualified() bool {
	return !t.Primitive && t.RawImport != ""
}
