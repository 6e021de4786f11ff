package schema

import (
	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/srcrange"
)

// Field is a single member of a struct or choice declaration: a name, a
// type, an explicit ordinal index, and whether it is restricted (a
// restricted struct field is optional in the In view and required in the
// Out view; a restricted choice variant is left out of the Stable view).
type Field struct {
	Span srcrange.Range

	RawName string
	Name    ident.Identifier

	Restricted bool
	Type       TypeRef
	Index      uint64
}

// NewField constructs a field. Index is the declared ordinal, not a slice
// position — fields are written `name: [restricted] type = index` and
// indices need not be contiguous, only unique within the declaration.
func NewField(rawName string, restricted bool, typ TypeRef, index uint64, span srcrange.Range) *Field {
	return &Field{
		Span:       span,
		RawName:    rawName,
		Name:       ident.New(rawName),
		Restricted: restricted,
		Type:       typ,
		Index:      index,
	}
}
