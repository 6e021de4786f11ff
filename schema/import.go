package schema

import (
	"fmt"

	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/srcrange"
)

// Import is an `import 'path' as name` clause. The parser produces it
// with Namespace unresolved; the loader fills in the target namespace
// exactly once via [Import.Resolve]. Resolving an already-resolved
// import panics — the same seal-then-mutate-panics discipline yammm's
// schema.Import uses to keep a resolved import from silently drifting.
type Import struct {
	Span srcrange.Range

	RawPath string // exact quoted source text, e.g. "basic/unit.t"

	RawName string
	Name    ident.Identifier // the binding this import introduces

	namespace Namespace
	resolved  bool
}

// NewImport constructs an unresolved import clause.
func NewImport(rawPath, rawName string, span srcrange.Range) *Import {
	return &Import{Span: span, RawPath: rawPath, RawName: rawName, Name: ident.New(rawName)}
}

// Resolve records the namespace the import's path resolved to. It panics
// if called twice.
func (imp *Import) Resolve(namespace Namespace) {
	if imp.resolved {
		panic(fmt.Sprintf("schema: import %q already resolved to %s", imp.RawPath, imp.namespace))
	}
	imp.namespace = namespace
	imp.resolved = true
}

// IsResolved reports whether the loader has resolved this import.
func (imp *Import) IsResolved() bool {
	return imp.resolved
}

// Namespace returns the resolved target namespace. It panics if the
// import has not been resolved yet.
func (imp *Import) Namespace() Namespace {
	if !imp.resolved {
		panic(fmt.Sprintf("schema: import %q read before resolution", imp.RawPath))
	}
	return imp.namespace
}
