package schema_test

import (
	"testing"

	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/schema"
	"github.com/elan-voss/schemalink/srcrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace_Relativize(t *testing.T) {
	a := schema.NewNamespace(ident.New("basic"), ident.New("unit"))
	b := schema.NewNamespace(ident.New("basic"), ident.New("void"))

	ancestors, remainder := schema.Relativize(a, b)
	assert.Equal(t, 1, ancestors)
	require.Len(t, remainder, 1)
	assert.Equal(t, "void", remainder[0].SnakeCase())
}

func TestNamespace_RelativizeSelf(t *testing.T) {
	a := schema.NewNamespace(ident.New("main"))
	ancestors, remainder := schema.Relativize(a, a)
	assert.Equal(t, 0, ancestors)
	assert.Empty(t, remainder)
}

func TestNamespace_String(t *testing.T) {
	ns := schema.NewNamespace(ident.New("basic"), ident.New("unit"))
	assert.Equal(t, "basic.unit", ns.String())
	assert.True(t, schema.NewNamespace().IsRoot())
}

func TestDeclaration_StringRoundTrip(t *testing.T) {
	field := schema.NewField("x", false, schema.BoolTypeRef(srcrange.New(0, 0)), 0, srcrange.New(0, 0))
	restricted := schema.NewField("y", true, schema.BoolTypeRef(srcrange.New(0, 0)), 1, srcrange.New(0, 0))
	decl := schema.NewDeclaration(schema.StructKind, "S", []*schema.Field{field, restricted}, srcrange.New(0, 0))

	want := "struct S {\n  x: bool = 0\n  y: restricted bool = 1\n}"
	assert.Equal(t, want, decl.String())
}

func TestSchema_StringRoundTrip(t *testing.T) {
	imp := schema.NewImport("basic/unit.t", "unit", srcrange.New(0, 0))
	decl := schema.NewDeclaration(schema.ChoiceKind, "Bar", nil, srcrange.New(0, 0))
	s := schema.NewSchema([]*schema.Import{imp}, []*schema.Declaration{decl})

	want := "import 'basic/unit.t' as unit\n\nchoice Bar {\n}"
	assert.Equal(t, want, s.String())
}

func TestImport_ResolvePanicsOnReResolve(t *testing.T) {
	imp := schema.NewImport("basic/unit.t", "unit", srcrange.New(0, 0))
	ns := schema.NewNamespace(ident.New("basic"), ident.New("unit"))

	assert.False(t, imp.IsResolved())
	imp.Resolve(ns)
	assert.True(t, imp.IsResolved())
	assert.True(t, ns.Equal(imp.Namespace()))

	assert.Panics(t, func() { imp.Resolve(ns) })
}

func TestImport_NamespacePanicsBeforeResolve(t *testing.T) {
	imp := schema.NewImport("basic/unit.t", "unit", srcrange.New(0, 0))
	assert.Panics(t, func() { imp.Namespace() })
}

func TestSchema_SealTwicePanics(t *testing.T) {
	s := schema.NewSchema(nil, nil)
	s.Seal()
	assert.True(t, s.IsSealed())
	assert.Panics(t, func() { s.Seal() })
}

func TestDeclaration_HasRestrictedFields(t *testing.T) {
	plain := schema.NewField("x", false, schema.BoolTypeRef(srcrange.New(0, 0)), 0, srcrange.New(0, 0))
	decl := schema.NewDeclaration(schema.StructKind, "S", []*schema.Field{plain}, srcrange.New(0, 0))
	assert.False(t, decl.HasRestrictedFields())

	restricted := schema.NewField("y", true, schema.BoolTypeRef(srcrange.New(0, 0)), 1, srcrange.New(0, 0))
	decl.Fields = append(decl.Fields, restricted)
	assert.True(t, decl.HasRestrictedFields())
}

func TestSet_AddGetAndDuplicateRejection(t *testing.T) {
	set := schema.NewSet()
	ns := schema.NewNamespace(ident.New("basic"), ident.New("unit"))
	s := schema.NewSchema(nil, nil)

	require.NoError(t, set.Add(ns, s, "basic/unit.t", "struct Unit {\n}"))
	assert.Error(t, set.Add(ns, s, "basic/unit.t", "struct Unit {\n}"))

	entry, ok := set.Get(ns)
	require.True(t, ok)
	assert.Same(t, s, entry.Schema)
	assert.Equal(t, 1, set.Len())
}

func TestSet_NamespacesSorted(t *testing.T) {
	set := schema.NewSet()
	void := schema.NewNamespace(ident.New("basic"), ident.New("void"))
	unit := schema.NewNamespace(ident.New("basic"), ident.New("unit"))
	require.NoError(t, set.Add(void, schema.NewSchema(nil, nil), "", ""))
	require.NoError(t, set.Add(unit, schema.NewSchema(nil, nil), "", ""))

	namespaces := set.Namespaces()
	require.Len(t, namespaces, 2)
	assert.Equal(t, "basic.unit", namespaces[0].String())
	assert.Equal(t, "basic.void", namespaces[1].String())
}

func TestTypeRef_String(t *testing.T) {
	assert.Equal(t, "bool", schema.BoolTypeRef(srcrange.New(0, 0)).String())
	assert.Equal(t, "Unit", schema.LocalTypeRef("Unit", srcrange.New(0, 0)).String())
	assert.Equal(t, "unit.Unit", schema.QualifiedTypeRef("unit", "Unit", srcrange.New(0, 0)).String())
}
