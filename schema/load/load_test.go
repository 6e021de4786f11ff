package load_test

import (
	"context"
	"testing"

	"github.com/elan-voss/schemalink/schema/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSources_SingleSchema(t *testing.T) {
	sources := map[string]string{
		"basic/unit.t": "struct Unit {\n}",
	}
	set, ns, err := load.LoadSources(context.Background(), sources, "basic/unit.t")
	require.NoError(t, err)
	assert.Equal(t, "basic.unit", ns.String())
	assert.Equal(t, 1, set.Len())

	entry, ok := set.Get(ns)
	require.True(t, ok)
	assert.True(t, entry.Schema.IsSealed())
}

func TestLoadSources_ResolvesImport(t *testing.T) {
	sources := map[string]string{
		"basic/unit.t": "struct Unit {\n}",
		"main.t":       "import 'basic/unit.t' as unit\n\nstruct FooAndBar {\n  bar: unit.Unit = 0\n}",
	}
	set, ns, err := load.LoadSources(context.Background(), sources, "main.t")
	require.NoError(t, err)
	assert.Equal(t, "main", ns.String())
	assert.Equal(t, 2, set.Len())

	entry, _ := set.Get(ns)
	imp := entry.Schema.Imports[0]
	assert.True(t, imp.IsResolved())
	assert.Equal(t, "basic.unit", imp.Namespace().String())
}

func TestLoadSources_ResolvesImportRelativeToImportingFile(t *testing.T) {
	sources := map[string]string{
		"basic/a.t": "import 'b.t' as b\n\nstruct A {\n  b: b.B = 0\n}",
		"basic/b.t": "struct B {\n}",
	}
	set, ns, err := load.LoadSources(context.Background(), sources, "basic/a.t")
	require.NoError(t, err)
	assert.Equal(t, "basic.a", ns.String())
	assert.Equal(t, 2, set.Len())

	entry, _ := set.Get(ns)
	imp := entry.Schema.Imports[0]
	assert.True(t, imp.IsResolved())
	assert.Equal(t, "basic.b", imp.Namespace().String())
}

func TestLoadSources_DetectsImportCycle(t *testing.T) {
	sources := map[string]string{
		"a.t": "import 'b.t' as b\n\nstruct A {\n}",
		"b.t": "import 'a.t' as a\n\nstruct B {\n}",
	}
	_, _, err := load.LoadSources(context.Background(), sources, "a.t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import cycle")
}

func TestLoadSources_MissingImport(t *testing.T) {
	sources := map[string]string{
		"main.t": "import 'missing.t' as missing\n\nstruct S {\n}",
	}
	_, _, err := load.LoadSources(context.Background(), sources, "main.t")
	require.Error(t, err)
}

func TestLoadSources_EscapingImportRejected(t *testing.T) {
	sources := map[string]string{
		"main.t": "import '../outside.t' as outside\n\nstruct S {\n}",
	}
	_, _, err := load.LoadSources(context.Background(), sources, "main.t")
	require.Error(t, err)
}

func TestLoadSources_NilContextPanics(t *testing.T) {
	assert.Panics(t, func() {
		//lint:ignore SA1012 verifying the documented nil-context panic
		_, _, _ = load.LoadSources(nil, map[string]string{"a.t": "struct A {\n}"}, "a.t")
	})
}

func TestLoadSources_EmptySourcesErrors(t *testing.T) {
	_, _, err := load.LoadSources(context.Background(), nil, "a.t")
	require.Error(t, err)
}

func TestLoadString_AssignsSyntheticNamespace(t *testing.T) {
	set, ns, err := load.LoadString(context.Background(), "struct S {\n  x: bool = 0\n}")
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 1, ns.Len())

	entry, ok := set.Get(ns)
	require.True(t, ok)
	assert.True(t, entry.Schema.IsSealed())
	decl, ok := entry.Schema.DeclarationByName("S")
	require.True(t, ok)
	assert.Equal(t, "S", decl.RawName)
}

func TestLoadString_DistinctNamespacesPerCall(t *testing.T) {
	_, ns1, err := load.LoadString(context.Background(), "struct A {\n}")
	require.NoError(t, err)
	_, ns2, err := load.LoadString(context.Background(), "struct A {\n}")
	require.NoError(t, err)
	assert.NotEqual(t, ns1.String(), ns2.String())
}

func TestLoadString_RejectsImports(t *testing.T) {
	_, _, err := load.LoadString(context.Background(), "import 'x.t' as x\n\nstruct S {\n}")
	require.Error(t, err)
}

func TestLoadString_NilContextPanics(t *testing.T) {
	assert.Panics(t, func() {
		//lint:ignore SA1012 verifying the documented nil-context panic
		_, _, _ = load.LoadString(nil, "struct A {\n}")
	})
}

func TestLoadSources_DiamondImportLoadsOnce(t *testing.T) {
	sources := map[string]string{
		"basic/unit.t": "struct Unit {\n}",
		"basic/void.t": "choice Void {\n}",
		"main.t": "import 'basic/unit.t' as unit\n" +
			"import 'basic/void.t' as void\n\n" +
			"struct Both {\n  a: unit.Unit = 0\n}",
	}
	set, _, err := load.LoadSources(context.Background(), sources, "main.t")
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}
