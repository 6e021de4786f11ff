package validate_test

import (
	"context"
	"testing"

	"github.com/elan-voss/schemalink/schema/load"
	"github.com/elan-voss/schemalink/schema/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, sources map[string]string, entry string) *validate.Report {
	t.Helper()
	set, _, err := load.LoadSources(context.Background(), sources, entry)
	require.NoError(t, err)
	report := validate.Validate(set)
	return &report
}

func TestValidate_CleanSchemaSetPasses(t *testing.T) {
	sources := map[string]string{
		"basic/unit.t": "struct Unit {\n}",
		"main.t":       "import 'basic/unit.t' as unit\n\nstruct FooAndBar {\n  bar: unit.Unit = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.True(t, report.OK(), report.Error())
}

func TestValidate_UndefinedLocalType(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct S {\n  x: Missing = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.False(t, report.OK())
	assert.Contains(t, report.Error(), `undefined type "Missing"`)
}

func TestValidate_UndefinedImportName(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct S {\n  x: foo.Bar = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.False(t, report.OK())
	assert.Contains(t, report.Error(), `undefined import "foo"`)
}

func TestValidate_UndefinedQualifiedType(t *testing.T) {
	sources := map[string]string{
		"basic/unit.t": "struct Unit {\n}",
		"main.t":       "import 'basic/unit.t' as unit\n\nstruct S {\n  x: unit.Nope = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.False(t, report.OK())
	assert.Contains(t, report.Error(), `undefined type "Nope"`)
}

func TestValidate_LocalTypeResolvesAcrossCanonicallyEqualSpelling(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct FooBar {\n}\n\nstruct S {\n  x: foo_bar = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.True(t, report.OK(), report.Error())
}

func TestValidate_ImportQualifierResolvesAcrossCanonicallyEqualSpelling(t *testing.T) {
	sources := map[string]string{
		"basic/unit.t": "struct Unit {\n}",
		"main.t":       "import 'basic/unit.t' as unit_ns\n\nstruct S {\n  x: UnitNs.Unit = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.True(t, report.OK(), report.Error())
}

func TestValidate_DuplicateDeclarationNameAcrossCanonicallyEqualSpelling(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct FooBar {\n}\n\nchoice foo_bar {\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.False(t, report.OK())
	assert.Contains(t, report.Error(), "duplicate declaration name")
}

func TestValidate_DuplicateFieldNameAndIndex(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct S {\n  x: bool = 0\n  x: bool = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.False(t, report.OK())
	assert.Contains(t, report.Error(), `duplicate field name "x"`)
	assert.Contains(t, report.Error(), `duplicate field index 0`)
}

func TestValidate_DuplicateDeclarationName(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct S {\n}\n\nchoice S {\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.False(t, report.OK())
	assert.Contains(t, report.Error(), `duplicate declaration name "S"`)
}

func TestValidate_DeclarationShadowsImport(t *testing.T) {
	sources := map[string]string{
		"basic/unit.t": "struct Unit {\n}",
		"main.t":       "import 'basic/unit.t' as unit\n\nstruct unit {\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.False(t, report.OK())
	assert.Contains(t, report.Error(), "shadows an import")
}

func TestValidate_BoolAlwaysResolves(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct S {\n  x: bool = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	assert.True(t, report.OK())
}

func TestValidate_CollectsMultipleViolationsInOnePass(t *testing.T) {
	sources := map[string]string{
		"main.t": "struct S {\n  x: Missing = 0\n  x: bool = 0\n}",
	}
	report := mustLoad(t, sources, "main.t")
	require.GreaterOrEqual(t, report.Len(), 2)
}
