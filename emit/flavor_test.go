package emit_test

import (
	"testing"

	"github.com/elan-voss/schemalink/emit"
	"github.com/elan-voss/schemalink/schema"
	"github.com/elan-voss/schemalink/srcrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElaborateStruct_OrderAndRestriction(t *testing.T) {
	x := schema.NewField("x", false, schema.BoolTypeRef(srcrange.New(0, 0)), 0, srcrange.New(0, 0))
	y := schema.NewField("y", true, schema.BoolTypeRef(srcrange.New(0, 0)), 1, srcrange.New(0, 0))
	decl := schema.NewDeclaration(schema.StructKind, "S", []*schema.Field{x, y}, srcrange.New(0, 0))

	views := emit.ElaborateStruct(decl)
	require.Len(t, views, 2)
	assert.Equal(t, emit.In, views[0].Flavor)
	assert.Equal(t, emit.Out, views[1].Flavor)

	inView := views[0]
	assert.False(t, inView.Fields[0].Optional)
	assert.True(t, inView.Fields[1].Optional)
	assert.Equal(t, emit.In, inView.Fields[0].Of)

	outView := views[1]
	assert.False(t, outView.Fields[0].Optional)
	assert.False(t, outView.Fields[1].Optional)
	assert.Equal(t, emit.Out, outView.Fields[1].Of)
}

func TestElaborateChoice_OrderAndStableSubset(t *testing.T) {
	v := schema.NewField("v", true, schema.BoolTypeRef(srcrange.New(0, 0)), 1, srcrange.New(0, 0))
	w := schema.NewField("w", false, schema.BoolTypeRef(srcrange.New(0, 0)), 0, srcrange.New(0, 0))
	decl := schema.NewDeclaration(schema.ChoiceKind, "C", []*schema.Field{w, v}, srcrange.New(0, 0))

	views := emit.ElaborateChoice(decl)
	require.Len(t, views, 3)
	assert.Equal(t, emit.Stable, views[0].Flavor)
	assert.Equal(t, emit.In, views[1].Flavor)
	assert.Equal(t, emit.Out, views[2].Flavor)

	stable := views[0]
	require.Len(t, stable.Variants, 1)
	assert.Equal(t, "w", stable.Variants[0].Field.RawName)
	assert.Equal(t, emit.Out, stable.Variants[0].Of)

	inView := views[1]
	require.Len(t, inView.Variants, 2)
	for _, variant := range inView.Variants {
		assert.Equal(t, emit.In, variant.Of)
		assert.False(t, variant.OutTuple)
	}

	outView := views[2]
	require.Len(t, outView.Variants, 2)
	assert.False(t, outView.Variants[0].OutTuple) // w
	assert.True(t, outView.Variants[1].OutTuple)   // v, restricted
}

func TestElaborateChoice_EmptyDeclaration(t *testing.T) {
	decl := schema.NewDeclaration(schema.ChoiceKind, "Void", nil, srcrange.New(0, 0))
	views := emit.ElaborateChoice(decl)
	for _, v := range views {
		assert.Empty(t, v.Variants)
	}
}
