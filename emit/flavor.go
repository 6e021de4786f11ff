package emit

import "github.com/elan-voss/schemalink/schema"

// Flavor is one of the asymmetric producer/consumer views a declaration
// is elaborated into.
type Flavor uint8

const (
	// In is the consumer view: restricted struct fields become optional;
	// choice variants are listed without the Out tuple tail.
	In Flavor = iota
	// Out is the producer view: every struct field is required; a
	// restricted choice variant carries its fallback-chain tuple.
	Out
	// Stable is the choice-only guaranteed-decodable view: restricted
	// variants are omitted entirely.
	Stable
)

func (f Flavor) String() string {
	switch f {
	case In:
		return "In"
	case Out:
		return "Out"
	case Stable:
		return "Stable"
	default:
		return "Unknown"
	}
}

// StructView is one flavored rendering of a struct declaration.
type StructView struct {
	Flavor Flavor
	Fields []StructViewField
}

// StructViewField is a single field as it appears in one struct flavor.
type StructViewField struct {
	Field    *schema.Field
	Optional bool  // true iff restricted in In flavor — presence becomes optional
	Of       Flavor // the flavor the field's own type is rendered at
}

// ElaborateStruct returns the struct's two views, In then Out, per
// spec.md §4.8's fixed emission order.
func ElaborateStruct(decl *schema.Declaration) []StructView {
	return []StructView{structView(decl, In), structView(decl, Out)}
}

func structView(decl *schema.Declaration, flavor Flavor) StructView {
	fields := make([]StructViewField, len(decl.Fields))
	for i, f := range decl.Fields {
		if flavor == Out {
			fields[i] = StructViewField{Field: f, Optional: false, Of: Out}
		} else {
			fields[i] = StructViewField{Field: f, Optional: f.Restricted, Of: In}
		}
	}
	return StructView{Flavor: flavor, Fields: fields}
}

// ChoiceView is one flavored rendering of a choice declaration.
type ChoiceView struct {
	Flavor   Flavor
	Variants []ChoiceViewVariant
}

// ChoiceViewVariant is a single variant as it appears in one choice
// flavor.
type ChoiceViewVariant struct {
	Field    *schema.Field
	Of       Flavor // the flavor the variant's payload type is rendered at
	OutTuple bool   // true iff this is the Out flavor and the variant is restricted
}

// ElaborateChoice returns the choice's three views, Stable, In, then Out,
// per spec.md §4.8's fixed emission order.
func ElaborateChoice(decl *schema.Declaration) []ChoiceView {
	return []ChoiceView{choiceStableView(decl), choiceInView(decl), choiceOutView(decl)}
}

func choiceStableView(decl *schema.Declaration) ChoiceView {
	var variants []ChoiceViewVariant
	for _, f := range decl.Fields {
		if f.Restricted {
			continue
		}
		variants = append(variants, ChoiceViewVariant{Field: f, Of: Out})
	}
	return ChoiceView{Flavor: Stable, Variants: variants}
}

func choiceInView(decl *schema.Declaration) ChoiceView {
	variants := make([]ChoiceViewVariant, len(decl.Fields))
	for i, f := range decl.Fields {
		variants[i] = ChoiceViewVariant{Field: f, Of: In}
	}
	return ChoiceView{Flavor: In, Variants: variants}
}

func choiceOutView(decl *schema.Declaration) ChoiceView {
	variants := make([]ChoiceViewVariant, len(decl.Fields))
	for i, f := range decl.Fields {
		variants[i] = ChoiceViewVariant{Field: f, Of: Out, OutTuple: f.Restricted}
	}
	return ChoiceView{Flavor: Out, Variants: variants}
}
