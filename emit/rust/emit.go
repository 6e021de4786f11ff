package rust

import (
	"strings"

	"github.com/elan-voss/schemalink/emit"
	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/schema"
)

type caseConvention uint8

const (
	snakeCase caseConvention = iota
	pascalCase
)

// Generate renders the schema set's module tree as a single Rust source
// file. set should already have passed [validate.Validate] — generation
// never fails on validated input, per spec.md §4.8, except for structural
// errors the validator guarantees can't occur.
func Generate(set *schema.Set) (string, error) {
	tree, err := emit.BuildTree(set)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if !isEmpty(tree) {
		buf.WriteString("#![allow(clippy::all, clippy::pedantic, clippy::nursery, warnings)]\n\n")
		writeModuleContents(&buf, 0, schema.NewNamespace(), tree)
	}
	return buf.String(), nil
}

func isEmpty(m *emit.Module) bool {
	return len(m.Children()) == 0 && declCount(m) == 0
}

func declCount(m *emit.Module) int {
	if m.Entry == nil {
		return 0
	}
	return len(m.Entry.Schema.Declarations)
}

func writeModuleContents(buf *strings.Builder, indent int, namespace schema.Namespace, node *emit.Module) {
	children := node.Children()
	schemaEmpty := declCount(node) == 0

	for i, child := range children {
		writeModule(buf, indent, namespace, child)
		if i < len(children)-1 || !schemaEmpty {
			buf.WriteByte('\n')
		}
	}

	if node.Entry != nil {
		writeSchema(buf, indent, namespace, node.Entry.Schema)
	}
}

func writeModule(buf *strings.Builder, indent int, namespace schema.Namespace, node *emit.Module) {
	writeIndent(buf, indent)
	buf.WriteString("#[rustfmt::skip]\n")
	writeIndent(buf, indent)
	buf.WriteString("pub mod ")
	writeIdentifier(buf, node.Name, snakeCase)
	buf.WriteString(" {\n")

	writeModuleContents(buf, indent+1, namespace.Join(node.Name), node)

	writeIndent(buf, indent)
	buf.WriteString("}\n")
}

func writeSchema(buf *strings.Builder, indent int, namespace schema.Namespace, sch *schema.Schema) {
	imports := make(map[string]schema.Namespace, len(sch.Imports))
	for _, imp := range sch.Imports {
		if imp.IsResolved() {
			imports[imp.Name.Key()] = imp.Namespace()
		}
	}

	for i, decl := range sch.Declarations {
		switch decl.Kind {
		case schema.StructKind:
			views := emit.ElaborateStruct(decl)
			writeStruct(buf, indent, imports, namespace, decl, views[0])
			buf.WriteByte('\n')
			writeStruct(buf, indent, imports, namespace, decl, views[1])
		case schema.ChoiceKind:
			views := emit.ElaborateChoice(decl)
			writeChoice(buf, indent, imports, namespace, decl, views[0])
			buf.WriteByte('\n')
			writeChoice(buf, indent, imports, namespace, decl, views[1])
			buf.WriteByte('\n')
			writeChoice(buf, indent, imports, namespace, decl, views[2])
		}

		if i < len(sch.Declarations)-1 {
			buf.WriteByte('\n')
		}
	}
}

func writeStruct(buf *strings.Builder, indent int, imports map[string]schema.Namespace, namespace schema.Namespace, decl *schema.Declaration, view emit.StructView) {
	writeIndent(buf, indent)
	buf.WriteString("#[derive(")
	buf.WriteString(strings.Join(derives, ", "))
	buf.WriteString(")]\n")
	writeIndent(buf, indent)
	buf.WriteString("pub struct ")
	writeIdentifier(buf, decl.Name, pascalCase)
	buf.WriteString(view.Flavor.String())
	buf.WriteString(" {\n")

	for _, f := range view.Fields {
		writeStructField(buf, indent+1, imports, namespace, f)
	}

	writeIndent(buf, indent)
	buf.WriteString("}\n")
}

func writeStructField(buf *strings.Builder, indent int, imports map[string]schema.Namespace, namespace schema.Namespace, f emit.StructViewField) {
	writeIndent(buf, indent)
	writeIdentifier(buf, f.Field.Name, snakeCase)
	buf.WriteString(": ")
	if f.Optional {
		buf.WriteString("Option<")
	}
	writeTypeRef(buf, imports, namespace, f.Field.Type, f.Of)
	if f.Optional {
		buf.WriteString(">")
	}
	buf.WriteString(",\n")
}

func writeChoice(buf *strings.Builder, indent int, imports map[string]schema.Namespace, namespace schema.Namespace, decl *schema.Declaration, view emit.ChoiceView) {
	writeIndent(buf, indent)
	buf.WriteString("#[derive(")
	buf.WriteString(strings.Join(derives, ", "))
	buf.WriteString(")]\n")
	writeIndent(buf, indent)
	buf.WriteString("pub enum ")
	writeIdentifier(buf, decl.Name, pascalCase)
	buf.WriteString(view.Flavor.String())
	buf.WriteString(" {\n")

	for _, v := range view.Variants {
		writeChoiceVariant(buf, indent+1, imports, namespace, decl, v)
	}

	writeIndent(buf, indent)
	buf.WriteString("}\n")
}

func writeChoiceVariant(buf *strings.Builder, indent int, imports map[string]schema.Namespace, namespace schema.Namespace, decl *schema.Declaration, v emit.ChoiceViewVariant) {
	writeIndent(buf, indent)
	writeIdentifier(buf, v.Field.Name, pascalCase)
	buf.WriteString("(")
	writeTypeRef(buf, imports, namespace, v.Field.Type, v.Of)
	if v.OutTuple {
		buf.WriteString(", Vec<")
		writeIdentifier(buf, decl.Name, pascalCase)
		buf.WriteString("Out>, ")
		writeIdentifier(buf, decl.Name, pascalCase)
		buf.WriteString("Stable")
	}
	buf.WriteString("),\n")
}

func writeTypeRef(buf *strings.Builder, imports map[string]schema.Namespace, namespace schema.Namespace, t schema.TypeRef, flavor emit.Flavor) {
	if t.Primitive {
		buf.WriteString("bool")
		return
	}

	typeNamespace := namespace
	if t.IsQualified() {
		typeNamespace = imports[t.ImportName.Key()]
	}

	ancestors, remainder := schema.Relativize(namespace, typeNamespace)
	for i := 0; i < ancestors; i++ {
		buf.WriteString("super::")
	}
	for _, component := range remainder {
		writeIdentifier(buf, component, snakeCase)
		buf.WriteString("::")
	}

	writeIdentifier(buf, t.Name, pascalCase)
	buf.WriteString(flavor.String())
}

func writeIdentifier(buf *strings.Builder, id ident.Identifier, convention caseConvention) {
	var name string
	if convention == pascalCase {
		name = id.PascalCase()
	} else {
		name = id.SnakeCase()
	}

	if !strings.HasPrefix(name, "r#") && keywords[name] {
		buf.WriteString("r#")
	}
	buf.WriteString(name)
}

func writeIndent(buf *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		buf.WriteString(indentUnit)
	}
}
