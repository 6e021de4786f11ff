package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// String reconstructs source text for the type reference: "bool", "Name",
// or "import.Name".
func (t TypeRef) String() string {
	if t.Primitive {
		return "bool"
	}
	if t.IsQualified() {
		return t.RawImport + "." + t.RawName
	}
	return t.RawName
}

// String reconstructs the field's source line, two-space indented, e.g.
// "  x: restricted bool = 1".
func (f *Field) String() string {
	if f.Restricted {
		return fmt.Sprintf("  %s: restricted %s = %s", f.RawName, f.Type, strconv.FormatUint(f.Index, 10))
	}
	return fmt.Sprintf("  %s: %s = %s", f.RawName, f.Type, strconv.FormatUint(f.Index, 10))
}

// String reconstructs the declaration's source text: "struct Name {\n...\n}"
// or "choice Name {\n...\n}".
func (d *Declaration) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s {\n", d.Kind, d.RawName)
	for _, f := range d.Fields {
		fmt.Fprintln(&b, f)
	}
	b.WriteByte('}')
	return b.String()
}

// String reconstructs the import clause's source text, e.g.
// "import 'basic/unit.t' as unit".
func (imp *Import) String() string {
	return fmt.Sprintf("import '%s' as %s", imp.RawPath, imp.RawName)
}

// String reconstructs the schema's source text: imports, each on its own
// line, then a blank line, then declarations separated by blank lines —
// mirroring the original source layout so emitted and parsed text agree.
func (s *Schema) String() string {
	var b strings.Builder
	skipBlank := true

	for _, imp := range s.Imports {
		if skipBlank {
			skipBlank = false
		} else {
			b.WriteByte('\n')
		}
		fmt.Fprint(&b, imp)
	}

	for _, d := range s.Declarations {
		if skipBlank {
			skipBlank = false
		} else {
			b.WriteString("\n\n")
		}
		fmt.Fprint(&b, d)
	}

	return b.String()
}
