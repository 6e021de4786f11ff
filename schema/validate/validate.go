package validate

import (
	"fmt"

	"github.com/elan-voss/schemalink/diag"
	"github.com/elan-voss/schemalink/schema"
)

// Report is the collated result of [Validate]: every violation found
// across the whole schema set, not just the first.
type Report = diag.Report

// Validate checks every invariant in spec.md §4.5 across the whole set
// and returns a report of all violations found. An empty (OK) report is
// the only passing result; the set's namespace-uniqueness invariant is
// structurally guaranteed by [schema.Set]'s map key and is not re-checked
// here.
func Validate(set *schema.Set) Report {
	var c diag.Collector
	for _, entry := range set.Entries() {
		validateSchema(&c, set, entry)
	}
	return c.Report()
}

func validateSchema(c *diag.Collector, set *schema.Set, entry *schema.Entry) {
	sch := entry.Schema

	importsByKey := make(map[string]*schema.Import, len(sch.Imports))
	for _, imp := range sch.Imports {
		key := imp.Name.Key()
		if _, dup := importsByKey[key]; dup {
			c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("duplicate import name %q", imp.RawName)).
				WithSource(entry.Path).WithSpan(imp.Span).Build())
			continue
		}
		importsByKey[key] = imp
	}

	declsByKey := make(map[string]*schema.Declaration, len(sch.Declarations))
	for _, decl := range sch.Declarations {
		key := decl.Name.Key()
		if _, dup := declsByKey[key]; dup {
			c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("duplicate declaration name %q", decl.RawName)).
				WithSource(entry.Path).WithSpan(decl.Span).Build())
		} else {
			declsByKey[key] = decl
		}
		if _, collides := importsByKey[key]; collides {
			c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("declaration %q shadows an import of the same name", decl.RawName)).
				WithSource(entry.Path).WithSpan(decl.Span).Build())
		}

		validateDeclaration(c, set, entry, decl)
	}
}

func validateDeclaration(c *diag.Collector, set *schema.Set, entry *schema.Entry, decl *schema.Declaration) {
	fieldNames := make(map[string]bool, len(decl.Fields))
	fieldIndices := make(map[uint64]bool, len(decl.Fields))

	for _, f := range decl.Fields {
		nameKey := f.Name.Key()
		if fieldNames[nameKey] {
			c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("duplicate field name %q in %q", f.RawName, decl.RawName)).
				WithSource(entry.Path).WithSpan(f.Span).Build())
		}
		fieldNames[nameKey] = true

		if fieldIndices[f.Index] {
			c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("duplicate field index %d in %q", f.Index, decl.RawName)).
				WithSource(entry.Path).WithSpan(f.Span).Build())
		}
		fieldIndices[f.Index] = true

		resolveTypeRef(c, set, entry, f.Type)
	}
}

func resolveTypeRef(c *diag.Collector, set *schema.Set, entry *schema.Entry, t schema.TypeRef) {
	if t.Primitive {
		return
	}

	if !t.IsQualified() {
		if _, ok := entry.Schema.DeclarationByIdent(t.Name); !ok {
			c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("undefined type %q", t.RawName)).
				WithSource(entry.Path).WithSpan(t.Span).Build())
		}
		return
	}

	imp, ok := entry.Schema.ImportByIdent(t.ImportName)
	if !ok {
		c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("undefined import %q", t.RawImport)).
			WithSource(entry.Path).WithSpan(t.Span).Build())
		return
	}
	if !imp.IsResolved() {
		c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("import %q was never resolved", t.RawImport)).
			WithSource(entry.Path).WithSpan(t.Span).Build())
		return
	}

	target, ok := set.Get(imp.Namespace())
	if !ok {
		c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("import %q resolves to namespace %s, which is not in the schema set", t.RawImport, imp.Namespace())).
			WithSource(entry.Path).WithSpan(t.Span).Build())
		return
	}

	if _, ok := target.Schema.DeclarationByIdent(t.Name); !ok {
		c.Collect(diag.NewIssue(diag.Error, fmt.Sprintf("undefined type %q in %s", t.RawName, imp.Namespace())).
			WithSource(entry.Path).WithSpan(t.Span).Build())
	}
}
