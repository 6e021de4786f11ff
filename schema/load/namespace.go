package load

import (
	"path"
	"strings"

	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/schema"
)

// namespaceForPath derives the namespace a schema file occupies from its
// path relative to the module root: slash-separated directories become
// outer namespace components and the file's base name (extension
// stripped) becomes the innermost one — "basic/unit.t" becomes the
// namespace "basic.unit".
func namespaceForPath(relPath string) schema.Namespace {
	clean := path.Clean(relPath)
	clean = strings.TrimSuffix(clean, path.Ext(clean))
	parts := strings.Split(clean, "/")

	components := make([]ident.Identifier, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		components = append(components, ident.New(p))
	}
	return schema.NewNamespace(components...)
}
