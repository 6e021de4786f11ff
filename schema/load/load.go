package load

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/schema"
	"github.com/elan-voss/schemalink/schema/parse"
	"github.com/google/uuid"
)

// Error reports a failure to load or resolve a schema file.
type Error struct {
	Path string
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Text)
}

// Load resolves entryPath and its transitive imports into a [schema.Set],
// sandboxed to the module root (the entry file's directory, or the path
// set by [WithModuleRoot]). ctx must not be nil.
func Load(ctx context.Context, entryPath string, opts ...Option) (*schema.Set, schema.Namespace, error) {
	if ctx == nil {
		panic("load.Load: context must not be nil")
	}

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	moduleRoot := cfg.moduleRoot
	rel := entryPath
	if moduleRoot == "" {
		moduleRoot = filepath.Dir(entryPath)
		rel = filepath.Base(entryPath)
	} else if r, err := filepath.Rel(moduleRoot, entryPath); err == nil {
		rel = r
	}

	src, err := newRootSource(moduleRoot)
	if err != nil {
		return nil, schema.Namespace{}, err
	}
	defer src.Close()

	l := newLoader(src, cfg)
	ns, err := l.loadPath(ctx, filepath.ToSlash(rel))
	return l.set, ns, err
}

// LoadSources resolves entryPath and its transitive imports out of an
// in-memory map of slash-separated relative paths to source text. Useful
// for tests and for embedding schemas without a filesystem. ctx must not
// be nil.
func LoadSources(ctx context.Context, sources map[string]string, entryPath string, opts ...Option) (*schema.Set, schema.Namespace, error) {
	if ctx == nil {
		panic("load.LoadSources: context must not be nil")
	}
	if len(sources) == 0 {
		return nil, schema.Namespace{}, fmt.Errorf("load: no sources provided")
	}

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	l := newLoader(&mapSource{files: sources}, cfg)
	ns, err := l.loadPath(ctx, entryPath)
	return l.set, ns, err
}

// LoadString parses sourceText as a standalone schema with no filesystem
// backing and no imports, assigning it a synthetic single-component
// namespace derived from a random UUID so it can still be added to a
// [schema.Set] and addressed like any file-backed entry. Useful for
// embedding a schema fetched over the network or built at runtime, where
// there is no meaningful module path to derive a namespace from. ctx must
// not be nil.
func LoadString(ctx context.Context, sourceText string, opts ...Option) (*schema.Set, schema.Namespace, error) {
	if ctx == nil {
		panic("load.LoadString: context must not be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, schema.Namespace{}, err
	}

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	const syntheticPath = "<string>"
	sch, err := parse.Parse(syntheticPath, sourceText)
	if err != nil {
		return nil, schema.Namespace{}, err
	}
	if len(sch.Imports) > 0 {
		return nil, schema.Namespace{}, &Error{Path: syntheticPath, Text: "schemas loaded from a string may not import other schemas"}
	}
	sch.Seal()

	token := "s" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ns := schema.NewNamespace(ident.New(token))

	cfg.logger.Debug("loaded schema from string", "namespace", ns.String(), "bytes", len(sourceText))

	set := schema.NewSet()
	if err := set.Add(ns, sch, syntheticPath, sourceText); err != nil {
		return nil, schema.Namespace{}, &Error{Path: syntheticPath, Text: err.Error()}
	}
	return set, ns, nil
}

type loader struct {
	src    fileSource
	logger *slog.Logger
	set    *schema.Set

	visiting map[string]bool
	stack    []string
}

func newLoader(src fileSource, cfg *config) *loader {
	return &loader{src: src, logger: cfg.logger, set: schema.NewSet(), visiting: make(map[string]bool)}
}

// loadPath loads relPath, recursively resolving its imports, and returns
// the namespace it was assigned. Already-loaded paths short-circuit;
// paths currently being loaded report an import cycle instead of
// recursing forever.
func (l *loader) loadPath(ctx context.Context, relPath string) (schema.Namespace, error) {
	if err := ctx.Err(); err != nil {
		return schema.Namespace{}, err
	}

	ns := namespaceForPath(relPath)
	if _, ok := l.set.Get(ns); ok {
		return ns, nil
	}
	if l.visiting[relPath] {
		cycle := append(append([]string{}, l.stack...), relPath)
		return schema.Namespace{}, &Error{Path: relPath, Text: fmt.Sprintf("import cycle: %s", strings.Join(cycle, " -> "))}
	}

	l.visiting[relPath] = true
	l.stack = append(l.stack, relPath)
	defer func() {
		delete(l.visiting, relPath)
		l.stack = l.stack[:len(l.stack)-1]
	}()

	text, err := l.src.read(relPath)
	if err != nil {
		return ns, &Error{Path: relPath, Text: err.Error()}
	}

	sch, err := parse.Parse(relPath, text)
	if err != nil {
		return ns, err
	}

	l.logger.Debug("resolving schema", "path", relPath, "namespace", ns.String(), "imports", len(sch.Imports))

	for _, imp := range sch.Imports {
		importPath := path.Clean(path.Join(path.Dir(relPath), imp.RawPath))
		importedNS, err := l.loadPath(ctx, importPath)
		if err != nil {
			return ns, err
		}
		imp.Resolve(importedNS)
	}

	sch.Seal()
	if err := l.set.Add(ns, sch, relPath, text); err != nil {
		return ns, &Error{Path: relPath, Text: err.Error()}
	}
	return ns, nil
}
