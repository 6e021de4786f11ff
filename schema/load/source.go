package load

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	pathpkg "path"
	"path/filepath"
	"strings"
)

// fileSource abstracts where schema source text comes from, so the
// resolution and cycle-detection logic in loader is identical whether
// reading from a sandboxed directory or an in-memory source map.
type fileSource interface {
	read(relPath string) (string, error)
}

// pathEscapeError indicates an import path would resolve outside the
// module root.
type pathEscapeError struct {
	path string
}

func (e *pathEscapeError) Error() string {
	return fmt.Sprintf("import path %q escapes module root", e.path)
}

// rootSource reads files from a directory sandboxed with [os.Root]: the
// kernel, not string validation, is what prevents escape.
type rootSource struct {
	root *os.Root
}

func newRootSource(moduleRoot string) (*rootSource, error) {
	root, err := os.OpenRoot(moduleRoot)
	if err != nil {
		return nil, fmt.Errorf("open module root %q: %w", moduleRoot, err)
	}
	return &rootSource{root: root}, nil
}

func (rs *rootSource) read(relPath string) (string, error) {
	clean := filepath.Clean(relPath)
	f, err := rs.root.Open(clean)
	if err != nil {
		return "", rs.translateError(err, relPath)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", relPath, err)
	}
	return string(content), nil
}

func (rs *rootSource) translateError(err error, requestedPath string) error {
	if errors.Is(err, fs.ErrInvalid) {
		return &pathEscapeError{path: requestedPath}
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Err != nil && strings.Contains(pathErr.Err.Error(), "escape") {
		return &pathEscapeError{path: requestedPath}
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("import %q not found", requestedPath)
	}
	return fmt.Errorf("open %q: %w", requestedPath, err)
}

func (rs *rootSource) Close() error {
	return rs.root.Close()
}

// mapSource reads files from an in-memory map keyed by slash-separated
// path relative to the module root — for [LoadSources] and tests.
type mapSource struct {
	files map[string]string
}

func (ms *mapSource) read(relPath string) (string, error) {
	clean := pathpkg.Clean(relPath)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", &pathEscapeError{path: relPath}
	}
	content, ok := ms.files[clean]
	if !ok {
		return "", fmt.Errorf("import %q not found", relPath)
	}
	return content, nil
}
