// Package load resolves an entry-point schema and its transitive imports
// into a closed [schema.Set], assigning each file a [schema.Namespace]
// derived from its path relative to the module root and resolving every
// [schema.Import] to the namespace it names.
//
// File-backed loads are sandboxed with [os.Root] so an import path cannot
// escape the module root even via "../" traversal or symlinks — the same
// discipline yammm's schema/load package applies. [LoadSources] offers the
// same resolution and cycle-detection logic over an in-memory source map,
// for tests and embedded schemas.
package load
