// Package emit holds the target-language-independent half of code
// generation: the flavor elaborator (spec.md §4.6), which derives each
// declaration's In/Out/Stable views, and the module tree assembler
// (§4.7), which groups a [schema.Set] by namespace prefix. Rendering
// those views into concrete source text is a target's job — see
// [github.com/elan-voss/schemalink/emit/rust].
package emit
