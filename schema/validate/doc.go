// Package validate enforces the global invariants a [schema.Set] must
// satisfy before it can be elaborated and emitted: per spec.md §4.5, name
// collisions, index collisions, every type reference resolving, and the
// bool primitive always resolving. Unlike the loader, validation never
// halts at the first violation — it collects every one it can find into a
// [diag.Report] in a single pass, per spec.md §7's "collecting" front end.
package validate
