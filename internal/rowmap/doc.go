// Package rowmap derives column mappings for row model types.
//
// A row model is any type carrying the TableRow capability. The resolver
// walks the type's members, most-derived layer first, and projects every
// eligible member onto a named column of an ingestion target.
//
// # Selection policy
//
// Members are considered layer by layer. For each member:
//  1. A name already seen in a more-derived layer is shadowed and skipped,
//     whether or not the shadowing member was itself eligible.
//  2. An ignored member is excluded.
//  3. A member whose read path is not public is excluded. For properties
//     only the getter counts; the setter is never consulted.
//  4. The column is the rename annotation when present, otherwise the
//     declared name. The source path is always the declared name.
//
// Column names are unique within one resolution: the first member to claim
// a column keeps it.
//
// # Descriptors
//
// The resolver works on TypeDescriptor values. This package builds them from
// reflect.Type; the analyze and model packages build them from Go source and
// YAML model files respectively.
package rowmap
