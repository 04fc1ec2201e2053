// Package analyze loads Go packages from source and builds row model
// descriptors without running the code.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of structs and their fields, and applies the same
// selection policy as reflection-based descriptors.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/external) and row capability
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
