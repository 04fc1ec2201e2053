package common

import "path"

// UnknownStr is the String form of out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// QualifiedName returns "alias.Name" for a named type, or just name when pkgPath is empty.
func QualifiedName(pkgPath, name string) string {
	if alias := PkgAlias(pkgPath); alias != "" {
		return alias + "." + name
	}

	return name
}
