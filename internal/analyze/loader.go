package analyze

import (
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// markerMethod is the method that grants the row capability.
const markerMethod = "TableRow"

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/telemetry").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	return a.LoadPackagesIn("", patterns...)
}

// LoadPackagesIn is LoadPackages with patterns resolved relative to dir.
func (a *Analyzer) LoadPackagesIn(dir string, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register packages first so isExternalPackage sees all of them
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
		}
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("no type information for %s", pkg.PkgPath)
	}

	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	return nil
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Maps, interfaces, channels, etc. carry no members
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() != nil {
		info.ID = TypeID{
			PkgPath: obj.Pkg().Path(),
			Name:    obj.Name(),
		}
	} else {
		info.ID = TypeID{Name: obj.Name()}
	}

	info.IsRow = hasMarker(named)

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	default:
		if obj.Pkg() != nil && a.isExternalPackage(obj.Pkg().Path()) {
			info.Kind = TypeKindExternal
		} else {
			info.Kind = TypeKindAlias
			info.ElemType = a.analyzeType(ut)
		}
	}
}

// hasMarker reports whether *T has a niladic TableRow method, declared or promoted.
func hasMarker(named *types.Named) bool {
	mset := types.NewMethodSet(types.NewPointer(named))

	sel := mset.Lookup(nil, markerMethod)
	if sel == nil {
		return false
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok {
		return false
	}

	return sig.Params().Len() == 0 && sig.Results().Len() == 0
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type.
// Unexported fields are kept: they still shadow promoted members.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			TypeName: typeString(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// typeString renders t with package names, matching reflect.Type.String.
func typeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		return p.Name()
	})
}
