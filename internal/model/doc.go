// Package model loads declarative row model definitions from YAML.
//
// Model files describe types that are not available as Go structs, for
// example the row contracts of another service. Unlike Go structs they can
// express property accessors whose getter and setter differ in visibility.
//
// # Schema Overview
//
//	version: "1"
//	models:
//	  - name: CommonMappingModel
//	    row: true
//	    members:
//	      - name: someFloat
//	        type: float32
//	        rename: some_float
//	      - name: somePrivateString
//	        getter: private
//	  - name: ComplexMappingModel
//	    base: CommonMappingModel
//	    members:
//	      - name: someOtherInteger
//	        ignore: true
//	      - name: privateGetter
//	        getter: private
//	        setter: public
//	      - name: someField
//	        kind: field
//
// # Defaults
//
//   - kind defaults to "property"
//   - a property's getter and setter default to "public"; "none" means the
//     accessor is absent
//   - a field's access defaults to "public"
//   - a model is a row model when it or any of its bases sets row: true
package model
