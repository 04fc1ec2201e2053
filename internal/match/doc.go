// Package match ranks identifiers by similarity to produce
// "did you mean" suggestions for misspelled model and type names.
//
// Names are compared after normalization (case-folded, separators removed),
// so "some_float", "someFloat" and "SomeFloat" are identical.
package match
