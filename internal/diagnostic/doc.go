// Package diagnostic collects structured problems found while validating
// row model definitions.
//
// Validation keeps going after the first problem so a model file can be
// fixed in one pass. Each entry carries a stable code, the model it refers
// to and, when relevant, the member.
package diagnostic
