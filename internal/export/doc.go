// Package export renders resolved column mappings for ingestion consumers.
//
// Supported formats:
//   - Kusto JSON ingestion mapping (column, datatype, $.path)
//   - YAML list of mappings
//   - JSON Schema object describing the row
package export
