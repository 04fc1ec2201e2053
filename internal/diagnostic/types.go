package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"row-mapper/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Model identifies which row model this relates to (if any).
	Model string
	// Member identifies which member this relates to (if any).
	Member string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, model, member string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Model:    model,
		Member:   member,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, model, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Model:    model,
		Member:   member,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, model, member string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Model:    model,
		Member:   member,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Location renders where the diagnostic points: "Model", "Model.member",
// or "" for file-level problems.
func (d Diagnostic) Location() string {
	switch {
	case d.Model != "" && d.Member != "":
		return d.Model + "." + d.Member
	case d.Model != "":
		return d.Model
	default:
		return d.Member
	}
}

// String formats the diagnostic as "Model.member: message [code]", adding
// the suggestions when there are any.
func (d Diagnostic) String() string {
	var b strings.Builder

	if loc := d.Location(); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if d.Code != "" {
		fmt.Fprintf(&b, " [%s]", d.Code)
	}

	return b.String()
}
