package model

import (
	"fmt"

	"row-mapper/internal/diagnostic"
	"row-mapper/internal/match"
	"row-mapper/internal/rowmap"
)

// Validate checks a model file for structural problems.
// It never stops at the first problem; all findings are returned.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "model file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "")
	}

	seenModels := map[string]struct{}{}

	for i := range f.Models {
		m := &f.Models[i]
		if m.Name == "" {
			res.AddError("empty_model_name", fmt.Sprintf("model #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := seenModels[m.Name]; ok {
			res.AddError("duplicate_model", fmt.Sprintf("duplicate model %q", m.Name), m.Name, "")
			continue
		}

		seenModels[m.Name] = struct{}{}

		validateMembers(res, m)
	}

	for i := range f.Models {
		validateBase(res, f, &f.Models[i])
	}

	return res
}

func validateMembers(res *diagnostic.Diagnostics, m *Model) {
	if len(m.Members) == 0 && m.Base == "" {
		res.AddInfo("empty_model", "model declares no members", m.Name, "")
	}

	seen := map[string]struct{}{}

	for j := range m.Members {
		def := &m.Members[j]
		if def.Name == "" {
			res.AddError("empty_member_name", fmt.Sprintf("member #%d has no name", j+1), m.Name, "")
			continue
		}

		if _, ok := seen[def.Name]; ok {
			res.AddError("duplicate_member", fmt.Sprintf("member %q declared twice", def.Name), m.Name, def.Name)
			continue
		}

		seen[def.Name] = struct{}{}

		validateMember(res, m.Name, def)
	}
}

func validateMember(res *diagnostic.Diagnostics, model string, def *MemberDef) {
	kind, ok := rowmap.ParseMemberKind(def.Kind)
	if !ok {
		res.AddError("invalid_kind", fmt.Sprintf("invalid kind %q", def.Kind), model, def.Name)
		return
	}

	switch kind {
	case rowmap.KindField:
		if _, err := parseAccessor(def.Access, false); err != nil {
			res.AddError("invalid_access", err.Error(), model, def.Name)
		}

		if def.Getter != "" || def.Setter != "" {
			res.AddWarning("accessor_on_field", "getter/setter are ignored on fields", model, def.Name)
		}
	case rowmap.KindProperty:
		for _, v := range []string{def.Getter, def.Setter} {
			if _, err := parseAccessor(v, true); err != nil {
				res.AddError("invalid_access", err.Error(), model, def.Name)
			}
		}

		if def.Access != "" {
			res.AddWarning("access_on_property", "access is ignored on properties; use getter", model, def.Name)
		}
	}

	if def.Ignore && def.Rename != "" {
		res.AddWarning("rename_on_ignored", "rename has no effect on an ignored member", model, def.Name)
	}
}

func validateBase(res *diagnostic.Diagnostics, f *File, m *Model) {
	if m.Base == "" || m.Name == "" {
		return
	}

	if _, ok := f.Model(m.Base); !ok {
		res.AddError("unknown_base", fmt.Sprintf("base %q not found", m.Base), m.Name, "")
		res.Errors[len(res.Errors)-1].Suggestions = match.Suggest(m.Base, f.modelNames(), 3)
		return
	}

	visited := map[string]bool{m.Name: true}
	for current := m.Base; current != ""; {
		if visited[current] {
			res.AddError("base_cycle", fmt.Sprintf("base chain of %q loops at %q", m.Name, current), m.Name, "")
			return
		}
		visited[current] = true

		next, ok := f.Model(current)
		if !ok {
			// reported on the model that names it
			return
		}

		current = next.Base
	}
}
