package export

import "strings"

// JSONPath returns the ingestion path that reads member from the root of a
// JSON record. Plain identifiers use dot notation, anything else is quoted
// in bracket notation.
func JSONPath(member string) string {
	if isIdent(member) {
		return "$." + member
	}

	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(member)

	return "$['" + escaped + "']"
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
