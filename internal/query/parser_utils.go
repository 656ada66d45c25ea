package query

import (
	"strings"
	"unicode"
)

// splitCommaSeparated splits a string by commas, but keeps it simple:
// it's fine for "users, orders, audit".
func splitCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// indexKeyword returns the byte offset of kw as a whole word in s
// (case-insensitive), or -1.
func indexKeyword(s, kw string) int {
	for i := 0; i+len(kw) <= len(s); i++ {
		if !strings.EqualFold(s[i:i+len(kw)], kw) {
			continue
		}
		end := i + len(kw)
		before := i == 0 || unicode.IsSpace(rune(s[i-1]))
		after := end == len(s) || unicode.IsSpace(rune(s[end]))
		if before && after {
			return i
		}
	}
	return -1
}

// trimKeyword drops a leading kw (case-insensitive) from s, if present.
func trimKeyword(s, kw string) string {
	if indexKeyword(s, kw) == 0 {
		return s[len(kw):]
	}
	return s
}

// isIdent reports whether s is a valid table name: letters, digits and
// underscores, not starting with a digit.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
