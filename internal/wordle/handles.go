// Package wordle normalizes Wordle summary tables into tidy per-player facts.
package wordle

import "strings"

const placeholder = "--"

// NormalizeHandle trims a cell value into a handle. Empty strings and the
// "--" placeholder are not handles.
func NormalizeHandle(v string) (string, bool) {
	h := strings.TrimSpace(v)
	if h == "" || h == placeholder {
		return "", false
	}
	return h, true
}

// ParseHandles extracts every handle from a cell. Bot cells often hold
// "@a @b @c" with stray whitespace. Order is preserved and duplicates
// within one cell are kept.
func ParseHandles(cell string) []string {
	s := strings.TrimSpace(cell)
	if s == "" || s == placeholder {
		return nil
	}
	var out []string
	for _, tok := range strings.Fields(s) {
		if h, ok := NormalizeHandle(tok); ok {
			out = append(out, h)
		}
	}
	return out
}
