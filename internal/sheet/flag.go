package sheet

import "strings"

// truthyTokens are the cell values that mark a pipeline stage as done.
// Everything else, including an empty cell, reads as not done.
var truthyTokens = map[string]struct{}{
	"evet": {},
	"yes":  {},
	"true": {},
	"1":    {},
	"var":  {},
	"x":    {},
	"✓":    {},
}

// CoerceFlag maps a spreadsheet cell to a stored 0/1 stage flag. Matching is
// case-insensitive after trimming.
func CoerceFlag(raw string) int {
	if _, ok := truthyTokens[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return 1
	}
	return 0
}

// FormatFlag renders a stored 0/1 flag for export.
func FormatFlag(v int) string {
	if v == 1 {
		return "EVET"
	}
	return "HAYIR"
}
