package intent

import "strings"

// Normalize lowercases text and collapses all whitespace runs to single
// spaces. Empty input stays empty; this never fails.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
