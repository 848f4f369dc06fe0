package util

import "strings"

// NormalizeTicker trims surrounding whitespace. Case is preserved so that allow-list
// lookups stay exact.
func NormalizeTicker(s string) string {
	return strings.TrimSpace(s)
}
