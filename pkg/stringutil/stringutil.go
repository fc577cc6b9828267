// Package stringutil provides small string helpers shared across the
// validator: version and URL format checks and display truncation.
package stringutil

// Truncate shortens s to at most maxLen bytes, appending "..." when
// content is cut. For maxLen of 3 or less the string is cut without an
// ellipsis. Truncation is byte-based and may split a multi-byte rune.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
