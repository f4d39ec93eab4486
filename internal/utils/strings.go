package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FilterValue maps a query filter to its stored form; "" and "all" mean no
// filter.
func FilterValue(raw string) string {
	v := NormalizeSpace(raw)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// SafeFilenamePart keeps letters, digits, '-' and '_'.
func SafeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
