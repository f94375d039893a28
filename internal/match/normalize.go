package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and removes separators, so that "dimension_value",
// "DimensionValue" and "dimension-value" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
