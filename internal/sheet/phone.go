package sheet

import (
	"strings"
	"unicode"
)

// NormalizePhone strips hyphens and all whitespace from a phone string so
// "010-1234-5678" and "01012345678" compare equal. No digit-count or country
// code validation is performed; an empty result is a valid value that simply
// never matches.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
