package strcase

import (
	"strings"
	"unicode"
)

var delimiters = map[rune]struct{}{' ': {}, '_': {}, '-': {}, '.': {}}

// Snake converts a string to snake_case.
func Snake(s string) string {
	return convert(s, unicode.LowerCase, '_')
}

// ScreamingSnake converts a string to SCREAMING_SNAKE_CASE.
func ScreamingSnake(s string) string {
	return convert(s, unicode.UpperCase, '_')
}

// convert converts a camelCase or space/underscore/hyphen/dot delimited string into various cases.
// _case must be unicode.LowerCase or unicode.UpperCase.
func convert(s string, _case int, d rune) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)

	var wasLower, wasNumber, pending bool
	for _, r := range s {
		if _, ok := delimiters[r]; ok {
			pending = b.Len() > 0
			wasLower, wasNumber = false, false

			continue
		}

		isNumber := unicode.IsNumber(r)
		if pending || (wasNumber && !isNumber) || (!wasNumber && isNumber && b.Len() > 0) || (wasLower && unicode.IsUpper(r)) {
			b.WriteRune(d)
		}
		pending = false

		b.WriteRune(unicode.To(_case, r))

		wasLower = unicode.IsLower(r)
		wasNumber = isNumber
	}

	return b.String()
}
