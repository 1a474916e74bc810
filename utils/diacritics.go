package utils

import "strings"

// polishDiacritics maps each Polish diacritic letter to its closest plain
// Latin letter. A plain character map is enough here; unicode normalization
// would not handle ł, which carries no combining mark.
var polishDiacritics = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n',
	'ó': 'o', 'ś': 's', 'ź': 'z', 'ż': 'z',
	'Ą': 'A', 'Ć': 'C', 'Ę': 'E', 'Ł': 'L', 'Ń': 'N',
	'Ó': 'O', 'Ś': 'S', 'Ź': 'Z', 'Ż': 'Z',
}

// StripDiacritics replaces Polish diacritic letters with plain Latin ones,
// so "Jabłko" and "jablko" compare equal after lowering. Idempotent.
func StripDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		if plain, ok := polishDiacritics[r]; ok {
			return plain
		}
		return r
	}, s)
}
