package openai

import "unicode/utf8"

// quotePairs maps opening quote runes to their closing partner. Chat
// models like to quote the phrase they return even when told not to;
// Swedish text may come back in typographic quotes.
var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'`':  '`',
	'“':  '”',
	'”':  '”', // Swedish style quotes both sides with ”
	'‘':  '’',
}

// stripQuotes removes one matching pair of surrounding quote characters.
func stripQuotes(s string) string {
	first, firstSize := utf8.DecodeRuneInString(s)
	last, lastSize := utf8.DecodeLastRuneInString(s)
	if firstSize == 0 || lastSize == 0 || len(s) < firstSize+lastSize {
		return s
	}
	if closing, ok := quotePairs[first]; ok && last == closing {
		return s[firstSize : len(s)-lastSize]
	}
	return s
}
