// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package phrase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bracketer wraps occurrences of one target word in square brackets.
// It is compiled once per candidate word and safe for concurrent use.
type Bracketer struct {
	word string
	re   *regexp.Regexp
}

// NewBracketer compiles the occurrence pattern for word: the word
// itself plus any directly attached word characters, so inflected and
// compound forms ("hunden", "hundarna", "hundvalp") are caught whole.
func NewBracketer(word string) *Bracketer {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word) + `[\p{L}\p{N}_]*`)
	return &Bracketer{word: word, re: re}
}

// Bracket returns text with every word-initial occurrence wrapped in
// square brackets. Matches starting mid-word ("dachshund" for "hund")
// do not count, and occurrences already inside brackets stay
// untouched, so bracketing is idempotent.
func (b *Bracketer) Bracket(text string) string {
	matches := b.re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var out strings.Builder
	out.Grow(len(text) + 2*len(matches))

	prev := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		before := runeBefore(text, start)
		after := runeAfter(text, end)
		if isWordRune(before) || before == '[' || after == ']' {
			continue
		}
		out.WriteString(text[prev:start])
		out.WriteByte('[')
		out.WriteString(text[start:end])
		out.WriteByte(']')
		prev = end
	}
	out.WriteString(text[prev:])
	return out.String()
}

func runeBefore(s string, i int) rune {
	if i <= 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

func runeAfter(s string, i int) rune {
	if i >= len(s) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

// isWordRune mirrors the character class of the occurrence pattern.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
