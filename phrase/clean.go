package phrase

import (
	"regexp"
	"strings"

	"github.com/jbeskow/signflash/core"
)

// enumerationPrefix matches the leading "alt N." marker the lexicon
// uses to number alternate recordings of the same phrase.
var enumerationPrefix = regexp.MustCompile(`(?i)^alt\s*\d+\.\s*`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean normalizes raw phrase text: NFC composition, the enumeration
// marker goes, whitespace runs collapse to single spaces, surrounding
// whitespace is trimmed. Cleaning can leave nothing; callers drop
// empty results.
func Clean(text string) string {
	text = core.CleanField(text)
	text = enumerationPrefix.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
