package phrase

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jbeskow/signflash/core"
)

// ParseRaw decodes the phrases cell of a catalog row. The cell is
// untrusted; anything that is not a JSON array yields nil rather than
// an error. Elements read the "phrase" and "movie" fields, missing
// fields become empty strings and fall to the blank-reject rule later.
func ParseRaw(cell string) []core.RawPhrase {
	cell = strings.TrimSpace(cell)
	if cell == "" || !gjson.Valid(cell) {
		return nil
	}

	parsed := gjson.Parse(cell)
	if !parsed.IsArray() {
		return nil
	}

	var out []core.RawPhrase
	parsed.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		out = append(out, core.RawPhrase{
			Phrase: item.Get("phrase").String(),
			Video:  item.Get("movie").String(),
		})
		return true
	})
	return out
}
