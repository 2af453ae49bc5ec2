package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeskow/signflash/core"
)

func TestParseRaw(t *testing.T) {
	t.Run("decodes phrase objects in order", func(t *testing.T) {
		cell := `[{"phrase":"Hunden skäller.","movie":"phrases/hu/hund-fras-00101-tecken.mp4"},{"phrase":"En stor hund.","movie":"phrases/hu/hund-fras-00102-tecken.mp4"}]`

		got := ParseRaw(cell)

		require.Len(t, got, 2)
		assert.Equal(t, core.RawPhrase{
			Phrase: "Hunden skäller.",
			Video:  "phrases/hu/hund-fras-00101-tecken.mp4",
		}, got[0])
		assert.Equal(t, core.RawPhrase{
			Phrase: "En stor hund.",
			Video:  "phrases/hu/hund-fras-00102-tecken.mp4",
		}, got[1])
	})

	t.Run("missing fields become empty strings", func(t *testing.T) {
		got := ParseRaw(`[{"phrase":"Hunden skäller."},{"movie":"a.mp4"}]`)

		require.Len(t, got, 2)
		assert.Equal(t, "", got[0].Video)
		assert.Equal(t, "", got[1].Phrase)
	})

	t.Run("skips elements that are not objects", func(t *testing.T) {
		got := ParseRaw(`["loose string",{"phrase":"Kvar.","movie":"k.mp4"},42]`)

		require.Len(t, got, 1)
		assert.Equal(t, "Kvar.", got[0].Phrase)
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		got := ParseRaw("  [{\"phrase\":\"Hej.\",\"movie\":\"h.mp4\"}]\n")

		require.Len(t, got, 1)
		assert.Equal(t, "Hej.", got[0].Phrase)
	})

	t.Run("ignores extra fields on elements", func(t *testing.T) {
		got := ParseRaw(`[{"phrase":"Hej.","movie":"h.mp4","id":7,"lang":"sv"}]`)

		require.Len(t, got, 1)
		assert.Equal(t, core.RawPhrase{Phrase: "Hej.", Video: "h.mp4"}, got[0])
	})

	t.Run("empty array yields nothing", func(t *testing.T) {
		assert.Nil(t, ParseRaw(`[]`))
	})

	t.Run("empty cell yields nothing", func(t *testing.T) {
		assert.Nil(t, ParseRaw(""))
		assert.Nil(t, ParseRaw("   "))
	})

	t.Run("malformed cells yield nothing", func(t *testing.T) {
		assert.Nil(t, ParseRaw(`[{"phrase":"broken"`))
		assert.Nil(t, ParseRaw(`not json at all`))
	})

	t.Run("non-array documents yield nothing", func(t *testing.T) {
		assert.Nil(t, ParseRaw(`{"phrase":"Hej.","movie":"h.mp4"}`))
		assert.Nil(t, ParseRaw(`"just a string"`))
	})
}
