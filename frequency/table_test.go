package frequency

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsLine(word string) string {
	return strings.Join([]string{word, "NN", "lemma", "100", "0.01"}, "\t")
}

func TestRead(t *testing.T) {
	t.Run("ranks in first-seen order", func(t *testing.T) {
		input := strings.Join([]string{
			statsLine("och"),
			statsLine("att"),
			statsLine("hund"),
		}, "\n")

		table, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 0, table.Rank("och"))
		assert.Equal(t, 1, table.Rank("att"))
		assert.Equal(t, 2, table.Rank("hund"))
	})

	t.Run("short lines are skipped", func(t *testing.T) {
		input := strings.Join([]string{
			"corpus header",
			"och\tNN",
			statsLine("hund"),
		}, "\n")

		table, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.Equal(t, 0, table.Rank("hund"))
	})

	t.Run("duplicates keep their first rank", func(t *testing.T) {
		input := strings.Join([]string{
			statsLine("hund"),
			statsLine("katt"),
			statsLine("hund"),
		}, "\n")

		table, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, table, 2)
		assert.Equal(t, 0, table.Rank("hund"))
		assert.Equal(t, 1, table.Rank("katt"))
	})

	t.Run("words are normalized", func(t *testing.T) {
		table, err := Read(strings.NewReader(statsLine("  Hund ")))
		require.NoError(t, err)
		assert.Equal(t, 0, table.Rank("hund"))
	})

	t.Run("empty words do not consume a rank", func(t *testing.T) {
		input := strings.Join([]string{
			statsLine("  "),
			statsLine("hund"),
		}, "\n")

		table, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.Equal(t, 0, table.Rank("hund"))
	})
}

func TestTable_Rank_Absent(t *testing.T) {
	table := Table{"och": 0, "att": 1}
	assert.Equal(t, 2, table.Rank("zebra"), "absent words rank one past the table")

	empty := Table{}
	assert.Equal(t, 0, empty.Rank("hund"))
}

func TestLoad(t *testing.T) {
	t.Run("missing corpus returns empty table and sentinel", func(t *testing.T) {
		table, err := Load(filepath.Join(t.TempDir(), "stats.txt"))
		require.ErrorIs(t, err, ErrCorpusNotFound)
		assert.NotNil(t, table)
		assert.Empty(t, table)
	})

	t.Run("reads a corpus file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stats.txt")
		require.NoError(t, os.WriteFile(path, []byte(statsLine("hund")+"\n"), 0o644))

		table, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Rank("hund"))
	})
}
