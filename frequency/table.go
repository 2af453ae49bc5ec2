// Package frequency ranks words by how common they are in a reference
// corpus, so that candidate selection can prefer everyday vocabulary.
package frequency

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jbeskow/signflash/core"
)

// minFields is how many tab-separated fields a corpus line needs to
// count as a statistics row; shorter lines are headers or noise.
const minFields = 5

// ErrCorpusNotFound indicates the corpus file does not exist. Callers
// recover by ranking with an empty table.
var ErrCorpusNotFound = errors.New("frequency corpus not found")

// Table maps normalized words to their frequency rank, 0 being the most
// frequent. Words absent from the table rank after every present word.
type Table map[string]int

// Load reads corpus statistics from path. A missing file returns an
// empty, usable table together with ErrCorpusNotFound so the caller can
// warn and continue.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Table{}, fmt.Errorf("%w: %s", ErrCorpusNotFound, path)
		}
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return table, nil
}

// Read parses tab-separated corpus lines from r. The first field of
// each qualifying line is the word; rank reflects first-seen order.
// Repeated and empty words do not consume a rank.
func Read(r io.Reader) (Table, error) {
	table := Table{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < minFields {
			continue
		}
		word := core.NormalizeWord(fields[0])
		if word == "" {
			continue
		}
		if _, seen := table[word]; seen {
			continue
		}
		table[word] = len(table)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// Rank returns the rank of word. Absent words rank at len(table), one
// past the last known word, so they sort after all ranked words.
func (t Table) Rank(word string) int {
	if r, ok := t[word]; ok {
		return r
	}
	return len(t)
}
