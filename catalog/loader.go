package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jbeskow/signflash/core"
)

// Column names resolved from the header row. Only word and movie are
// required; the rest default to empty when absent.
const (
	colWord        = "word"
	colMovie       = "movie"
	colCategory    = "category"
	colSlug        = "category_slug"
	colDescription = "description"
	colPhrases     = "phrases"
)

// Load reads the sign catalog from path. A missing file wraps
// ErrNotFound so callers can distinguish it from a malformed one.
func Load(path string) ([]core.Sign, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	signs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return signs, nil
}

// Read parses catalog rows from r. Rows shorter than the header are
// padded with empty fields; headwords and slugs are normalized for
// lookups, free-text fields keep their case.
func Read(r io.Reader) ([]core.Sign, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	// spreadsheet exports often prepend a BOM
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[core.NormalizeWord(name)] = i
	}
	for _, required := range []string{colWord, colMovie} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var signs []core.Sign
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		signs = append(signs, core.Sign{
			Word:        core.NormalizeWord(field(record, colWord)),
			Video:       core.CleanField(field(record, colMovie)),
			Category:    core.CleanField(field(record, colCategory)),
			Slug:        core.NormalizeWord(field(record, colSlug)),
			Description: core.CleanField(field(record, colDescription)),
			PhrasesRaw:  field(record, colPhrases),
		})
	}
	return signs, nil
}
