package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeskow/signflash/ai/mock"
	"github.com/jbeskow/signflash/catalog"
	"github.com/jbeskow/signflash/core"
	"github.com/jbeskow/signflash/selection"
)

// fakeProber implements verify.Prober with canned answers.
type fakeProber struct {
	mu      sync.Mutex
	probed  []string
	missing map[string]bool
}

func (f *fakeProber) Exists(_ context.Context, filename string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probed = append(f.probed, filename)
	return !f.missing[filename]
}

func (f *fakeProber) probeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.probed)
}

// recordingMonitor captures every hook for assertions.
type recordingMonitor struct {
	mu         sync.Mutex
	catalog    int
	frequency  int
	selected   int
	dropped    int
	verifyN    int
	results    map[string]bool
	phrases    int
	artifacts  []string
	indexPath  string
	indexFiles int
}

func newRecordingMonitor() *recordingMonitor {
	return &recordingMonitor{results: make(map[string]bool)}
}

func (m *recordingMonitor) CatalogLoaded(rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = rows
}

func (m *recordingMonitor) FrequencyLoaded(words int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frequency = words
}

func (m *recordingMonitor) CandidatesSelected(kept, dropped int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = kept
	m.dropped = dropped
}

func (m *recordingMonitor) VerifyStart(total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifyN = total
}

func (m *recordingMonitor) VerifyResult(word, _ string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[word] = ok
}

func (m *recordingMonitor) PhraseAnnotated(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phrases++
}

func (m *recordingMonitor) ArtifactWritten(path string, _, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifacts = append(m.artifacts, path)
}

func (m *recordingMonitor) IndexRebuilt(path string, files int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indexPath = path
	m.indexFiles = files
}

func writeCatalog(t *testing.T, dir string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(dir, "sign_data.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.Write([]string{"word", "movie", "category", "category_slug", "description", "phrases"}))
	require.NoError(t, w.WriteAll(rows))
	require.NoError(t, f.Close())
	return path
}

func writeFrequency(t *testing.T, dir string, words ...string) string {
	t.Helper()
	var b strings.Builder
	for i, w := range words {
		fmt.Fprintf(&b, "%s\t%d\tNN\tx\ty\n", w, 1000-i)
	}
	path := filepath.Join(dir, "stats.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func animalRows() [][]string {
	return [][]string{
		{"hund", "djur/hund-00001-tecken.mp4", "Djur & natur", "djur", "", `[{"phrase":"alt 1. Hunden  skäller.","movie":"phrases/hund-fras-00101-tecken.mp4"}]`},
		{"katt", "djur/katt-00002-tecken.mp4", "Djur & natur", "djur", "", `[{"phrase":"Katten sover.","movie":"phrases/katt-fras-00201-tecken.mp4"}]`},
		{"bil", "fordon/bil-00003-tecken.mp4", "Fordon", "fordon", "", ""},
		{"orm", "djur/orm-00004-tecken.mp4", "Djur & natur", "djur", "", ""},
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("category run end to end", func(t *testing.T) {
		dir := t.TempDir()
		outDir := filepath.Join(dir, "wordlists")
		prober := &fakeProber{missing: map[string]bool{"orm-00004-tecken.mp4": true}}
		monitor := newRecordingMonitor()

		p, err := NewPipeline(WithProber(prober), WithMonitor(monitor))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:          "djur",
			Name:        "Djur",
			Slugs:       []string{"djur"},
			WithPhrases: true,
			Catalog:     writeCatalog(t, dir, animalRows()),
			Frequency:   writeFrequency(t, dir, "hund", "katt", "orm"),
			OutputDir:   outDir,
			WordlistDir: outDir,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Entries)
		assert.Equal(t, 2, result.Phrases)
		require.Len(t, result.Lists, 1)
		assert.Equal(t, []core.WordEntry{
			{Word: "hund", Video: "hund-00001-tecken.mp4"},
			{Word: "katt", Video: "katt-00002-tecken.mp4"},
		}, result.Lists[0].Words)
		assert.Equal(t, []core.PhraseEntry{
			{Word: "hund", Phrase: "[Hunden] skäller.", Video: "hund-fras-00101-tecken.mp4"},
			{Word: "katt", Phrase: "[Katten] sover.", Video: "katt-fras-00201-tecken.mp4"},
		}, result.Lists[0].Phrases)

		require.Len(t, result.Paths, 1)
		assert.Equal(t, filepath.Join(outDir, "djur.js"), result.Paths[0])
		data, err := os.ReadFile(result.Paths[0])
		require.NoError(t, err)
		assert.Contains(t, string(data), `id: "djur",`)
		assert.Contains(t, string(data), `{ word: "hund", video: "hund-00001-tecken.mp4" },`)

		require.Equal(t, []string{"VIDEO MISSING: 'orm' -> orm-00004-tecken.mp4"}, result.Warnings)

		assert.Equal(t, filepath.Join(outDir, "all.js"), result.IndexPath)
		index, err := os.ReadFile(result.IndexPath)
		require.NoError(t, err)
		assert.Contains(t, string(index), "// --- djur.js ---")

		assert.Equal(t, 4, monitor.catalog)
		assert.Equal(t, 3, monitor.frequency)
		assert.Equal(t, 3, monitor.selected)
		assert.Equal(t, 0, monitor.dropped)
		assert.Equal(t, 3, monitor.verifyN)
		assert.Equal(t, map[string]bool{"hund": true, "katt": true, "orm": false}, monitor.results)
		assert.Equal(t, 2, monitor.phrases)
		assert.Len(t, monitor.artifacts, 1)
		assert.Equal(t, 1, monitor.indexFiles)
	})

	t.Run("word file run reports missing words", func(t *testing.T) {
		dir := t.TempDir()
		wordFile := filepath.Join(dir, "words.txt")
		require.NoError(t, os.WriteFile(wordFile, []byte("Katt\n\nhund\nzebra\n"), 0o644))
		outDir := filepath.Join(dir, "out")

		p, err := NewPipeline(WithProber(&fakeProber{}))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:        "egna",
			Name:      "Egna ord",
			WordFile:  wordFile,
			Catalog:   writeCatalog(t, dir, animalRows()),
			Frequency: writeFrequency(t, dir, "hund", "katt"),
			OutputDir: outDir,
		})

		require.NoError(t, err)
		assert.Equal(t, []core.WordEntry{
			{Word: "hund", Video: "hund-00001-tecken.mp4"},
			{Word: "katt", Video: "katt-00002-tecken.mp4"},
		}, result.Lists[0].Words)
		assert.Equal(t, []string{"NOT FOUND: 'zebra'"}, result.Warnings)
		assert.Nil(t, result.Lists[0].Phrases)
		assert.Empty(t, result.IndexPath)
	})

	t.Run("missing words name the category filter", func(t *testing.T) {
		dir := t.TempDir()
		wordFile := filepath.Join(dir, "words.txt")
		require.NoError(t, os.WriteFile(wordFile, []byte("hund\nbil\n"), 0o644))

		p, err := NewPipeline(WithProber(&fakeProber{}))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:        "djur",
			Name:      "Djur",
			Slugs:     []string{"djur"},
			WordFile:  wordFile,
			Catalog:   writeCatalog(t, dir, animalRows()),
			Frequency: writeFrequency(t, dir, "hund"),
			OutputDir: filepath.Join(dir, "out"),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"NOT FOUND: 'bil' (not in category 'djur')"}, result.Warnings)
	})

	t.Run("skip verify probes nothing", func(t *testing.T) {
		dir := t.TempDir()
		prober := &fakeProber{missing: map[string]bool{"hund-00001-tecken.mp4": true}}

		p, err := NewPipeline(WithProber(prober))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:         "djur",
			Name:       "Djur",
			Slugs:      []string{"djur"},
			SkipVerify: true,
			Catalog:    writeCatalog(t, dir, animalRows()),
			Frequency:  writeFrequency(t, dir, "hund", "katt", "orm"),
			OutputDir:  filepath.Join(dir, "out"),
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Entries)
		assert.Zero(t, prober.probeCount())
		assert.Empty(t, result.Warnings)
	})

	t.Run("missing frequency corpus degrades to catalog order", func(t *testing.T) {
		dir := t.TempDir()

		p, err := NewPipeline(WithProber(&fakeProber{}))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:        "djur",
			Name:      "Djur",
			Slugs:     []string{"djur"},
			Catalog:   writeCatalog(t, dir, animalRows()),
			Frequency: filepath.Join(dir, "absent.txt"),
			OutputDir: filepath.Join(dir, "out"),
		})

		require.NoError(t, err)
		assert.Equal(t, []core.WordEntry{
			{Word: "hund", Video: "hund-00001-tecken.mp4"},
			{Word: "katt", Video: "katt-00002-tecken.mp4"},
			{Word: "orm", Video: "orm-00004-tecken.mp4"},
		}, result.Lists[0].Words)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "frequency corpus not found")
	})

	t.Run("zero surviving entries is fatal but keeps warnings", func(t *testing.T) {
		dir := t.TempDir()
		outDir := filepath.Join(dir, "out")
		prober := &fakeProber{missing: map[string]bool{
			"hund-00001-tecken.mp4": true,
			"katt-00002-tecken.mp4": true,
			"orm-00004-tecken.mp4":  true,
		}}

		p, err := NewPipeline(WithProber(prober))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:        "djur",
			Name:      "Djur",
			Slugs:     []string{"djur"},
			Catalog:   writeCatalog(t, dir, animalRows()),
			Frequency: writeFrequency(t, dir, "hund"),
			OutputDir: outDir,
		})

		require.ErrorIs(t, err, ErrNoEntries)
		require.NotNil(t, result)
		assert.Len(t, result.Warnings, 3)
		assert.NoDirExists(t, outDir)
	})

	t.Run("chunked run writes numbered artifacts", func(t *testing.T) {
		dir := t.TempDir()
		outDir := filepath.Join(dir, "wordlists")
		rows := [][]string{
			{"hund", "a/hund-00001-tecken.mp4", "Djur", "djur", "", ""},
			{"katt", "a/katt-00002-tecken.mp4", "Djur", "djur", "", ""},
			{"orm", "a/orm-00003-tecken.mp4", "Djur", "djur", "", ""},
			{"älg", "a/alg-00004-tecken.mp4", "Djur", "djur", "", ""},
			{"räv", "a/rav-00005-tecken.mp4", "Djur", "djur", "", ""},
		}

		p, err := NewPipeline(WithProber(&fakeProber{}))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:          "djur",
			Name:        "Djur",
			Slugs:       []string{"djur"},
			ChunkSize:   2,
			Catalog:     writeCatalog(t, dir, rows),
			Frequency:   writeFrequency(t, dir, "hund", "katt", "orm", "älg", "räv"),
			OutputDir:   outDir,
			WordlistDir: outDir,
		})

		require.NoError(t, err)
		require.Len(t, result.Paths, 3)
		assert.Equal(t, filepath.Join(outDir, "djur1.js"), result.Paths[0])
		assert.Equal(t, filepath.Join(outDir, "djur3.js"), result.Paths[2])
		assert.Equal(t, 5, result.Entries)

		index, err := os.ReadFile(filepath.Join(outDir, "all.js"))
		require.NoError(t, err)
		for _, name := range []string{"djur1.js", "djur2.js", "djur3.js"} {
			assert.Contains(t, string(index), "// --- "+name+" ---")
		}
	})

	t.Run("annotation mode marks through the annotator", func(t *testing.T) {
		dir := t.TempDir()
		annotator := mock.NewMockAnnotator()

		p, err := NewPipeline(WithProber(&fakeProber{}), WithAnnotator(annotator))
		require.NoError(t, err)

		result, err := p.Run(ctx, &Request{
			ID:          "djur",
			Name:        "Djur",
			Slugs:       []string{"djur"},
			WithPhrases: true,
			Annotate:    true,
			Catalog:     writeCatalog(t, dir, animalRows()),
			Frequency:   writeFrequency(t, dir, "hund", "katt", "orm"),
			OutputDir:   filepath.Join(dir, "out"),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, annotator.CallCount())
		// The mock brackets the literal word only, unlike the pattern
		// bracketer, which is how we know the annotator ran.
		assert.Equal(t, "[Hund]en skäller.", result.Lists[0].Phrases[0].Phrase)
	})

	t.Run("annotation failure aborts before any write", func(t *testing.T) {
		dir := t.TempDir()
		outDir := filepath.Join(dir, "out")
		annotator := mock.NewMockAnnotator()
		annotator.AnnotateFunc = func(context.Context, string, string) (string, error) {
			return "", errors.New("service down")
		}

		p, err := NewPipeline(WithProber(&fakeProber{}), WithAnnotator(annotator))
		require.NoError(t, err)

		_, err = p.Run(ctx, &Request{
			ID:          "djur",
			Name:        "Djur",
			Slugs:       []string{"djur"},
			WithPhrases: true,
			Annotate:    true,
			Catalog:     writeCatalog(t, dir, animalRows()),
			Frequency:   writeFrequency(t, dir, "hund"),
			OutputDir:   outDir,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "annotate phrases for")
		assert.NoDirExists(t, outDir)
	})

	t.Run("missing catalog is fatal", func(t *testing.T) {
		dir := t.TempDir()

		p, err := NewPipeline(WithProber(&fakeProber{}))
		require.NoError(t, err)

		_, err = p.Run(ctx, &Request{
			ID:        "djur",
			Name:      "Djur",
			Slugs:     []string{"djur"},
			Catalog:   filepath.Join(dir, "absent.csv"),
			Frequency: writeFrequency(t, dir, "hund"),
			OutputDir: filepath.Join(dir, "out"),
		})

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("missing word file is fatal", func(t *testing.T) {
		dir := t.TempDir()

		p, err := NewPipeline(WithProber(&fakeProber{}))
		require.NoError(t, err)

		_, err = p.Run(ctx, &Request{
			ID:        "egna",
			Name:      "Egna",
			WordFile:  filepath.Join(dir, "absent.txt"),
			Catalog:   writeCatalog(t, dir, animalRows()),
			Frequency: writeFrequency(t, dir, "hund"),
			OutputDir: filepath.Join(dir, "out"),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "word file")
	})
}

func TestRunValidation(t *testing.T) {
	ctx := context.Background()

	p, err := NewPipeline(WithProber(&fakeProber{}))
	require.NoError(t, err)

	t.Run("rejects bad ids", func(t *testing.T) {
		_, err := p.Run(ctx, &Request{ID: "", Name: "X", Slugs: []string{"djur"}})
		assert.ErrorIs(t, err, core.ErrEmptyListID)

		_, err = p.Run(ctx, &Request{ID: "All", Name: "X", Slugs: []string{"djur"}})
		assert.ErrorIs(t, err, core.ErrReservedListID)

		_, err = p.Run(ctx, &Request{ID: "a/b", Name: "X", Slugs: []string{"djur"}})
		assert.ErrorIs(t, err, core.ErrUnsafeListID)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := p.Run(ctx, &Request{ID: "djur", Name: "  ", Slugs: []string{"djur"}})
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("rejects missing criteria", func(t *testing.T) {
		_, err := p.Run(ctx, &Request{ID: "djur", Name: "Djur"})
		assert.ErrorIs(t, err, selection.ErrNoCriteria)
	})

	t.Run("rejects annotation without an annotator", func(t *testing.T) {
		_, err := p.Run(ctx, &Request{
			ID:          "djur",
			Name:        "Djur",
			Slugs:       []string{"djur"},
			WithPhrases: true,
			Annotate:    true,
		})
		assert.ErrorIs(t, err, ErrAnnotatorRequired)
	})
}

func TestSameDir(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, sameDir(dir, dir))
	assert.True(t, sameDir(dir, dir+string(os.PathSeparator)))
	assert.False(t, sameDir(dir, t.TempDir()))
	assert.False(t, sameDir(dir, ""))
	assert.False(t, sameDir("", dir))

	// Unstattable paths fall back to lexical comparison.
	ghost := filepath.Join(dir, "ghost")
	assert.True(t, sameDir(ghost, ghost))
	assert.False(t, sameDir(ghost, filepath.Join(dir, "other")))
}
