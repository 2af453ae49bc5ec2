package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/jbeskow/signflash/pipeline"
)

// consoleMonitor streams pipeline progress to the terminal.
// Verification results arrive from worker goroutines, so every write
// takes the mutex.
type consoleMonitor struct {
	mu  sync.Mutex
	out io.Writer
}

var _ pipeline.Monitor = (*consoleMonitor)(nil)

func newConsoleMonitor(out io.Writer) *consoleMonitor {
	return &consoleMonitor{out: out}
}

func (m *consoleMonitor) CatalogLoaded(rows int) {
	m.printf("Loaded %d catalog rows\n", rows)
}

func (m *consoleMonitor) FrequencyLoaded(words int) {
	if words > 0 {
		m.printf("Loaded %d unique word forms\n", words)
	}
}

func (m *consoleMonitor) CandidatesSelected(kept, dropped int) {
	if dropped > 0 {
		m.printf("Trimmed to %d most frequent words (dropped %d)\n", kept, dropped)
		return
	}
	m.printf("Selected %d words\n", kept)
}

func (m *consoleMonitor) VerifyStart(total int) {
	m.printf("Verifying %d videos...\n", total)
}

func (m *consoleMonitor) VerifyResult(word, video string, ok bool) {
	status := "OK"
	if !ok {
		status = "MISSING"
	}
	m.printf("  Checking: %s -> %s ... %s\n", word, video, status)
}

func (m *consoleMonitor) PhraseAnnotated(word string, count int) {
	m.printf("  Phrase %d for '%s'\n", count, word)
}

func (m *consoleMonitor) ArtifactWritten(path string, words, phrases int) {
	if phrases > 0 {
		m.printf("\nWrote %d words and %d phrases to %s\n", words, phrases, path)
		return
	}
	m.printf("\nWrote %d words to %s\n", words, path)
}

func (m *consoleMonitor) IndexRebuilt(path string, files int) {
	m.printf("Rebuilt %s (%d wordlists)\n", path, files)
}

func (m *consoleMonitor) printf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fmt.Fprintf(m.out, format, args...)
}
