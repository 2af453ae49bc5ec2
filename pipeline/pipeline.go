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


package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeskow/signflash/ai"
	"github.com/jbeskow/signflash/catalog"
	"github.com/jbeskow/signflash/core"
	"github.com/jbeskow/signflash/frequency"
	"github.com/jbeskow/signflash/phrase"
	"github.com/jbeskow/signflash/selection"
	"github.com/jbeskow/signflash/verify"
	"github.com/jbeskow/signflash/wordlist"
)

// Request describes one pipeline run.
type Request struct {
	// ID and Name identify the produced wordlist.
	ID   string
	Name string

	// Slugs filters candidates by category; WordFile switches to
	// explicit word-list mode (one word per line). At least one of the
	// two must be given.
	Slugs    []string
	WordFile string

	// MaxWords caps the candidate count; zero means the selection
	// default.
	MaxWords int

	// ChunkSize splits the output into balanced chunks when the entry
	// count exceeds it. Zero writes a single artifact.
	ChunkSize int

	// SkipVerify assumes every video exists instead of probing.
	SkipVerify bool

	// WithPhrases adds example phrases to the artifact. Annotate marks
	// the target words through the configured annotator instead of the
	// pattern bracketer; it has no effect without WithPhrases.
	WithPhrases bool
	Annotate    bool

	// Input locations.
	Catalog   string
	Frequency string

	// OutputDir receives the artifacts. WordlistDir is the canonical
	// wordlist directory; writing into it triggers an index rebuild.
	OutputDir   string
	WordlistDir string
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Lists holds the written wordlists, one per artifact.
	Lists []*core.Wordlist

	// Paths holds the artifact paths in write order.
	Paths []string

	// Entries and Phrases count what survived, across all chunks.
	Entries int
	Phrases int

	// IndexPath names the rebuilt index, empty when no rebuild ran.
	IndexPath string

	// Warnings collects the run's non-fatal findings for batch display.
	Warnings []string
}

// Pipeline runs the whole build: load, select, verify, extract, write.
type Pipeline struct {
	prober    verify.Prober
	annotator ai.Annotator
	monitor   Monitor
	logger    *slog.Logger
	workers   int
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithProber overrides the video prober.
// Default probes the lexicon over HTTP.
func WithProber(prober verify.Prober) Option {
	return func(p *Pipeline) error {
		if prober != nil {
			p.prober = prober
		}
		return nil
	}
}

// WithAnnotator installs the annotator used in annotation mode.
func WithAnnotator(annotator ai.Annotator) Option {
	return func(p *Pipeline) error {
		p.annotator = annotator
		return nil
	}
}

// WithMonitor installs a progress monitor. Default is silent.
func WithMonitor(monitor Monitor) Option {
	return func(p *Pipeline) error {
		if monitor != nil {
			p.monitor = monitor
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger != nil {
			p.logger = logger
		}
		return nil
	}
}

// WithWorkers sets the number of concurrent verification probes.
// Default is verify.DefaultWorkers, with a minimum of 1.
func WithWorkers(workers int) Option {
	return func(p *Pipeline) error {
		if workers < 1 {
			workers = 1
		}
		p.workers = workers
		return nil
	}
}

// NewPipeline creates a pipeline with default collaborators.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		prober:  verify.NewHTTPProber(),
		monitor: &NopMonitor{},
		logger:  slog.Default(),
		workers: verify.DefaultWorkers,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Run executes req. Fatal conditions abort before any artifact write.
// On ErrNoEntries the returned Result still carries the accumulated
// warnings so callers can report what went missing.
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Result, error) {
	if err := p.validate(req); err != nil {
		return nil, err
	}

	result := &Result{}

	signs, err := catalog.Load(req.Catalog)
	if err != nil {
		return nil, err
	}
	p.logger.Info("catalog loaded", "path", req.Catalog, "rows", len(signs))
	p.monitor.CatalogLoaded(len(signs))

	table, err := frequency.Load(req.Frequency)
	if err != nil {
		if !errors.Is(err, frequency.ErrCorpusNotFound) {
			return nil, err
		}
		p.logger.Warn("frequency corpus missing, falling back to catalog order", "path", req.Frequency)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("frequency corpus not found: %s (using catalog order)", req.Frequency))
	}
	p.monitor.FrequencyLoaded(len(table))

	selOpts := selection.Options{Slugs: req.Slugs, MaxWords: req.MaxWords}
	if req.WordFile != "" {
		words, err := readWordFile(req.WordFile)
		if err != nil {
			return nil, err
		}
		selOpts.Words = words
		selOpts.HaveWords = true
	}

	sel, err := selection.Select(signs, table, selOpts)
	if err != nil {
		return nil, err
	}
	for _, slug := range sel.Unmatched {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no signs matched category '%s'", slug))
	}
	for _, word := range sel.Missing {
		if len(req.Slugs) > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("NOT FOUND: '%s' (not in category '%s')", word, strings.Join(req.Slugs, ",")))
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("NOT FOUND: '%s'", word))
		}
	}
	p.monitor.CandidatesSelected(len(sel.Candidates), sel.Dropped)

	candidates, entries, verifyWarnings, err := p.verifyCandidates(ctx, req, sel.Candidates)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, verifyWarnings...)

	if len(entries) == 0 {
		return result, ErrNoEntries
	}

	var phrases []core.PhraseEntry
	if req.WithPhrases {
		phrases, err = p.extractPhrases(ctx, req, candidates)
		if err != nil {
			return nil, err
		}
	}

	list := &core.Wordlist{ID: req.ID, Name: req.Name, Words: entries, Phrases: phrases}
	result.Lists = wordlist.Split(list, req.ChunkSize)
	result.Entries = len(entries)
	result.Phrases = len(phrases)

	for _, l := range result.Lists {
		path, err := wordlist.WriteFile(req.OutputDir, l)
		if err != nil {
			return nil, err
		}
		result.Paths = append(result.Paths, path)
		p.monitor.ArtifactWritten(path, len(l.Words), len(l.Phrases))
	}

	if sameDir(req.OutputDir, req.WordlistDir) {
		files, err := wordlist.RebuildIndex(req.OutputDir)
		if err != nil {
			return nil, err
		}
		result.IndexPath = filepath.Join(req.OutputDir, wordlist.IndexFilename)
		p.monitor.IndexRebuilt(result.IndexPath, len(files))
	}

	return result, nil
}

func (p *Pipeline) validate(req *Request) error {
	if err := core.ValidateListID(req.ID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		return ErrMissingName
	}
	if len(req.Slugs) == 0 && req.WordFile == "" {
		return selection.ErrNoCriteria
	}
	if req.Annotate && p.annotator == nil {
		return ErrAnnotatorRequired
	}
	return nil
}

// verifyCandidates turns candidates into word entries, probing each
// video unless the request skips verification. Candidates whose video
// is missing are dropped with a warning; survivors keep their order.
func (p *Pipeline) verifyCandidates(ctx context.Context, req *Request, candidates []core.Candidate) ([]core.Candidate, []core.WordEntry, []string, error) {
	entries := make([]core.WordEntry, 0, len(candidates))

	if req.SkipVerify {
		for _, c := range candidates {
			entries = append(entries, core.WordEntry{Word: c.Word, Video: core.VideoFilename(c.Sign.Video)})
		}
		return candidates, entries, nil, nil
	}

	p.monitor.VerifyStart(len(candidates))
	outcomes, err := verify.All(ctx, p.prober, candidates, p.workers, func(c core.Candidate, ok bool) {
		p.monitor.VerifyResult(c.Word, core.VideoFilename(c.Sign.Video), ok)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	var kept []core.Candidate
	var warnings []string
	for _, o := range outcomes {
		filename := core.VideoFilename(o.Candidate.Sign.Video)
		if !o.OK {
			warnings = append(warnings, fmt.Sprintf("VIDEO MISSING: '%s' -> %s", o.Candidate.Word, filename))
			continue
		}
		kept = append(kept, o.Candidate)
		entries = append(entries, core.WordEntry{Word: o.Candidate.Word, Video: filename})
	}
	return kept, entries, warnings, nil
}

func (p *Pipeline) extractPhrases(ctx context.Context, req *Request, candidates []core.Candidate) ([]core.PhraseEntry, error) {
	opts := []phrase.ExtractorOption{phrase.WithLogger(p.logger)}
	if req.Annotate {
		opts = append(opts, phrase.WithAnnotator(p.annotator))
	}
	extractor := phrase.NewExtractor(opts...)

	perWord := make(map[string]int)
	phrases, err := extractor.Extract(ctx, candidates, func(word, _ string) {
		perWord[word]++
		p.monitor.PhraseAnnotated(word, perWord[word])
	})
	if err != nil {
		return nil, err
	}
	if phrases == nil {
		// The artifact still carries an empty phrases field.
		phrases = []core.PhraseEntry{}
	}
	return phrases, nil
}

// readWordFile reads one word per line, normalized, blank lines
// skipped. A missing file is fatal, unlike a missing frequency corpus.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := core.NormalizeWord(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}
	return words, nil
}

// sameDir reports whether a and b name the same directory: stat
// identity when both exist, cleaned absolute paths otherwise.
func sameDir(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ia, errA := os.Stat(a)
	ib, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(ia, ib)
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return false
	}
	return absA == absB
}
