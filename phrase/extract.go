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
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jbeskow/signflash/ai"
	"github.com/jbeskow/signflash/core"
)

// Extractor turns the raw phrase cells of selected candidates into
// deduplicated phrase entries with the target word marked.
type Extractor struct {
	annotator ai.Annotator
	logger    *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithAnnotator makes the extractor mark target words through the
// given annotator instead of the built-in pattern matcher. Annotation
// failures abort the whole extraction.
func WithAnnotator(annotator ai.Annotator) ExtractorOption {
	return func(e *Extractor) {
		e.annotator = annotator
	}
}

// WithLogger sets the logger used for per-phrase diagnostics.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor. Without options it brackets
// target words with the pattern matcher and logs to the default
// slog logger.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses, cleans, and marks the phrases of every candidate in
// order. Entries that share a word and phrase text keep their first
// occurrence. onPhrase, when non-nil, fires once for every entry that
// survives deduplication.
func (e *Extractor) Extract(ctx context.Context, candidates []core.Candidate, onPhrase func(word, marked string)) ([]core.PhraseEntry, error) {
	var entries []core.PhraseEntry
	seen := make(map[core.ID]struct{})

	for _, cand := range candidates {
		raws := ParseRaw(cand.Sign.PhrasesRaw)
		if len(raws) == 0 {
			continue
		}

		var bracketer *Bracketer
		if e.annotator == nil {
			bracketer = NewBracketer(cand.Word)
		}

		for _, raw := range raws {
			if strings.TrimSpace(raw.Phrase) == "" || strings.TrimSpace(raw.Video) == "" {
				continue
			}

			text := Clean(raw.Phrase)
			if text == "" {
				continue
			}

			var marked string
			if e.annotator != nil {
				annotated, err := e.annotator.Annotate(ctx, cand.Word, text)
				if err != nil {
					return nil, fmt.Errorf("annotate phrases for %q: %w", cand.Word, err)
				}
				marked = annotated
			} else {
				marked = bracketer.Bracket(text)
			}

			entry := core.PhraseEntry{
				Word:   cand.Word,
				Phrase: marked,
				Video:  core.VideoFilename(raw.Video),
			}
			key := entry.Key()
			if _, dup := seen[key]; dup {
				e.logger.Debug("skipping duplicate phrase", "word", cand.Word, "phrase", marked)
				continue
			}
			seen[key] = struct{}{}
			entries = append(entries, entry)

			if onPhrase != nil {
				onPhrase(cand.Word, marked)
			}
		}
	}

	return entries, nil
}
