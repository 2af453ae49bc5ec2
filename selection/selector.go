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


package selection

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jbeskow/signflash/core"
	"github.com/jbeskow/signflash/frequency"
)

const (
	// DefaultMaxWords caps the candidate list when the caller does not.
	DefaultMaxWords = 100

	// FingerspellingSlug is the reserved pseudo-category that selects
	// entries existing only as fingerspelling.
	FingerspellingSlug = "bokstavering"

	// fingerspellingMarker opens the description of a fingerspelled entry.
	fingerspellingMarker = "bokstaveras"

	// alternateSeparator splits a description that also documents a proper
	// sign. Entries carrying it are not fingerspelled-only.
	alternateSeparator = "//"
)

// Options control a selection run.
type Options struct {
	// Slugs filters the catalog by category slug, case-insensitive.
	Slugs []string

	// Words switches to explicit word-list mode. HaveWords distinguishes
	// an empty list from no list at all; an empty explicit list is a
	// valid criterion that selects nothing.
	Words     []string
	HaveWords bool

	// MaxWords caps the ranked candidate list. Zero or negative means
	// DefaultMaxWords.
	MaxWords int
}

// Result is the outcome of a selection run.
type Result struct {
	// Candidates in final order: frequency rank ascending, ties in
	// lookup order (catalog order, or word-list order in list mode).
	Candidates []core.Candidate

	// Dropped counts candidates trimmed off the tail by MaxWords.
	Dropped int

	// Missing lists requested words that had no usable row under the
	// active filters, in request order.
	Missing []string

	// Unmatched lists requested slugs that matched no rows.
	Unmatched []string
}

// Select resolves, ranks and trims candidates. It returns ErrNoCriteria
// when the options name neither slugs nor a word list.
func Select(signs []core.Sign, table frequency.Table, opts Options) (*Result, error) {
	slugs := normalizeSlugs(opts.Slugs)
	if len(slugs) == 0 && !opts.HaveWords {
		return nil, ErrNoCriteria
	}

	lookup, unmatched := buildLookup(signs, slugs)
	res := &Result{Unmatched: unmatched}

	var words []string
	if opts.HaveWords {
		seen := make(map[string]bool, len(opts.Words))
		for _, raw := range opts.Words {
			word := core.NormalizeWord(raw)
			if word == "" || seen[word] {
				continue
			}
			seen[word] = true
			if _, ok := lookup.rows[word]; !ok {
				res.Missing = append(res.Missing, word)
				continue
			}
			words = append(words, word)
		}
	} else {
		words = slices.Clone(lookup.order)
	}

	slices.SortStableFunc(words, func(a, b string) int {
		return cmp.Compare(table.Rank(a), table.Rank(b))
	})

	maxWords := opts.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if len(words) > maxWords {
		res.Dropped = len(words) - maxWords
		words = words[:maxWords]
	}

	res.Candidates = make([]core.Candidate, 0, len(words))
	for _, w := range words {
		res.Candidates = append(res.Candidates, core.Candidate{Word: w, Sign: lookup.rows[w]})
	}
	return res, nil
}

// wordLookup maps each word to its first usable row under the active
// filters. Insertion order is kept so rank ties stay deterministic.
type wordLookup struct {
	rows  map[string]core.Sign
	order []string
}

// normalizeSlugs lowercases, trims and dedupes the requested slugs,
// preserving request order.
func normalizeSlugs(slugs []string) []string {
	var requested []string
	seen := make(map[string]bool, len(slugs))
	for _, raw := range slugs {
		slug := core.NormalizeWord(raw)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		requested = append(requested, slug)
	}
	return requested
}

// buildLookup expects slugs already normalized.
func buildLookup(signs []core.Sign, requested []string) (*wordLookup, []string) {
	want := make(map[string]bool, len(requested))
	fingerspelling := false
	for _, slug := range requested {
		want[slug] = true
		if slug == FingerspellingSlug {
			fingerspelling = true
		}
	}

	matched := make(map[string]bool, len(requested))
	lookup := &wordLookup{rows: make(map[string]core.Sign)}
	for i := range signs {
		s := &signs[i]
		if s.Word == "" || !s.HasVideo() {
			continue
		}

		eligible := len(requested) == 0
		if s.Slug != "" && s.Slug != FingerspellingSlug && want[s.Slug] {
			eligible = true
			matched[s.Slug] = true
		}
		if fingerspelling && fingerspelledOnly(s) {
			eligible = true
			matched[FingerspellingSlug] = true
		}
		if !eligible {
			continue
		}

		if _, ok := lookup.rows[s.Word]; ok {
			continue
		}
		lookup.rows[s.Word] = *s
		lookup.order = append(lookup.order, s.Word)
	}

	var unmatched []string
	for _, slug := range requested {
		if !matched[slug] {
			unmatched = append(unmatched, slug)
		}
	}
	return lookup, unmatched
}

// fingerspelledOnly reports whether the entry exists only as
// fingerspelling: the description opens with the marker and names no
// alternate proper sign.
func fingerspelledOnly(s *core.Sign) bool {
	desc := strings.ToLower(s.Description)
	return strings.HasPrefix(desc, fingerspellingMarker) &&
		!strings.Contains(desc, alternateSeparator)
}
