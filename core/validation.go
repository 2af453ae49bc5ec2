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


package core

import (
	"fmt"
	"strings"
	"unicode"
)

// indexStem is the basename every wordlist ID must avoid; the index
// artifact is written as <indexStem>.js next to the wordlists.
const indexStem = "all"

// ValidateWordlist validates a Wordlist before it is written.
//
// Validation rules:
//   - ID must be non-empty, filename-safe and not the reserved index name
//   - Name must not be empty
//   - at least one word entry, each with a word and a video filename
//   - every phrase entry carries word, phrase and video
//
// NOT validated:
//   - Phrases may be nil (the artifact then omits the field)
func ValidateWordlist(list *Wordlist) error {
	if list == nil {
		return fmt.Errorf("%w: list is nil", ErrInvalidWordlist)
	}

	if err := ValidateListID(list.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWordlist, err)
	}

	if list.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordlist, ErrEmptyListName)
	}

	if len(list.Words) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidWordlist, ErrNoWords)
	}

	for i, w := range list.Words {
		if w.Word == "" || w.Video == "" {
			return fmt.Errorf("%w: %w: word %d", ErrInvalidWordlist, ErrInvalidEntry, i)
		}
	}

	for i, p := range list.Phrases {
		if p.Word == "" || p.Phrase == "" || p.Video == "" {
			return fmt.Errorf("%w: %w: phrase %d", ErrInvalidWordlist, ErrInvalidEntry, i)
		}
	}

	return nil
}

// ValidateListID validates that an ID can name an artifact file.
func ValidateListID(id string) error {
	if id == "" {
		return ErrEmptyListID
	}
	if strings.EqualFold(id, indexStem) {
		return fmt.Errorf("%w: %q", ErrReservedListID, id)
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fmt.Errorf("%w: %q", ErrUnsafeListID, id)
		}
	}
	return nil
}
