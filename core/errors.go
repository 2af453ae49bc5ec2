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

import "errors"

// Domain validation errors
var (
	// ErrInvalidWordlist indicates a Wordlist failed validation.
	ErrInvalidWordlist = errors.New("invalid wordlist")

	// ErrEmptyListID indicates the wordlist ID field is empty.
	ErrEmptyListID = errors.New("wordlist id cannot be empty")

	// ErrReservedListID indicates the wordlist ID collides with the index artifact.
	ErrReservedListID = errors.New("wordlist id is reserved for the index")

	// ErrUnsafeListID indicates the wordlist ID contains characters unsafe for filenames.
	ErrUnsafeListID = errors.New("wordlist id may only contain letters, digits, '-' and '_'")

	// ErrEmptyListName indicates the wordlist Name field is empty.
	ErrEmptyListName = errors.New("wordlist name cannot be empty")

	// ErrNoWords indicates the wordlist has no word entries.
	ErrNoWords = errors.New("wordlist has no word entries")

	// ErrInvalidEntry indicates a word or phrase entry has a blank field.
	ErrInvalidEntry = errors.New("invalid entry")
)
