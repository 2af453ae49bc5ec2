package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a deterministic identifier for derived content.
// It is generated with content-based hashing so that identical
// content always maps to the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Sign is one row of the lexicon catalog. Word and Slug are normalized
// (NFC, trimmed, lowercased) at load time; the remaining fields keep
// their catalog spelling apart from NFC normalization and trimming.
type Sign struct {
	Word        string
	Video       string // movie reference as it appears in the catalog, may carry a path prefix
	Category    string // display label, e.g. "Djur & natur"
	Slug        string // category key, e.g. "djur"
	Description string
	PhrasesRaw  string // untouched phrases cell, parsed lazily by the phrase package
}

// HasVideo reports whether the row carries a video reference.
func (s *Sign) HasVideo() bool {
	return s.Video != ""
}

// RawPhrase is one example phrase attached to a catalog row, before
// cleaning and bracketing.
type RawPhrase struct {
	Phrase string
	Video  string
}

// Candidate pairs a selected word with the catalog row that backs it.
// Each word resolves to exactly one row (first usable row wins).
type Candidate struct {
	Word string
	Sign Sign
}

// WordEntry is one vocabulary item of a finished wordlist.
// Video holds only the filename, never a path.
type WordEntry struct {
	Word  string
	Video string
}

// PhraseEntry is one example phrase of a finished wordlist. Phrase text
// is cleaned and has the target word bracketed, e.g. "[Hunden] skäller."
type PhraseEntry struct {
	Word   string
	Phrase string
	Video  string
}

// Key returns the deduplication identity of the entry. Two entries with
// the same word and phrase text collide regardless of their video.
func (p *PhraseEntry) Key() ID {
	return IDFromContent(p.Word + "\x00" + p.Phrase)
}

// Wordlist is a complete artifact ready for encoding. A nil Phrases
// slice means the artifact omits the phrases field entirely; an empty
// non-nil slice emits an empty list.
type Wordlist struct {
	ID      string
	Name    string
	Words   []WordEntry
	Phrases []PhraseEntry
}

// VideoFilename returns the final path segment of a movie reference.
// References without a separator come back unchanged.
func VideoFilename(video string) string {
	if i := strings.LastIndexByte(video, '/'); i >= 0 {
		return video[i+1:]
	}
	return video
}
