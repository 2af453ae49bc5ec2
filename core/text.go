package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord canonicalizes a headword for lookups: NFC composition
// plus trimming, then lowercasing. Composed and decomposed spellings
// of å, ä and ö compare equal after this.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// CleanField canonicalizes a free-text catalog field without touching
// its case: NFC composition plus trimming.
func CleanField(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
