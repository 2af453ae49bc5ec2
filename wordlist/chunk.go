package wordlist

import (
	"fmt"

	"github.com/jbeskow/signflash/core"
)

// Split divides list into balanced chunks of at most chunkSize words.
// Chunk count is ceil(n/chunkSize) and every chunk holds
// ceil(n/chunkCount) words, so the final chunk is never
// disproportionately small. Chunk k takes id "<id><k>" and name
// "<name> <k>" counting from 1, and phrase entries follow their word
// into its chunk. With chunkSize <= 0 or a list that already fits, the
// list itself is the only element.
func Split(list *core.Wordlist, chunkSize int) []*core.Wordlist {
	n := len(list.Words)
	if chunkSize <= 0 || n <= chunkSize {
		return []*core.Wordlist{list}
	}

	chunkCount := (n + chunkSize - 1) / chunkSize
	perChunk := (n + chunkCount - 1) / chunkCount

	chunks := make([]*core.Wordlist, 0, chunkCount)
	for k := 0; k < chunkCount; k++ {
		start := k * perChunk
		end := min(start+perChunk, n)
		words := list.Words[start:end]

		var phrases []core.PhraseEntry
		if list.Phrases != nil {
			members := make(map[string]struct{}, len(words))
			for _, w := range words {
				members[w.Word] = struct{}{}
			}
			phrases = []core.PhraseEntry{}
			for _, p := range list.Phrases {
				if _, ok := members[p.Word]; ok {
					phrases = append(phrases, p)
				}
			}
		}

		chunks = append(chunks, &core.Wordlist{
			ID:      fmt.Sprintf("%s%d", list.ID, k+1),
			Name:    fmt.Sprintf("%s %d", list.Name, k+1),
			Words:   words,
			Phrases: phrases,
		})
	}
	return chunks
}
