package ai

import "context"

// Annotator marks the target word in an example phrase.
// Implementations must be thread-safe for concurrent use.
type Annotator interface {
	// Annotate returns phrase with every occurrence of word wrapped in
	// square brackets, including inflected forms and compounds that
	// start with the word. Everything else comes back verbatim.
	// Returns an error when the service fails or answers unusably;
	// callers must treat that as fatal rather than fall back silently.
	Annotate(ctx context.Context, word, phrase string) (string, error)
}
