package pipeline

import "errors"

var (
	// ErrMissingName indicates the request carries no wordlist name.
	ErrMissingName = errors.New("wordlist name is required")

	// ErrNoEntries indicates that no word entries survived selection
	// and verification; nothing was written.
	ErrNoEntries = errors.New("no valid entries generated")

	// ErrAnnotatorRequired indicates annotation mode was requested on a
	// pipeline built without an annotator.
	ErrAnnotatorRequired = errors.New("annotation requested but no annotator configured")
)
