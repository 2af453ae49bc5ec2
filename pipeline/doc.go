// Package pipeline orchestrates a full study-list build.
//
// A run loads the catalog and frequency corpus, selects and ranks
// candidates, verifies their videos against the remote lexicon,
// extracts and marks example phrases, and writes the resulting
// artifacts, rebuilding the aggregate index when the output lands in
// the canonical wordlist directory. Fatal conditions abort the run
// before any artifact is written; recoverable findings accumulate as
// warnings on the result for batch display.
package pipeline
