// Package wordlist assembles the study-list artifacts the flashcard
// client loads.
//
// Each artifact is a small JS file that registers one wordlist on the
// client's global collection. The package renders artifacts, splits an
// oversized list into balanced chunks, and rebuilds the aggregate
// all.js index from every artifact in a directory.
package wordlist
