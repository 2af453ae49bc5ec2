// Package verify checks that candidate videos exist on the remote
// lexicon host before they enter a wordlist.
//
// Probing is deliberately forgiving: a missing file, a transport error
// or an unrecognized filename all mean "not available" and cost the
// run nothing but a warning. Probes run on a bounded worker pool and
// results come back in candidate order, so verification never changes
// the ordering selection decided on.
package verify
