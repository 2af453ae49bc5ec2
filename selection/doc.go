// Package selection turns catalog rows into a ranked candidate list.
//
// Selection runs in three stages:
//   - build a word lookup from the rows matching the active category
//     filters, first usable row per word, catalog order preserved
//   - resolve the requested words against it (explicit word list) or
//     take every word of the lookup (category mode)
//   - order by corpus frequency rank and trim to the configured cap
//
// The sort is stable, so words the frequency table cannot rank keep
// their lookup order instead of jumping around between runs.
package selection
