// Package catalog loads the sign lexicon catalog from CSV.
//
// The catalog is the single source of truth for signs: one row per
// entry with the headword, the movie reference, category labeling and
// optional example phrases. Columns are resolved by header name, so
// column order in the file does not matter. Load preserves row order;
// downstream selection depends on it.
package catalog
