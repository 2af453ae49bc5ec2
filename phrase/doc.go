// Package phrase turns the catalog's raw example phrases into finished
// phrase entries.
//
// The phrases cell of a catalog row is an untrusted serialized list;
// parsing is permissive and never fails, it just yields nothing. Kept
// phrases are cleaned (enumeration markers, whitespace) and then the
// candidate word is marked with square brackets, either by the built-in
// pattern bracketer or by an external annotation service. Entries
// deduplicate on word plus phrase text, first occurrence wins.
package phrase
