package openai

import "fmt"

const annotationSystemPrompt = `You mark target words in Swedish example phrases for a sign language flashcard application.

You receive a target word and a phrase. Return the phrase with every occurrence of the
target word wrapped in square brackets. Occurrences include inflected forms, definite
forms, plurals and compounds that begin with the target word (for "hund" that means
hunden, hundar, hundarna, hundvalp). Keep the original capitalization of each occurrence.

Rules:
- Output ONLY the phrase. No preamble, no explanation, no surrounding quotes.
- Never change, add or remove any character of the phrase outside the brackets you insert.
- Leave text that is already inside square brackets untouched.
- If the target word does not occur in the phrase, return the phrase unchanged.

Example:
Target word: hund
Phrase: Hunden skäller på katten.
Output: [Hunden] skäller på katten.

Example (compound):
Target word: barn
Phrase: Barnvagnen står i hallen.
Output: [Barnvagnen] står i hallen.

Example (no occurrence):
Target word: hund
Phrase: Katten sover.
Output: Katten sover.`

// buildAnnotationRequest formats the user message for one phrase.
func buildAnnotationRequest(word, phrase string) string {
	return fmt.Sprintf("Target word: %s\nPhrase: %s", word, phrase)
}
