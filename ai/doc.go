// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ai provides the abstraction for external phrase annotation.
//
// Example phrases in a wordlist carry the target word in square
// brackets so the flashcard UI can highlight it. The built-in pattern
// bracketer handles the regular case, but a language model can also
// recognize irregular forms and compounds. This package defines that
// collaborator as an interface so the pipeline never couples to a
// concrete service.
//
// # Implementation Packages
//
//   - ai/openai: production implementation for OpenAI-compatible chat
//     APIs (Ollama, LocalAI, vLLM, OpenAI itself)
//   - ai/mock: test double for unit testing without a model server
//
// # Constructor Return Type Pattern
//
// The public constructor (openai.NewAnnotator) returns the ai.Annotator
// INTERFACE to enforce abstraction and prevent accidental coupling to
// implementation details. The mock constructor (mock.NewMockAnnotator)
// returns the CONCRETE type so tests can inject behavior via the
// function field and assert on call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	annotator, err := openai.NewAnnotator(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	marked, err := annotator.Annotate(ctx, "hund", "Hunden skäller.")
//	// marked == "[Hunden] skäller."
//
// Annotation failures are contractually fatal to a run: a wordlist with
// half its phrases marked is worse than no wordlist, so there is no
// silent fallback to the pattern bracketer.
package ai
