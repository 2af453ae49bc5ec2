// Package mock provides a test double implementation of ai.Annotator.
//
// The mock allows tests to run without a model server and enables
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	annotator := mock.NewMockAnnotator()
//	marked, err := annotator.Annotate(ctx, "hund", "Hunden skäller.")
//
//	// Custom behavior injection
//	annotator.AnnotateFunc = func(ctx context.Context, word, phrase string) (string, error) {
//	    return "", errors.New("service down")
//	}
//
//	// Check call counts
//	count := annotator.CallCount()
//
// # Default Behavior
//
// Without an injected function the mock brackets case-insensitive
// literal occurrences of the word only. It does not bracket inflected
// forms or compounds the way a real model would.
package mock
