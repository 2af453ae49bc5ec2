package mock

import (
	"context"
	"strings"
	"sync"
)

// MockAnnotator is a test double for ai.Annotator.
// It allows custom behavior injection via the function field.
type MockAnnotator struct {
	// AnnotateFunc is called by Annotate if set.
	// If nil, literal occurrences of the word are bracketed.
	AnnotateFunc func(ctx context.Context, word, phrase string) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockAnnotator creates a mock annotator with default behavior.
// Note: returns the concrete type so tests can inject behavior and
// assert on call counts.
func NewMockAnnotator() *MockAnnotator {
	return &MockAnnotator{}
}

// Annotate brackets case-insensitive literal occurrences of word, or
// delegates to AnnotateFunc when set.
func (m *MockAnnotator) Annotate(ctx context.Context, word, phrase string) (string, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.AnnotateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, word, phrase)
	}

	if word == "" {
		return phrase, nil
	}

	var b strings.Builder
	lowerPhrase := strings.ToLower(phrase)
	lowerWord := strings.ToLower(word)
	i := 0
	for {
		j := strings.Index(lowerPhrase[i:], lowerWord)
		if j < 0 {
			b.WriteString(phrase[i:])
			break
		}
		j += i
		end := j + len(lowerWord)
		b.WriteString(phrase[i:j])
		b.WriteByte('[')
		b.WriteString(phrase[j:end])
		b.WriteByte(']')
		i = end
	}
	return b.String(), nil
}

// CallCount returns the number of times Annotate was called.
func (m *MockAnnotator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and the custom function.
func (m *MockAnnotator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.AnnotateFunc = nil
}
