package mock

import (
	"context"
	"strings"
)

// MockTermExtractor is a test double for ai.TermExtractor.
// It allows custom behavior injection via function fields.
type MockTermExtractor struct {
	// ExtractTermFunc is called by ExtractTerm if set.
	// If nil, uses a simple default that returns the question's longest word.
	ExtractTermFunc func(ctx context.Context, question string) (string, error)

	callCount int
}

// NewMockTermExtractor creates a mock term extractor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockTermExtractor() *MockTermExtractor {
	return &MockTermExtractor{}
}

// ExtractTerm returns a mock search term.
// Default behavior: the longest word of the question, lowercased. This is a
// crude stand-in for topic extraction that is deterministic and good enough
// for routing tests.
func (m *MockTermExtractor) ExtractTerm(ctx context.Context, question string) (string, error) {
	m.callCount++

	if m.ExtractTermFunc != nil {
		return m.ExtractTermFunc(ctx, question)
	}

	longest := ""
	for _, word := range strings.Fields(strings.ToLower(question)) {
		if len(word) > len(longest) {
			longest = word
		}
	}
	return longest, nil
}

// CallCount returns the number of times ExtractTerm was called.
func (m *MockTermExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockTermExtractor) Reset() {
	m.callCount = 0
	m.ExtractTermFunc = nil
}
