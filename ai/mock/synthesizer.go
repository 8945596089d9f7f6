package mock

import (
	"context"
	"fmt"

	"github.com/amharies/BIONARY--CHATBOT/ai"
)

// MockSynthesizer is a test double for ai.AnswerSynthesizer.
// It allows custom behavior injection via function fields.
type MockSynthesizer struct {
	// SynthesizeFunc is called by Synthesize if set.
	// If nil, returns a canned answer embedding the question.
	SynthesizeFunc func(ctx context.Context, question, information string, preferTable bool) (string, error)

	callCount      int
	lastInfo       string
	lastPreferTab  bool
	lastQuestion   string
}

// NewMockSynthesizer creates a mock synthesizer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{}
}

// Synthesize returns a canned answer. The call arguments are recorded so
// tests can assert on the assembled context that reached the model boundary.
func (m *MockSynthesizer) Synthesize(ctx context.Context, question, information string, preferTable bool) (string, error) {
	m.callCount++
	m.lastQuestion = question
	m.lastInfo = information
	m.lastPreferTab = preferTable

	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, question, information, preferTable)
	}

	return fmt.Sprintf("mock answer to %q", question), nil
}

// CallCount returns the number of times Synthesize was called.
func (m *MockSynthesizer) CallCount() int {
	return m.callCount
}

// LastInformation returns the information block passed to the last call.
func (m *MockSynthesizer) LastInformation() string {
	return m.lastInfo
}

// LastQuestion returns the question passed to the last call.
func (m *MockSynthesizer) LastQuestion() string {
	return m.lastQuestion
}

// LastPreferTable returns the preferTable flag of the last call.
func (m *MockSynthesizer) LastPreferTable() bool {
	return m.lastPreferTab
}

// Reset clears the recorded state and custom functions.
func (m *MockSynthesizer) Reset() {
	m.callCount = 0
	m.lastQuestion = ""
	m.lastInfo = ""
	m.lastPreferTab = false
	m.SynthesizeFunc = nil
}

var _ ai.AnswerSynthesizer = (*MockSynthesizer)(nil)
