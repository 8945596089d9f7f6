package mock

import "github.com/amharies/BIONARY--CHATBOT/ai"

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	extractor   *MockTermExtractor
	synthesizer *MockSynthesizer
}

// NewMockProvider creates a provider backed by mock services.
// Returns the ai.Provider interface since it is the primary entry point; use
// GetMockExtractor/GetMockSynthesizer to reach the concrete types for
// assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		extractor:   NewMockTermExtractor(),
		synthesizer: NewMockSynthesizer(),
	}
}

// TermExtractor returns the mock term extractor as the interface type.
func (p *MockProvider) TermExtractor() ai.TermExtractor {
	return p.extractor
}

// Synthesizer returns the mock synthesizer as the interface type.
func (p *MockProvider) Synthesizer() ai.AnswerSynthesizer {
	return p.synthesizer
}

// GetMockExtractor returns the concrete mock extractor for test assertions.
func (p *MockProvider) GetMockExtractor() *MockTermExtractor {
	return p.extractor
}

// GetMockSynthesizer returns the concrete mock synthesizer for test assertions.
func (p *MockProvider) GetMockSynthesizer() *MockSynthesizer {
	return p.synthesizer
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}
