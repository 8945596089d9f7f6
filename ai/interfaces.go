package ai

import "context"

// TermExtractor derives a compact fuzzy search term from a normalized
// natural-language question. Implementations must be thread-safe for
// concurrent use.
type TermExtractor interface {
	// ExtractTerm returns the core entity or topic of the question, stripped
	// of generic request words. An empty string is a valid result and means
	// "match broadly". Returns an error if extraction fails.
	ExtractTerm(ctx context.Context, question string) (string, error)
}

// AnswerSynthesizer turns an assembled context block and the original
// question into a formatted answer. Implementations must be thread-safe for
// concurrent use.
type AnswerSynthesizer interface {
	// Synthesize generates an answer using only the provided information.
	// When preferTable is true the model is instructed to present multiple
	// records as a table rather than free text.
	// Returns an error if answer generation fails.
	Synthesize(ctx context.Context, question, information string, preferTable bool) (string, error)
}

// Provider aggregates the generative-model services for convenient
// initialization and lifecycle management. A provider creates and manages
// TermExtractor and AnswerSynthesizer instances, ensuring they share
// configuration and resources appropriately.
type Provider interface {
	// TermExtractor returns the search-term extraction service.
	TermExtractor() TermExtractor

	// Synthesizer returns the answer synthesis service.
	Synthesizer() AnswerSynthesizer

	// Close releases resources held by the provider and its services.
	Close() error
}
