package answer

import "errors"

var (
	// ErrSynthesizerRequired is returned when a synthesizer is not provided.
	ErrSynthesizerRequired = errors.New("answer synthesizer required")

	// ErrSynthesis wraps failures from the generative model during synthesis.
	ErrSynthesis = errors.New("answer synthesis failed")
)
