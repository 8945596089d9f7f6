package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amharies/BIONARY--CHATBOT/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrEmptyCompletion indicates the model returned no usable answer text.
var ErrEmptyCompletion = errors.New("model returned empty completion")

// AnswerSynthesizer implements ai.AnswerSynthesizer using OpenAI-compatible
// chat APIs.
type AnswerSynthesizer struct {
	client llms.Model
	logger *slog.Logger
}

// newAnswerSynthesizer is an internal constructor that returns the concrete type.
func newAnswerSynthesizer(config *ai.Config) (*AnswerSynthesizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.SynthesizerModel),
	)
	if err != nil {
		return nil, err
	}

	return &AnswerSynthesizer{
		client: client,
		logger: slog.Default().With("component", "openai-synthesizer"),
	}, nil
}

// NewAnswerSynthesizer creates a new answer synthesizer using the provided
// configuration.
//
// Returns ai.AnswerSynthesizer interface to enforce abstraction.
func NewAnswerSynthesizer(config *ai.Config) (ai.AnswerSynthesizer, error) {
	return newAnswerSynthesizer(config)
}

// Synthesize generates an answer grounded in the supplied information block.
func (s *AnswerSynthesizer) Synthesize(ctx context.Context, question, information string, preferTable bool) (string, error) {
	system := answerSystemPrompt
	if preferTable {
		system += tablePreference
	}

	user := fmt.Sprintf("Question:\n%s\n\nInformation:\n%s\n\nAnswer:", question, information)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(system),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(user),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.2))
	if err != nil {
		s.logger.Error("answer synthesis call failed", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", ErrEmptyCompletion
	}

	answer := strings.TrimSpace(response.Choices[0].Content)
	if answer == "" {
		return "", ErrEmptyCompletion
	}
	return answer, nil
}
