// Copyright 2025 Amharies
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


package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/amharies/BIONARY--CHATBOT/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// TermExtractor implements ai.TermExtractor using OpenAI-compatible chat APIs.
type TermExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// newTermExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTermExtractor(config *ai.Config) (*TermExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &TermExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewTermExtractor creates a new term extractor using the provided configuration.
//
// Returns ai.TermExtractor interface to enforce abstraction.
func NewTermExtractor(config *ai.Config) (ai.TermExtractor, error) {
	return newTermExtractor(config)
}

// ExtractTerm asks the model for the core entity/topic of the question.
// The response is cleaned (first line, quotes stripped, lowercased); an empty
// cleaned response is a valid result meaning "match broadly".
func (e *TermExtractor) ExtractTerm(ctx context.Context, question string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(termInstruction),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(question),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		e.logger.Warn("term extraction call failed", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		e.logger.Debug("no choices returned from model")
		return "", nil
	}

	term := cleanTerm(response.Choices[0].Content)
	e.logger.Debug("extracted term", "term", term)
	return term, nil
}

// cleanTerm reduces a model response to a usable search term: first line
// only, surrounding quotes and whitespace stripped, lowercased.
func cleanTerm(response string) string {
	term := strings.TrimSpace(response)
	if i := strings.IndexByte(term, '\n'); i >= 0 {
		term = term[:i]
	}
	term = strings.Trim(term, "\"'` ")
	return strings.ToLower(term)
}
