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

package answer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amharies/BIONARY--CHATBOT/ai"
	"github.com/amharies/BIONARY--CHATBOT/search"
)

// InsufficientAnswer is returned verbatim when retrieval produced nothing
// to ground an answer on. No model call is made in that case.
const InsufficientAnswer = "I do not have enough information to answer that."

// Answerer turns a retrieval result into a synthesized answer.
type Answerer struct {
	synthesizer ai.AnswerSynthesizer
	logger      *slog.Logger
}

// NewAnswerer creates an answerer over the given synthesizer.
func NewAnswerer(synthesizer ai.AnswerSynthesizer, logger *slog.Logger) (*Answerer, error) {
	if synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Answerer{
		synthesizer: synthesizer,
		logger:      logger.With("component", "answerer"),
	}, nil
}

// Answer assembles the context for the retrieval result and asks the
// model for a grounded answer. An empty result short-circuits to
// InsufficientAnswer without touching the model. With more than one
// record in context, the synthesizer is asked to prefer a table.
func (a *Answerer) Answer(ctx context.Context, question string, result *search.Result) (string, error) {
	var (
		information string
		preferTable bool
	)

	switch {
	case result != nil && result.Direct != nil:
		information = RenderDirect(result.Direct)
	case result != nil && len(result.Ranked) > 0:
		information = RenderContext(result.Ranked)
		preferTable = len(result.Ranked) > 1
	default:
		return InsufficientAnswer, nil
	}

	text, err := a.synthesizer.Synthesize(ctx, question, information, preferTable)
	if err != nil {
		a.logger.Error("synthesis failed", "err", err)
		return "", fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	return text, nil
}
