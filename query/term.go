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

package query

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/amharies/BIONARY--CHATBOT/ai"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)

// stopWords is the closed set of filler words removed by the keyword
// fallback: articles, prepositions, and generic request verbs.
var stopWords = map[string]struct{}{
	"give": {}, "details": {}, "about": {}, "events": {}, "conducted": {},
	"by": {}, "show": {}, "list": {}, "me": {}, "tell": {}, "what": {},
	"where": {}, "when": {}, "who": {}, "is": {}, "the": {}, "an": {},
	"a": {}, "of": {}, "in": {}, "on": {}, "at": {}, "for": {}, "to": {},
	"from": {}, "with": {}, "all": {}, "every": {}, "some": {}, "any": {},
}

// KeywordExtractor is the deterministic fallback tier: it strips
// punctuation, lowercases, and drops stop words. It never fails and an
// empty result is valid (matches broadly).
type KeywordExtractor struct{}

var _ ai.TermExtractor = (*KeywordExtractor)(nil)

// NewKeywordExtractor creates the stop-word based extractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// ExtractTerm returns the question with punctuation and stop words
// removed. The error is always nil.
func (e *KeywordExtractor) ExtractTerm(_ context.Context, question string) (string, error) {
	text := nonAlphanumeric.ReplaceAllString(strings.ToLower(question), "")
	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if _, skip := stopWords[w]; !skip {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " "), nil
}

// FallbackExtractor chains a primary extractor with the keyword tier.
// Any error from the primary is swallowed and the keyword result is used
// instead, so ExtractTerm never returns a non-nil error to callers.
type FallbackExtractor struct {
	primary  ai.TermExtractor
	fallback *KeywordExtractor
	logger   *slog.Logger
}

var _ ai.TermExtractor = (*FallbackExtractor)(nil)

// NewFallbackExtractor wraps primary with the keyword fallback. A nil
// primary means the fallback tier runs alone.
func NewFallbackExtractor(primary ai.TermExtractor, logger *slog.Logger) *FallbackExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackExtractor{
		primary:  primary,
		fallback: NewKeywordExtractor(),
		logger:   logger.With("component", "term_extractor"),
	}
}

// ExtractTerm asks the primary extractor first and downgrades to the
// keyword tier on any failure.
func (e *FallbackExtractor) ExtractTerm(ctx context.Context, question string) (string, error) {
	if e.primary != nil {
		term, err := e.primary.ExtractTerm(ctx, question)
		if err == nil {
			return term, nil
		}
		e.logger.Warn("primary term extraction failed, using keyword fallback", "error", err)
	}
	return e.fallback.ExtractTerm(ctx, question)
}
