package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amharies/BIONARY--CHATBOT/ai"
	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/query"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

const (
	// defaultMinSimilarity excludes candidates whose trigram score falls
	// below this threshold. Tunable constant, never user-supplied.
	defaultMinSimilarity = 0.1

	// defaultMaxResults bounds the ranked output.
	defaultMaxResults = 50
)

// Result is the outcome of one retrieval request. Either Direct carries a
// single record resolved by exact name lookup, or Ranked carries the
// scored hybrid candidates. Both may be empty, which callers must treat
// as insufficient information rather than an error.
type Result struct {
	Direct      *core.EventRecord
	Ranked      []*core.RankedResult
	Constraints core.QueryConstraints
	QueryText   string
}

// Searcher runs the retrieval pipeline over the event catalog: normalize,
// extract constraints, attempt direct name lookup, otherwise run the
// hybrid query and rank the candidates. Stateless per request; safe for
// concurrent use.
type Searcher struct {
	events        storage.EventRepository
	extractor     ai.TermExtractor
	logger        *slog.Logger
	minSimilarity float64
	maxResults    int
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinSimilarity overrides the similarity threshold.
func WithMinSimilarity(threshold float64) Option {
	return func(s *Searcher) error {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("similarity threshold %g outside [0,1]", threshold)
		}
		s.minSimilarity = threshold
		return nil
	}
}

// WithMaxResults overrides the ranked result cap.
func WithMaxResults(max int) Option {
	return func(s *Searcher) error {
		if max <= 0 {
			return fmt.Errorf("max results must be positive, got %d", max)
		}
		s.maxResults = max
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	events storage.EventRepository,
	extractor ai.TermExtractor,
	opts ...Option,
) (*Searcher, error) {
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	s := &Searcher{
		events:        events,
		extractor:     extractor,
		logger:        slog.Default().With("component", "searcher"),
		minSimilarity: defaultMinSimilarity,
		maxResults:    defaultMaxResults,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs the full retrieval pipeline for one question.
func (s *Searcher) Search(ctx context.Context, question string) (*Result, error) {
	return s.SearchWithMonitor(ctx, question, nil)
}

// SearchWithMonitor runs the retrieval pipeline with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
func (s *Searcher) SearchWithMonitor(ctx context.Context, question string, monitor SearchMonitor) (*Result, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(question)

	// 1. Normalize
	normalized := core.NormalizeText(question)
	monitor.AfterNormalize(normalized)

	// 2. Extract structured constraints
	constraints := query.ExtractConstraints(normalized)
	monitor.AfterConstraints(constraints)

	// 3. Direct name lookup short-circuits the fuzzy path entirely
	if fragment := query.ExtractEventName(normalized); fragment != "" {
		record, err := s.events.GetEventByName(ctx, core.NormalizeText(fragment))
		if err == nil {
			s.logger.Debug("direct lookup hit", "fragment", fragment)
			monitor.DirectHit(record)
			return &Result{Direct: record, Constraints: constraints}, nil
		}
		// A miss falls through to the hybrid path
		s.logger.Debug("direct lookup miss", "fragment", fragment, "err", err)
	}

	// 4. Extract the fuzzy term; the extractor never fails hard, but a
	// wrapped extractor could, so treat errors as an empty term.
	term, err := s.extractor.ExtractTerm(ctx, normalized)
	if err != nil {
		s.logger.Warn("term extraction failed, searching without a term", "err", err)
		term = ""
	}
	constraints.Term = term
	monitor.AfterTermExtraction(term)

	// 5. Execute the hybrid query. A malformed date range was already
	// neutralized at extraction; invalid ranges apply no filter.
	eventQuery := storage.EventQuery{
		Term:          term,
		Date:          constraints.Date,
		FeeEquals:     constraints.FeeEquals,
		MinSimilarity: s.minSimilarity,
	}
	retrieved, err := s.events.HybridQuery(ctx, eventQuery)
	if err != nil {
		s.logger.Error("hybrid query failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}
	monitor.AfterRetrieval(retrieved.QueryText, retrieved.Candidates)

	// 6. Rank
	ranked := rank(retrieved.Candidates, term != "", s.maxResults)
	monitor.Finish(ranked)

	return &Result{
		Ranked:      ranked,
		Constraints: constraints,
		QueryText:   retrieved.QueryText,
	}, nil
}
