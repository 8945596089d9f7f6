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


package bionary

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amharies/BIONARY--CHATBOT/ai"
	"github.com/amharies/BIONARY--CHATBOT/ai/openai"
	"github.com/amharies/BIONARY--CHATBOT/answer"
	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/ingest"
	"github.com/amharies/BIONARY--CHATBOT/query"
	"github.com/amharies/BIONARY--CHATBOT/reindex"
	"github.com/amharies/BIONARY--CHATBOT/search"
	"github.com/amharies/BIONARY--CHATBOT/storage"
	"github.com/amharies/BIONARY--CHATBOT/storage/badger"
	"github.com/amharies/BIONARY--CHATBOT/storage/sqlite"
)

// Agent wires the full question-answering stack: storage, retrieval,
// answer synthesis and the audit log. It is the single entry point for
// both the CLI and embedding into other programs.
type Agent struct {
	backend   io.Closer
	events    storage.EventRepository
	logs      storage.LogRepository
	provider  ai.Provider
	extractor ai.TermExtractor
	searcher  *search.Searcher
	answerer  *answer.Answerer
	logger    *slog.Logger
}

// AgentOption configures an Agent.
type AgentOption func(*agentOptions)

type agentOptions struct {
	provider      ai.Provider
	logger        *slog.Logger
	searchOptions []search.Option
}

// WithProvider overrides the generative-model provider. Useful for tests
// that substitute a mock provider for the OpenAI-compatible default.
func WithProvider(provider ai.Provider) AgentOption {
	return func(o *agentOptions) {
		o.provider = provider
	}
}

// WithAgentLogger sets the logger used by the agent and its components.
func WithAgentLogger(logger *slog.Logger) AgentOption {
	return func(o *agentOptions) {
		o.logger = logger
	}
}

// WithSearchOptions forwards options to the agent's internal searcher.
func WithSearchOptions(opts ...search.Option) AgentOption {
	return func(o *agentOptions) {
		o.searchOptions = append(o.searchOptions, opts...)
	}
}

// NewAgent opens the configured store and assembles the retrieval and
// answering pipeline. The caller owns the returned agent and must Close it.
func NewAgent(cfg *Config, opts ...AgentOption) (*Agent, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &agentOptions{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	// Open backend and repositories for the configured store.
	var (
		backend io.Closer
		events  storage.EventRepository
		logs    storage.LogRepository
	)
	switch cfg.Store.Backend {
	case StoreSQLite:
		b, err := sqlite.OpenBackend(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		eventRepo, err := sqlite.NewEventRepository(b)
		if err != nil {
			b.Close()
			return nil, err
		}
		logRepo, err := sqlite.NewLogRepository(b)
		if err != nil {
			eventRepo.Close()
			b.Close()
			return nil, err
		}
		backend, events, logs = b, eventRepo, logRepo
	case StoreBadger:
		b, err := badger.OpenBackend(cfg.Store.Path, cfg.Store.Path == "")
		if err != nil {
			return nil, fmt.Errorf("opening badger store: %w", err)
		}
		eventRepo, err := badger.NewEventRepository(b)
		if err != nil {
			b.Close()
			return nil, err
		}
		logRepo, err := badger.NewLogRepository(b)
		if err != nil {
			eventRepo.Close()
			b.Close()
			return nil, err
		}
		backend, events, logs = b, eventRepo, logRepo
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreBackend, cfg.Store.Backend)
	}

	// Create AI provider with configured settings.
	provider := options.provider
	if provider == nil {
		p, err := openai.NewProvider(cfg.AIConfig())
		if err != nil {
			logs.Close()
			events.Close()
			backend.Close()
			return nil, err
		}
		provider = p
	}

	extractor := query.NewFallbackExtractor(provider.TermExtractor(), logger)

	searchOpts := []search.Option{
		search.WithLogger(logger),
		search.WithMinSimilarity(cfg.Search.MinSimilarity),
		search.WithMaxResults(cfg.Search.MaxResults),
	}
	searchOpts = append(searchOpts, options.searchOptions...)
	searcher, err := search.NewSearcher(events, extractor, searchOpts...)
	if err != nil {
		provider.Close()
		logs.Close()
		events.Close()
		backend.Close()
		return nil, err
	}

	answerer, err := answer.NewAnswerer(provider.Synthesizer(), logger)
	if err != nil {
		provider.Close()
		logs.Close()
		events.Close()
		backend.Close()
		return nil, err
	}

	return &Agent{
		backend:   backend,
		events:    events,
		logs:      logs,
		provider:  provider,
		extractor: extractor,
		searcher:  searcher,
		answerer:  answerer,
		logger:    logger,
	}, nil
}

// Ask answers one question end to end: retrieve, synthesize, and record
// the exchange in the audit log. Logging failures do not fail the answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	result, err := a.searcher.Search(ctx, question)
	if err != nil {
		return "", err
	}

	text, err := a.answerer.Answer(ctx, question, result)
	if err != nil {
		return "", err
	}

	if _, err := a.logs.AddLog(ctx, &core.QueryLog{
		Question:  question,
		Answer:    text,
		QueryText: result.QueryText,
	}); err != nil {
		a.logger.Warn("failed to record query log", "err", err)
	}

	return text, nil
}

// Close releases the agent's resources in reverse construction order.
func (a *Agent) Close() error {
	// Close AI provider first
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := a.logs.Close(); err != nil {
		a.logger.Error("error closing log repository", "err", err)
		return err
	}
	if err := a.events.Close(); err != nil {
		a.logger.Error("error closing event repository", "err", err)
		return err
	}

	// Close backend
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (a *Agent) EventRepository() storage.EventRepository {
	return a.events
}

func (a *Agent) LogRepository() storage.LogRepository {
	return a.logs
}

func (a *Agent) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(a.events, opts...)
}

func (a *Agent) NewReindexer(config *reindex.Config, progress io.Writer) (*reindex.Reindexer, error) {
	return reindex.NewReindexer(a.events, config, progress)
}

func (a *Agent) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(a.events, a.extractor, opts...)
}
