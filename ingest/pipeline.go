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

package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

// defaultBatchSize is how many records one worker writes per store call.
const defaultBatchSize = 32

// Pipeline loads event inputs into the catalog: sentinel normalization,
// validation, derived-field refresh, then batched concurrent writes
// through a worker pool.
type Pipeline struct {
	events    storage.EventRepository
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records each worker writes at once.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingest pipeline.
func NewPipeline(events storage.EventRepository, opts ...Option) (*Pipeline, error) {
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		events:    events,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default().With("component", "ingest"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Report summarizes one ingest run.
type Report struct {
	Added   int
	Skipped int
}

// Ingest normalizes, validates, and stores the inputs. Invalid inputs
// and duplicates are logged and skipped rather than failing the run;
// the report carries both counts. Batches are written concurrently.
func (p *Pipeline) Ingest(ctx context.Context, inputs []*EventInput) (*Report, error) {
	if len(inputs) == 0 {
		return nil, ErrNoRecords
	}

	records := make([]*core.EventRecord, 0, len(inputs))
	skipped := 0
	for _, in := range inputs {
		record, err := in.toRecord()
		if err != nil {
			p.logger.Warn("skipping invalid event", "name", in.Name, "err", err)
			skipped++
			continue
		}
		records = append(records, record)
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)

	for start := 0; start < len(records); start += p.batchSize {
		end := min(start+p.batchSize, len(records))
		batch := records[start:end]

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			stored, err := p.events.AddEvents(ctx, batch...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Warn("batch insert failed, storing records individually", "err", err)
				for _, record := range batch {
					if _, err := p.events.AddEvents(ctx, record); err != nil {
						p.logger.Warn("skipping event", "name", record.Name, "err", err)
						skipped++
						continue
					}
					added++
				}
				return
			}
			added += len(stored)
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	p.logger.Info("ingest complete", "added", added, "skipped", skipped)
	return &Report{Added: added, Skipped: skipped}, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
