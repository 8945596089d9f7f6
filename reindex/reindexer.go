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


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of records to update in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed updates
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer recomputes the derived fields of every record in the catalog.
// Run it after a change to the normalization or searchable-text rules so
// the fuzzy-match index catches up with the source fields.
type Reindexer struct {
	repo     storage.EventRepository
	config   *Config
	progress io.Writer
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.EventRepository, config *Config, progress io.Writer) (*Reindexer, error) {
	if repo == nil {
		return nil, ErrEventRepositoryRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Reindexer{
		repo:     repo,
		config:   config,
		progress: progress,
	}, nil
}

// Run executes the reindexing operation. Records whose derived fields are
// already current are skipped; the rest are updated in batches with
// retry. Returns the number of records updated.
func (r *Reindexer) Run(ctx context.Context) (int, error) {
	var stale []*core.EventRecord
	total := 0

	err := r.repo.AllEvents(ctx, func(record *core.EventRecord) error {
		total++
		fresh := *record
		fresh.RefreshDerived()
		// Identity is fixed at insert; reindexing refreshes the derived
		// text fields without renaming the record.
		fresh.Id = record.Id
		if fresh.NormalizedName == record.NormalizedName &&
			fresh.SearchText == record.SearchText {
			return nil
		}
		stale = append(stale, &fresh)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan catalog: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No records found in catalog (0 records)\n")
		return 0, nil
	}
	if len(stale) == 0 {
		fmt.Fprintf(r.progress, "All %d records already current\n", total)
		return 0, nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d stale records out of %d (batch size: %d)\n",
		len(stale), total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, len(stale), r.config.ReportInterval)
	tracker.Start()

	updated := 0
	for start := 0; start < len(stale); start += r.config.BatchSize {
		end := min(start+r.config.BatchSize, len(stale))
		batch := stale[start:end]

		err := RetryWithBackoff(ctx, func() error {
			_, err := r.repo.UpdateEvents(ctx, batch...)
			return err
		}, r.config.MaxRetries, r.config.RetryDelay)
		if err != nil {
			return updated, fmt.Errorf("failed to update batch: %w", err)
		}

		updated += len(batch)
		tracker.Update(updated)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Updated %d records in %v (%.1f records/sec)\n",
		updated, elapsed.Round(time.Second), float64(updated)/elapsed.Seconds())

	return updated, nil
}
