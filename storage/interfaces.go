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


package storage

import (
	"context"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

// EventQuery describes one hybrid retrieval request. All filter fields
// are optional; a zero-value query matched against a populated store
// returns the full catalog bounded by Limit.
type EventQuery struct {
	// Term is the fuzzy search term matched against each record's
	// searchable text. Empty means no similarity filtering.
	Term string

	// Date restricts candidates to records whose event date falls
	// inside the range. A nil or invalid range applies no filter.
	Date *core.DateRange

	// FeeEquals restricts candidates to records whose registration
	// fee equals the given value. Nil applies no filter.
	FeeEquals *int

	// MinSimilarity excludes candidates scoring below this threshold
	// when Term is present.
	MinSimilarity float64

	// Limit caps the number of candidates returned. Zero or negative
	// means no cap beyond the backend's safety bound.
	Limit int
}

// QueryResult is the outcome of a hybrid query: the surviving candidates
// plus the literal query representation issued against the backend,
// returned verbatim for audit logging.
type QueryResult struct {
	Candidates []*core.Candidate
	QueryText  string
}

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access. Write
// operations are internally transactional; multi-record calls commit or roll
// back as a unit.
type Repository interface {
	// Close closes the storage backend and releases resources.
	Close() error
}

// EventRepository provides operations for managing event records.
type EventRepository interface {
	Repository

	// AddEvents adds one or more event records to storage.
	// Derived fields must be populated by the caller (RefreshDerived).
	// Sets InsertedAt timestamp if not already set.
	// Returns the records with timestamps populated.
	AddEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error)

	// UpdateEvents updates existing event records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error)

	// DeleteEvents removes event records by their IDs.
	// Also removes associated name indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteEvents(ctx context.Context, ids ...core.ID) error

	// GetEvent retrieves a single event record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetEvent(ctx context.Context, id core.ID) (*core.EventRecord, error)

	// GetEvents retrieves multiple event records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetEvents(ctx context.Context, ids ...core.ID) ([]*core.EventRecord, error)

	// GetEventByName retrieves a record by its normalized name.
	// Returns ErrNotFound if no record carries that name.
	GetEventByName(ctx context.Context, normalizedName string) (*core.EventRecord, error)

	// AllEvents streams every stored record to fn in unspecified order.
	// Iteration stops when fn returns an error, which is propagated.
	AllEvents(ctx context.Context, fn func(record *core.EventRecord) error) error

	// HybridQuery executes a combined structured-filter and similarity
	// search. Structured filters are hard predicates applied with
	// parameterized values; the term contributes a similarity score in
	// [0,1] per surviving candidate. Candidates are returned ordered by
	// score descending. An empty query returns the full catalog bounded
	// by the backend's safety cap.
	HybridQuery(ctx context.Context, query EventQuery) (*QueryResult, error)
}

// LogRepository provides operations for the question/answer audit log.
type LogRepository interface {
	Repository

	// AddLog appends one log entry. For entries with ID=0, generates a
	// new ID from sequence and sets AskedAt if unset.
	AddLog(ctx context.Context, entry *core.QueryLog) (*core.QueryLog, error)

	// RecentLogs retrieves the N most recent entries, newest first.
	RecentLogs(ctx context.Context, limit int) ([]*core.QueryLog, error)
}
