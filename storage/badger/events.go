package badger

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

// defaultScanLimit bounds unfiltered catalog scans.
const defaultScanLimit = 1000

// EventRepository implements storage.EventRepository for BadgerDB.
//
// The hybrid query is a filtered full scan: BadgerDB has no native text
// search, so structured predicates and trigram similarity are applied
// record by record in Go. Fine for catalog-sized data sets.
type EventRepository struct {
	backend *Backend
}

var _ storage.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository.
func NewEventRepository(backend *Backend) (*EventRepository, error) {
	return &EventRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *EventRepository) Close() error {
	return nil
}

// AddEvents adds one or more event records to storage.
func (r *EventRepository) AddEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.Id == 0 {
				record.RefreshDerived()
			}
			key := makeEventKey(record.Id)

			if _, err := tx.Get(key); err == nil {
				return fmt.Errorf("%w: event %q", storage.ErrDuplicateKey, record.NormalizedName)
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			if record.InsertedAt.IsZero() {
				record.InsertedAt = time.Now().UTC()
			}
			record.UpdatedAt = record.InsertedAt

			value := storage.MarshalEventRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Name index for direct lookup
			nameKey := makeEventNameKey(record.NormalizedName)
			if err := tx.Set(nameKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateEvents updates existing event records. Record identity is derived
// from the normalized name, so a rename is a delete plus an add, not an
// update.
func (r *EventRepository) UpdateEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeEventKey(record.Id)

			old, err := r.readEventRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			record.InsertedAt = old.InsertedAt
			record.UpdatedAt = time.Now().UTC()

			value := storage.MarshalEventRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Re-point the name index when the normalized name changed,
			// or direct lookup would keep resolving the stale name.
			if old.NormalizedName != record.NormalizedName {
				if err := tx.Delete(makeEventNameKey(old.NormalizedName)); err != nil {
					return err
				}
				nameKey := makeEventNameKey(record.NormalizedName)
				if err := tx.Set(nameKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteEvents removes event records by their IDs.
func (r *EventRepository) DeleteEvents(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEventKey(id)

			record, err := r.readEventRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			nameKey := makeEventNameKey(record.NormalizedName)
			if err := tx.Delete(nameKey); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEvent retrieves a single event record by ID.
func (r *EventRepository) GetEvent(ctx context.Context, id core.ID) (*core.EventRecord, error) {
	var result *core.EventRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEventKey(id)
		var err error
		result, err = r.readEventRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetEvents retrieves multiple event records by their IDs.
func (r *EventRepository) GetEvents(ctx context.Context, ids ...core.ID) ([]*core.EventRecord, error) {
	var result []*core.EventRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEventKey(id)
			record, err := r.readEventRecord(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetEventByName retrieves a record by its normalized name.
func (r *EventRepository) GetEventByName(ctx context.Context, normalizedName string) (*core.EventRecord, error) {
	var result *core.EventRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEventNameKey(normalizedName))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		result, err = r.readEventRecord(tx, makeEventKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllEvents streams every stored record to fn.
func (r *EventRepository) AllEvents(ctx context.Context, fn func(record *core.EventRecord) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(eventRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var record *core.EventRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalEventRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil {
				continue
			}

			if err := fn(record); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// HybridQuery executes a combined structured-filter and similarity search
// as a single filtered scan over the catalog.
func (r *EventRepository) HybridQuery(ctx context.Context, query storage.EventQuery) (*storage.QueryResult, error) {
	dateActive := query.Date.Valid()
	feeActive := query.FeeEquals != nil
	termActive := query.Term != ""

	limit := query.Limit
	if limit <= 0 {
		limit = defaultScanLimit
	}

	var candidates []*core.Candidate
	err := r.AllEvents(ctx, func(record *core.EventRecord) error {
		if dateActive && !dateWithin(record.Date, query.Date) {
			return nil
		}
		if feeActive && !feeEquals(record.RegistrationFee, *query.FeeEquals) {
			return nil
		}

		score := 0.0
		if termActive {
			score = storage.TrigramSimilarity(record.SearchText, query.Term)
			if score < query.MinSimilarity {
				return nil
			}
		}

		candidates = append(candidates, &core.Candidate{
			Record:      record,
			Score:       score,
			MatchedDate: dateActive,
			MatchedFee:  feeActive,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending, ID ascending on ties
	slices.SortFunc(candidates, func(a, b *core.Candidate) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Record.Id < b.Record.Id {
			return -1
		}
		if a.Record.Id > b.Record.Id {
			return 1
		}
		return 0
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return &storage.QueryResult{
		Candidates: candidates,
		QueryText:  describeQuery(query, limit),
	}, nil
}

// describeQuery renders the scan parameters as the literal query text
// surfaced for audit logging.
func describeQuery(query storage.EventQuery, limit int) string {
	var b strings.Builder
	b.WriteString("scan events")
	if query.Term != "" {
		fmt.Fprintf(&b, " term=%q min_similarity=%g", query.Term, query.MinSimilarity)
	}
	if query.Date.Valid() {
		fmt.Fprintf(&b, " date=[%s, %s]",
			query.Date.Start.Format("2006-01-02"), query.Date.End.Format("2006-01-02"))
	}
	if query.FeeEquals != nil {
		fmt.Fprintf(&b, " fee=%d", *query.FeeEquals)
	}
	fmt.Fprintf(&b, " limit=%d", limit)
	return b.String()
}

// dateWithin reports whether date falls inside the inclusive range.
func dateWithin(date time.Time, r *core.DateRange) bool {
	if date.IsZero() {
		return false
	}
	return !date.Before(r.Start) && !date.After(r.End)
}

// feeEquals compares the stored fee string against the filter value.
// Sentinel fees (unknown) never match.
func feeEquals(fee string, want int) bool {
	if core.IsSentinel(fee) {
		return false
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(fee), 64)
	if err != nil {
		return false
	}
	return parsed == float64(want)
}

// readEventRecord reads an event record from the transaction.
func (r *EventRepository) readEventRecord(tx *badger.Txn, key []byte) (*core.EventRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.EventRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalEventRecord(val)
		return unmarshalErr
	})
	return record, err
}
