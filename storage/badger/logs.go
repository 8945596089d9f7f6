package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

// LogRepository implements storage.LogRepository for BadgerDB.
//
// Entries are stored under time-ordered composite keys so recency queries
// are a reverse iteration, no secondary index needed.
type LogRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.LogRepository = (*LogRepository)(nil)

// NewLogRepository creates a new LogRepository.
func NewLogRepository(backend *Backend) (*LogRepository, error) {
	idSeq, err := backend.GetSequence(queryLogIDSeq)
	if err != nil {
		return nil, err
	}

	return &LogRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *LogRepository) Close() error {
	return r.idSeq.Release()
}

// AddLog appends one log entry.
func (r *LogRepository) AddLog(ctx context.Context, entry *core.QueryLog) (*core.QueryLog, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if entry.Id == 0 {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			entry.Id = core.ID(nextID)
		}
		if entry.AskedAt.IsZero() {
			entry.AskedAt = time.Now().UTC()
		}

		key := makeQueryLogKey(entry.AskedAt, entry.Id)
		if err := tx.Set(key, storage.MarshalQueryLog(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return entry, err
}

// RecentLogs retrieves the N most recent entries, newest first.
func (r *LogRepository) RecentLogs(ctx context.Context, limit int) ([]*core.QueryLog, error) {
	var results []*core.QueryLog
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible log key and walk backwards
		startKey := makePartialQueryLogKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(queryLogPrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var entry *core.QueryLog
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalQueryLog(val)
				return err
			}); err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}
