package sqlite

import (
	"context"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

// logRow mirrors one row of the query_logs table.
type logRow struct {
	Id        int64  `db:"id"`
	AskedAt   string `db:"asked_at"`
	Question  string `db:"question"`
	Answer    string `db:"answer"`
	QueryText string `db:"query_text"`
}

func (r *logRow) toEntry() *core.QueryLog {
	return &core.QueryLog{
		Id:        core.ID(r.Id),
		AskedAt:   parseTimestamp(r.AskedAt),
		Question:  r.Question,
		Answer:    r.Answer,
		QueryText: r.QueryText,
	}
}

// LogRepository implements storage.LogRepository for SQLite.
type LogRepository struct {
	backend *Backend
}

var _ storage.LogRepository = (*LogRepository)(nil)

// NewLogRepository creates a new LogRepository.
func NewLogRepository(backend *Backend) (*LogRepository, error) {
	return &LogRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *LogRepository) Close() error {
	return nil
}

// AddLog appends one log entry.
func (r *LogRepository) AddLog(ctx context.Context, entry *core.QueryLog) (*core.QueryLog, error) {
	if entry.AskedAt.IsZero() {
		entry.AskedAt = time.Now().UTC()
	}

	if entry.Id != 0 {
		_, err := r.backend.db.ExecContext(ctx,
			`INSERT INTO query_logs (id, asked_at, question, answer, query_text) VALUES (?, ?, ?, ?, ?)`,
			int64(entry.Id), formatTimestamp(entry.AskedAt), entry.Question, entry.Answer, entry.QueryText)
		if err != nil {
			return nil, err
		}
		return entry, nil
	}

	res, err := r.backend.db.ExecContext(ctx,
		`INSERT INTO query_logs (asked_at, question, answer, query_text) VALUES (?, ?, ?, ?)`,
		formatTimestamp(entry.AskedAt), entry.Question, entry.Answer, entry.QueryText)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	entry.Id = core.ID(id)
	return entry, nil
}

// RecentLogs retrieves the N most recent entries, newest first.
func (r *LogRepository) RecentLogs(ctx context.Context, limit int) ([]*core.QueryLog, error) {
	rows, err := r.backend.db.QueryxContext(ctx,
		`SELECT id, asked_at, question, answer, query_text FROM query_logs
		 ORDER BY asked_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*core.QueryLog
	for rows.Next() {
		var row logRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		results = append(results, row.toEntry())
	}
	return results, rows.Err()
}
