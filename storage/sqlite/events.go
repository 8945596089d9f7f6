package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = time.RFC3339Nano

	// defaultQueryLimit bounds unfiltered catalog queries.
	defaultQueryLimit = 1000
)

// eventColumns lists every column of the events table in insert order.
const eventColumns = `id, name_of_event, event_domain, date_of_event, time_of_event,
	venue, mode_of_event, registration_fee, speakers, faculty_coordinators,
	student_coordinators, perks, collaboration, description_insights,
	normalized_name, search_text, inserted_at, updated_at`

// eventRow mirrors one row of the events table.
type eventRow struct {
	Id                  int64  `db:"id"`
	Name                string `db:"name_of_event"`
	Domain              string `db:"event_domain"`
	Date                string `db:"date_of_event"`
	TimeOfDay           string `db:"time_of_event"`
	Venue               string `db:"venue"`
	Mode                string `db:"mode_of_event"`
	RegistrationFee     string `db:"registration_fee"`
	Speakers            string `db:"speakers"`
	FacultyCoordinators string `db:"faculty_coordinators"`
	StudentCoordinators string `db:"student_coordinators"`
	Perks               string `db:"perks"`
	Collaboration       string `db:"collaboration"`
	Description         string `db:"description_insights"`
	NormalizedName      string `db:"normalized_name"`
	SearchText          string `db:"search_text"`
	InsertedAt          string `db:"inserted_at"`
	UpdatedAt           string `db:"updated_at"`
}

// scoredEventRow is an event row plus its similarity score.
type scoredEventRow struct {
	eventRow
	Score float64 `db:"score"`
}

func toRow(record *core.EventRecord) *eventRow {
	return &eventRow{
		Id:                  int64(record.Id),
		Name:                record.Name,
		Domain:              record.Domain,
		Date:                formatDate(record.Date),
		TimeOfDay:           record.TimeOfDay,
		Venue:               record.Venue,
		Mode:                record.Mode,
		RegistrationFee:     record.RegistrationFee,
		Speakers:            record.Speakers,
		FacultyCoordinators: record.FacultyCoordinators,
		StudentCoordinators: record.StudentCoordinators,
		Perks:               record.Perks,
		Collaboration:       record.Collaboration,
		Description:         record.Description,
		NormalizedName:      record.NormalizedName,
		SearchText:          record.SearchText,
		InsertedAt:          formatTimestamp(record.InsertedAt),
		UpdatedAt:           formatTimestamp(record.UpdatedAt),
	}
}

func (r *eventRow) toRecord() *core.EventRecord {
	return &core.EventRecord{
		Id:                  core.ID(r.Id),
		Name:                r.Name,
		Domain:              r.Domain,
		Date:                parseDate(r.Date),
		TimeOfDay:           r.TimeOfDay,
		Venue:               r.Venue,
		Mode:                r.Mode,
		RegistrationFee:     r.RegistrationFee,
		Speakers:            r.Speakers,
		FacultyCoordinators: r.FacultyCoordinators,
		StudentCoordinators: r.StudentCoordinators,
		Perks:               r.Perks,
		Collaboration:       r.Collaboration,
		Description:         r.Description,
		NormalizedName:      r.NormalizedName,
		SearchText:          r.SearchText,
		InsertedAt:          parseTimestamp(r.InsertedAt),
		UpdatedAt:           parseTimestamp(r.UpdatedAt),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateFormat)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampFormat)
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timestampFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// EventRepository implements storage.EventRepository for SQLite.
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

const insertEventSQL = `INSERT INTO events (` + eventColumns + `) VALUES
	(:id, :name_of_event, :event_domain, :date_of_event, :time_of_event,
	 :venue, :mode_of_event, :registration_fee, :speakers, :faculty_coordinators,
	 :student_coordinators, :perks, :collaboration, :description_insights,
	 :normalized_name, :search_text, :inserted_at, :updated_at)`

// AddEvents adds one or more event records to storage.
func (r *EventRepository) AddEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error) {
	tx, err := r.backend.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	for _, record := range records {
		if record.Id == 0 {
			record.RefreshDerived()
		}
		if record.InsertedAt.IsZero() {
			record.InsertedAt = time.Now().UTC()
		}
		record.UpdatedAt = record.InsertedAt

		if _, err := tx.NamedExecContext(ctx, insertEventSQL, toRow(record)); err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
				return nil, fmt.Errorf("%w: event %q", storage.ErrDuplicateKey, record.NormalizedName)
			}
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	return records, nil
}

const updateEventSQL = `UPDATE events SET
	name_of_event = :name_of_event, event_domain = :event_domain,
	date_of_event = :date_of_event, time_of_event = :time_of_event,
	venue = :venue, mode_of_event = :mode_of_event,
	registration_fee = :registration_fee, speakers = :speakers,
	faculty_coordinators = :faculty_coordinators,
	student_coordinators = :student_coordinators, perks = :perks,
	collaboration = :collaboration, description_insights = :description_insights,
	normalized_name = :normalized_name, search_text = :search_text,
	updated_at = :updated_at
	WHERE id = :id`

// UpdateEvents updates existing event records.
func (r *EventRepository) UpdateEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error) {
	tx, err := r.backend.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	for _, record := range records {
		record.UpdatedAt = time.Now().UTC()

		res, err := tx.NamedExecContext(ctx, updateEventSQL, toRow(record))
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, storage.ErrNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	return records, nil
}

// DeleteEvents removes event records by their IDs.
func (r *EventRepository) DeleteEvents(ctx context.Context, ids ...core.ID) error {
	tx, err := r.backend.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, int64(id))
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	return nil
}

// GetEvent retrieves a single event record by ID.
func (r *EventRepository) GetEvent(ctx context.Context, id core.ID) (*core.EventRecord, error) {
	var row eventRow
	err := r.backend.db.GetContext(ctx, &row,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return row.toRecord(), nil
}

// GetEvents retrieves multiple event records by their IDs.
func (r *EventRepository) GetEvents(ctx context.Context, ids ...core.ID) ([]*core.EventRecord, error) {
	var result []*core.EventRecord
	for _, id := range ids {
		record, err := r.GetEvent(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

// GetEventByName retrieves a record by its normalized name.
func (r *EventRepository) GetEventByName(ctx context.Context, normalizedName string) (*core.EventRecord, error) {
	var row eventRow
	err := r.backend.db.GetContext(ctx, &row,
		`SELECT `+eventColumns+` FROM events WHERE normalized_name = ?`, normalizedName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return row.toRecord(), nil
}

// AllEvents streams every stored record to fn.
func (r *EventRepository) AllEvents(ctx context.Context, fn func(record *core.EventRecord) error) error {
	rows, err := r.backend.db.QueryxContext(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row eventRow
		if err := rows.StructScan(&row); err != nil {
			return err
		}
		if err := fn(row.toRecord()); err != nil {
			return err
		}
	}
	return rows.Err()
}

// HybridQuery executes a combined structured-filter and similarity search
// as one SQL query. All filter bounds travel as bind parameters; the only
// strings assembled into the SQL text are fixed predicate fragments.
func (r *EventRepository) HybridQuery(ctx context.Context, query storage.EventQuery) (*storage.QueryResult, error) {
	dateActive := query.Date.Valid()
	feeActive := query.FeeEquals != nil
	termActive := query.Term != ""

	limit := query.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	var (
		conditions []string
		args       []any
	)

	scoreExpr := "0.0"
	if termActive {
		scoreExpr = "similarity(search_text, ?)"
		args = append(args, query.Term)
	}

	if dateActive {
		conditions = append(conditions, `date_of_event != '' AND date_of_event BETWEEN ? AND ?`)
		args = append(args, formatDate(query.Date.Start), formatDate(query.Date.End))
	}
	if feeActive {
		conditions = append(conditions,
			`lower(trim(registration_fee)) NOT IN ('', 'nan', 'none', 'null') AND CAST(registration_fee AS REAL) = ?`)
		args = append(args, float64(*query.FeeEquals))
	}
	if termActive {
		conditions = append(conditions, `similarity(search_text, ?) >= ?`)
		args = append(args, query.Term, query.MinSimilarity)
	}

	sqlText := `SELECT ` + eventColumns + `, ` + scoreExpr + ` AS score FROM events`
	if len(conditions) > 0 {
		sqlText += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	sqlText += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := r.backend.db.QueryxContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []*core.Candidate
	for rows.Next() {
		var row scoredEventRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		candidates = append(candidates, &core.Candidate{
			Record:      row.toRecord(),
			Score:       row.Score,
			MatchedDate: dateActive,
			MatchedFee:  feeActive,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &storage.QueryResult{
		Candidates: candidates,
		QueryText:  fmt.Sprintf("%s | args=%v", sqlText, args),
	}, nil
}
