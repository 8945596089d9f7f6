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


// Package sqlite implements the storage repositories on SQLite.
//
// The trigram similarity function is registered as a custom SQL function
// named "similarity" on a dedicated driver, so the hybrid query can score
// and filter candidates inside the database the way pg_trgm would.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/amharies/BIONARY--CHATBOT/storage"
)

// driverName identifies the sqlite3 driver variant carrying the
// similarity function.
const driverName = "sqlite3_trigram"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("similarity", storage.TrigramSimilarity, true)
		},
	})
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id                   INTEGER PRIMARY KEY,
	name_of_event        TEXT NOT NULL,
	event_domain         TEXT NOT NULL DEFAULT 'NaN',
	date_of_event        TEXT NOT NULL DEFAULT '',
	time_of_event        TEXT NOT NULL DEFAULT 'NaN',
	venue                TEXT NOT NULL DEFAULT 'NaN',
	mode_of_event        TEXT NOT NULL DEFAULT 'NaN',
	registration_fee     TEXT NOT NULL DEFAULT 'NaN',
	speakers             TEXT NOT NULL DEFAULT 'NaN',
	faculty_coordinators TEXT NOT NULL DEFAULT 'NaN',
	student_coordinators TEXT NOT NULL DEFAULT 'NaN',
	perks                TEXT NOT NULL DEFAULT 'NaN',
	collaboration        TEXT NOT NULL DEFAULT 'NaN',
	description_insights TEXT NOT NULL DEFAULT 'NaN',
	normalized_name      TEXT NOT NULL UNIQUE,
	search_text          TEXT NOT NULL DEFAULT '',
	inserted_at          TEXT NOT NULL DEFAULT '',
	updated_at           TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_events_date ON events(date_of_event);

CREATE TABLE IF NOT EXISTS query_logs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	asked_at   TEXT NOT NULL,
	question   TEXT NOT NULL,
	answer     TEXT NOT NULL,
	query_text TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_query_logs_asked_at ON query_logs(asked_at);
`

// Backend wraps a SQLite database and provides low-level operations.
type Backend struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// OpenBackend opens (and if necessary initializes) a SQLite database at
// the given path. Use ":memory:" for an ephemeral database in tests.
func OpenBackend(dbPath string) (*Backend, error) {
	db, err := sqlx.Connect(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// An in-memory database exists per connection; more than one
	// connection would see different databases.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Backend{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}
