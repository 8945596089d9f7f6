package ingest

import "errors"

var (
	// ErrEventRepositoryRequired is returned when an event repository is not provided.
	ErrEventRepositoryRequired = errors.New("event repository required")

	// ErrMissingHeader is returned when the CSV intake misses a required column.
	ErrMissingHeader = errors.New("missing required column")

	// ErrNoRecords is returned when an intake source yields no records.
	ErrNoRecords = errors.New("no records to ingest")
)
