package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Event IDs are generated from the normalized event name, so the same event
// loaded twice resolves to the same identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EventRecord is the unit of retrieval: one catalogued university event.
//
// The optional attributes are plain strings; absence is expressed with the
// "NaN" sentinel (see IsSentinel) rather than nil, matching how the catalog
// intake normalizes empty fields. NormalizedName and SearchText are derived
// fields maintained write-through by RefreshDerived; they must never be stale
// relative to the source fields.
type EventRecord struct {
	Id                  ID
	Name                string
	Domain              string
	Date                time.Time // calendar date; time-of-day carried separately
	TimeOfDay           string
	Venue               string
	Mode                string
	RegistrationFee     string // numeric string, "0" means free
	Speakers            string
	FacultyCoordinators string
	StudentCoordinators string
	Perks               string
	Collaboration       string
	Description         string

	// Derived fields, recomputed on every write.
	NormalizedName string
	SearchText     string

	InsertedAt time.Time
	UpdatedAt  time.Time
}

// RefreshDerived recomputes the record's derived fields (identity, normalized
// name, searchable text) from its source fields. Storage write paths call this
// before persisting so the fuzzy-match index never lags the record.
func (e *EventRecord) RefreshDerived() {
	e.NormalizedName = NormalizeText(e.Name)
	e.Id = IDFromContent(e.NormalizedName)
	e.SearchText = e.buildSearchText()
}

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the range is usable as a filter: both bounds set and
// not inverted. Invalid ranges are treated as "no date filter", not as errors.
func (r *DateRange) Valid() bool {
	if r == nil {
		return false
	}
	if r.Start.IsZero() || r.End.IsZero() {
		return false
	}
	return !r.End.Before(r.Start)
}

// QueryConstraints is the transient per-request value object produced by
// constraint extraction. It is built fresh for every question, consumed once
// by the hybrid query builder, and discarded.
type QueryConstraints struct {
	Date      *DateRange
	FeeEquals *int   // equality predicate on the registration fee, nil when unset
	Term      string // fuzzy search term, possibly empty
}

// Candidate is an event returned by the store query together with its raw
// textual similarity score in [0,1] and flags recording which of the active
// structured filters it satisfied.
type Candidate struct {
	Record      *EventRecord
	Score       float64
	MatchedDate bool
	MatchedFee  bool
}

// RankedResult is a candidate with its fused relevance score.
type RankedResult struct {
	Candidate  *Candidate
	FinalScore float64
}

// QueryLog records one answered question for audit purposes: what was asked,
// what was answered, and the literal retrieval query issued against the store.
type QueryLog struct {
	Id        ID
	AskedAt   time.Time
	Question  string
	Answer    string
	QueryText string
}
