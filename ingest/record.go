package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

// EventInput is the raw intake shape of one event, before sentinel
// normalization and validation. All fields are plain strings as they
// arrive from CSV or an API payload.
type EventInput struct {
	Name                string
	Domain              string
	Date                string
	TimeOfDay           string
	Venue               string
	Mode                string
	RegistrationFee     string
	Speakers            string
	FacultyCoordinators string
	StudentCoordinators string
	Perks               string
	Collaboration       string
	Description         string
}

// dateFormats are accepted for the event date, tried in order.
var dateFormats = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// toRecord normalizes an input into a validated event record: empty
// optional fields become the "NaN" sentinel, an empty fee means free, an
// empty mode defaults to offline. Derived fields are refreshed.
func (in *EventInput) toRecord() (*core.EventRecord, error) {
	record := &core.EventRecord{
		Name:                strings.TrimSpace(in.Name),
		Domain:              strings.TrimSpace(in.Domain),
		TimeOfDay:           orSentinel(in.TimeOfDay),
		Venue:               orSentinel(in.Venue),
		Mode:                orDefault(in.Mode, "Offline"),
		RegistrationFee:     orDefault(in.RegistrationFee, "0"),
		Speakers:            orSentinel(in.Speakers),
		FacultyCoordinators: orSentinel(in.FacultyCoordinators),
		StudentCoordinators: orSentinel(in.StudentCoordinators),
		Perks:               orSentinel(in.Perks),
		Collaboration:       orSentinel(in.Collaboration),
		Description:         strings.TrimSpace(in.Description),
	}

	if trimmed := strings.TrimSpace(in.Date); trimmed != "" {
		date, err := parseEventDate(trimmed)
		if err != nil {
			return nil, err
		}
		record.Date = date
	}

	record.RefreshDerived()

	if err := core.ValidateEventRecord(record); err != nil {
		return nil, err
	}
	return record, nil
}

func orSentinel(value string) string {
	if strings.TrimSpace(value) == "" {
		return "NaN"
	}
	return strings.TrimSpace(value)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func parseEventDate(value string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", value)
}
