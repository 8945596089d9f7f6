package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Column names accepted by the CSV intake, matching the catalog's
// canonical field names.
const (
	colName          = "name_of_event"
	colDomain        = "event_domain"
	colDate          = "date_of_event"
	colTime          = "time_of_event"
	colVenue         = "venue"
	colMode          = "mode_of_event"
	colFee           = "registration_fee"
	colSpeakers      = "speakers"
	colFaculty       = "faculty_coordinators"
	colStudents      = "student_coordinators"
	colPerks         = "perks"
	colCollaboration = "collaboration"
	colDescription   = "description_insights"
)

var requiredColumns = []string{colName, colDomain, colDate, colDescription}

// ReadCSV parses event inputs from a CSV stream. The first row must be a
// header naming the columns; order is free and unknown columns are
// ignored. Only the presence of required columns is checked here; value
// validation happens at ingest.
func ReadCSV(r io.Reader) ([]*EventInput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, col)
		}
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var inputs []*EventInput
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		inputs = append(inputs, &EventInput{
			Name:                field(row, colName),
			Domain:              field(row, colDomain),
			Date:                field(row, colDate),
			TimeOfDay:           field(row, colTime),
			Venue:               field(row, colVenue),
			Mode:                field(row, colMode),
			RegistrationFee:     field(row, colFee),
			Speakers:            field(row, colSpeakers),
			FacultyCoordinators: field(row, colFaculty),
			StudentCoordinators: field(row, colStudents),
			Perks:               field(row, colPerks),
			Collaboration:       field(row, colCollaboration),
			Description:         field(row, colDescription),
		})
	}

	return inputs, nil
}
