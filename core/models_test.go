package core

import (
	"strings"
	"testing"
	"time"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "tech fest"},
		{name: "empty string", content: ""},
		{name: "long content", content: "a much longer event name that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("robotics workshop")
	id2 := IDFromContent("ai workshop")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases and trims", in: "  Robotics Workshop  ", want: "robotics workshop"},
		{name: "collapses repeated characters", in: "eventtt", want: "event"},
		{name: "collapses doubled letters too", in: "coool", want: "col"},
		{name: "empty input", in: "", want: ""},
		{name: "collapses repeated spaces", in: "tech  fest", want: "tech fest"},
		{name: "keeps a leading replacement character", in: "�event", want: "�event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"  FREE Robotics events in October 2024??  ",
		"heelllooo worrld",
		"already normal",
		"",
	}

	for _, in := range inputs {
		once := NormalizeText(in)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestIsSentinel(t *testing.T) {
	for _, v := range []string{"", "NaN", "nan", "None", "NULL", "  nan  "} {
		if !IsSentinel(v) {
			t.Errorf("IsSentinel(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"0", "Online", "nanotechnology lab"} {
		if IsSentinel(v) {
			t.Errorf("IsSentinel(%q) = true, want false", v)
		}
	}
}

func TestEventRecord_RefreshDerived(t *testing.T) {
	record := &EventRecord{
		Name:            "Robotics Workshop",
		Domain:          "Robotics",
		Date:            time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC),
		Venue:           "Main Auditorium",
		Mode:            "Offline",
		RegistrationFee: "0",
		Speakers:        "NaN",
		Description:     "Hands-on robot building",
	}
	record.RefreshDerived()

	if record.NormalizedName != "robotics workshop" {
		t.Errorf("NormalizedName = %q", record.NormalizedName)
	}
	if record.Id != IDFromContent("robotics workshop") {
		t.Errorf("Id not derived from normalized name")
	}

	if !strings.Contains(record.SearchText, "robotics workshop") {
		t.Errorf("SearchText missing event name: %q", record.SearchText)
	}
	if !strings.Contains(record.SearchText, "2024-10-05") {
		t.Errorf("SearchText missing event date: %q", record.SearchText)
	}
	if strings.Contains(record.SearchText, "nan") {
		t.Errorf("SearchText contains sentinel value: %q", record.SearchText)
	}

	// Domain must precede venue, which must precede the description.
	iDomain := strings.Index(record.SearchText, "robotics workshop robotics")
	iVenue := strings.Index(record.SearchText, "main auditorium")
	iDesc := strings.Index(record.SearchText, "hands-on")
	if iDomain != 0 || iVenue < 0 || iDesc < iVenue {
		t.Errorf("SearchText field order wrong: %q", record.SearchText)
	}
}

func TestEventRecord_Fields_Order(t *testing.T) {
	record := &EventRecord{}
	fields := record.Fields()

	wantLabels := []string{
		"Domain", "Date", "Time", "Venue", "Mode", "Registration Fee",
		"Speakers", "Faculty Coordinators", "Student Coordinators",
		"Perks", "Collaboration", "Description",
	}
	if len(fields) != len(wantLabels) {
		t.Fatalf("Fields() returned %d fields, want %d", len(fields), len(wantLabels))
	}
	for i, want := range wantLabels {
		if fields[i].Label != want {
			t.Errorf("Fields()[%d].Label = %q, want %q", i, fields[i].Label, want)
		}
	}
}

func TestDateRange_Valid(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		r     *DateRange
		valid bool
	}{
		{name: "nil range", r: nil, valid: false},
		{name: "zero bounds", r: &DateRange{}, valid: false},
		{name: "inverted", r: &DateRange{Start: day(2024, 10, 31), End: day(2024, 10, 1)}, valid: false},
		{name: "single day", r: &DateRange{Start: day(2024, 10, 1), End: day(2024, 10, 1)}, valid: true},
		{name: "normal", r: &DateRange{Start: day(2024, 10, 1), End: day(2024, 10, 31)}, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
