package core

import "strings"

// Field is one renderable attribute of an event record: a display label and
// the raw stored value.
type Field struct {
	Label string
	Value string
}

// Labels for fields that need special rendering treatment downstream.
const (
	FieldDate = "Date"
	FieldFee  = "Registration Fee"
)

// fieldOrder is the fixed attribute priority shared by the searchable-text
// derivation and the context renderer. Changing this order changes both the
// fuzzy-match index and the rendered context, so it is defined exactly once.
var fieldOrder = []struct {
	label string
	value func(*EventRecord) string
}{
	{"Domain", func(e *EventRecord) string { return e.Domain }},
	{FieldDate, func(e *EventRecord) string { return e.DateString() }},
	{"Time", func(e *EventRecord) string { return e.TimeOfDay }},
	{"Venue", func(e *EventRecord) string { return e.Venue }},
	{"Mode", func(e *EventRecord) string { return e.Mode }},
	{FieldFee, func(e *EventRecord) string { return e.RegistrationFee }},
	{"Speakers", func(e *EventRecord) string { return e.Speakers }},
	{"Faculty Coordinators", func(e *EventRecord) string { return e.FacultyCoordinators }},
	{"Student Coordinators", func(e *EventRecord) string { return e.StudentCoordinators }},
	{"Perks", func(e *EventRecord) string { return e.Perks }},
	{"Collaboration", func(e *EventRecord) string { return e.Collaboration }},
	{"Description", func(e *EventRecord) string { return e.Description }},
}

// Fields returns the record's attributes in the fixed priority order.
// Sentinel values are included; callers decide how to treat them.
func (e *EventRecord) Fields() []Field {
	fields := make([]Field, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		fields = append(fields, Field{Label: f.label, Value: f.value(e)})
	}
	return fields
}

// DateString returns the event date as an ISO calendar date, or "" when unset.
func (e *EventRecord) DateString() string {
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.Format("2006-01-02")
}

// buildSearchText concatenates the event name and the priority-ordered,
// non-sentinel attribute values into the text the fuzzy index matches against.
func (e *EventRecord) buildSearchText() string {
	parts := make([]string, 0, len(fieldOrder)+1)
	parts = append(parts, e.Name)
	for _, f := range fieldOrder {
		if v := f.value(e); !IsSentinel(v) {
			parts = append(parts, v)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
