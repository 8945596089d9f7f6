package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the types the key-value backend persists.
// Field order is fixed; adding fields means appending, never reordering, or
// existing databases become unreadable.

// IDMUS serializes IDs.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

// timeMUS serializes timestamps as Unix microseconds. The zero time is
// persisted as 0 and restored as the zero time.
var timeMUS = timeSer{}

type timeSer struct{}

func (timeSer) Marshal(t time.Time, bs []byte) (n int) {
	var micros int64
	if !t.IsZero() {
		micros = t.UnixMicro()
	}
	return varint.Int64.Marshal(micros, bs)
}

func (timeSer) Unmarshal(bs []byte) (t time.Time, n int, err error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	if micros == 0 {
		return time.Time{}, n, nil
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func (timeSer) Size(t time.Time) (size int) {
	var micros int64
	if !t.IsZero() {
		micros = t.UnixMicro()
	}
	return varint.Int64.Size(micros)
}

// EventRecordMUS serializes EventRecords.
var EventRecordMUS = eventRecordMUS{}

type eventRecordMUS struct{}

func (s eventRecordMUS) Marshal(v EventRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	for _, f := range s.strings(&v) {
		n += ord.String.Marshal(*f, bs[n:])
	}
	n += timeMUS.Marshal(v.Date, bs[n:])
	n += timeMUS.Marshal(v.InsertedAt, bs[n:])
	n += timeMUS.Marshal(v.UpdatedAt, bs[n:])
	return n
}

func (s eventRecordMUS) Unmarshal(bs []byte) (v EventRecord, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	for _, f := range s.strings(&v) {
		*f, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	v.Date, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s eventRecordMUS) Size(v EventRecord) (size int) {
	size = IDMUS.Size(v.Id)
	for _, f := range s.strings(&v) {
		size += ord.String.Size(*f)
	}
	size += timeMUS.Size(v.Date)
	size += timeMUS.Size(v.InsertedAt)
	size += timeMUS.Size(v.UpdatedAt)
	return size
}

// strings lists the record's string fields in persistence order.
func (eventRecordMUS) strings(v *EventRecord) []*string {
	return []*string{
		&v.Name,
		&v.Domain,
		&v.TimeOfDay,
		&v.Venue,
		&v.Mode,
		&v.RegistrationFee,
		&v.Speakers,
		&v.FacultyCoordinators,
		&v.StudentCoordinators,
		&v.Perks,
		&v.Collaboration,
		&v.Description,
		&v.NormalizedName,
		&v.SearchText,
	}
}

// QueryLogMUS serializes QueryLogs.
var QueryLogMUS = queryLogMUS{}

type queryLogMUS struct{}

func (queryLogMUS) Marshal(v QueryLog, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += timeMUS.Marshal(v.AskedAt, bs[n:])
	n += ord.String.Marshal(v.Question, bs[n:])
	n += ord.String.Marshal(v.Answer, bs[n:])
	n += ord.String.Marshal(v.QueryText, bs[n:])
	return n
}

func (queryLogMUS) Unmarshal(bs []byte) (v QueryLog, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.AskedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Question, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Answer, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.QueryText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (queryLogMUS) Size(v QueryLog) (size int) {
	size = IDMUS.Size(v.Id)
	size += timeMUS.Size(v.AskedAt)
	size += ord.String.Size(v.Question)
	size += ord.String.Size(v.Answer)
	size += ord.String.Size(v.QueryText)
	return size
}
