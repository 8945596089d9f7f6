package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	data := `name_of_event,event_domain,date_of_event,description_insights,registration_fee,venue
Robotics Workshop,Robotics,2024-10-12,Hands-on robotics,,Lab 3
Tech Summit,Technology,2024-03-01,Annual summit,100,
`
	inputs, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "Robotics Workshop", inputs[0].Name)
	assert.Equal(t, "Lab 3", inputs[0].Venue)
	assert.Empty(t, inputs[0].RegistrationFee)
	assert.Equal(t, "100", inputs[1].RegistrationFee)
	assert.Empty(t, inputs[1].Venue)
}

func TestReadCSV_ColumnOrderFree(t *testing.T) {
	data := `description_insights,date_of_event,name_of_event,event_domain
Robot basics,2024-10-14,Intro to Robots,Robotics
`
	inputs, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "Intro to Robots", inputs[0].Name)
	assert.Equal(t, "Robot basics", inputs[0].Description)
}

func TestReadCSV_MissingRequiredColumn(t *testing.T) {
	data := `name_of_event,event_domain
Some Event,General
`
	_, err := ReadCSV(strings.NewReader(data))
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestEventInputToRecord(t *testing.T) {
	in := &EventInput{
		Name:        "  Robotics Workshop  ",
		Domain:      "Robotics",
		Date:        "12-10-2024",
		Description: "Hands-on robotics",
	}
	record, err := in.toRecord()
	require.NoError(t, err)
	assert.Equal(t, "Robotics Workshop", record.Name)
	assert.Equal(t, "robotics workshop", record.NormalizedName)
	assert.Equal(t, 12, record.Date.Day())
	assert.Equal(t, "0", record.RegistrationFee)
	assert.NotZero(t, record.Id)
}
