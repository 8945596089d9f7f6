package query

import "testing"

func TestExtractEventName(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"give me details of hackathon 2024", "hackathon 2024"},
		{"what is the fee for tech summit", "tech summit"},
		{"tell me about robotics workshop", "robotics workshop"},
		{"list all events", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := ExtractEventName(c.text); got != c.want {
			t.Errorf("ExtractEventName(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractEventName_PatternOrder(t *testing.T) {
	// "of" wins over "about" even when "about" appears first in the text.
	got := ExtractEventName("tell me about the venue of tech summit")
	if got != "tech summit" {
		t.Errorf("got %q, want %q", got, "tech summit")
	}
}
