package query

import (
	"context"
	"errors"
	"testing"

	"github.com/amharies/BIONARY--CHATBOT/ai/mock"
)

func TestKeywordExtractor(t *testing.T) {
	e := NewKeywordExtractor()
	cases := []struct {
		question string
		want     string
	}{
		{"give me details about the robotics workshop", "robotics workshop"},
		{"show all events conducted by the ai club", "ai club"},
		{"What is the venue?", "venue"},
		{"tell me about it", "it"},
		{"the of a an", ""},
		{"", ""},
	}
	for _, c := range cases {
		got, err := e.ExtractTerm(context.Background(), c.question)
		if err != nil {
			t.Fatalf("ExtractTerm(%q) error: %v", c.question, err)
		}
		if got != c.want {
			t.Errorf("ExtractTerm(%q) = %q, want %q", c.question, got, c.want)
		}
	}
}

func TestFallbackExtractor_PrimarySucceeds(t *testing.T) {
	primary := mock.NewMockTermExtractor()
	primary.ExtractTermFunc = func(_ context.Context, _ string) (string, error) {
		return "robotics", nil
	}
	e := NewFallbackExtractor(primary, nil)
	got, err := e.ExtractTerm(context.Background(), "free robotics events in october 2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "robotics" {
		t.Errorf("got %q, want %q", got, "robotics")
	}
}

func TestFallbackExtractor_PrimaryFails(t *testing.T) {
	primary := mock.NewMockTermExtractor()
	primary.ExtractTermFunc = func(_ context.Context, _ string) (string, error) {
		return "", errors.New("model unavailable")
	}
	e := NewFallbackExtractor(primary, nil)
	got, err := e.ExtractTerm(context.Background(), "give me details about the robotics workshop")
	if err != nil {
		t.Fatalf("fallback must swallow the primary error, got: %v", err)
	}
	if got != "robotics workshop" {
		t.Errorf("got %q, want %q", got, "robotics workshop")
	}
}

func TestFallbackExtractor_NilPrimary(t *testing.T) {
	e := NewFallbackExtractor(nil, nil)
	got, err := e.ExtractTerm(context.Background(), "list events in 2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024" {
		t.Errorf("got %q, want %q", got, "2024")
	}
}
