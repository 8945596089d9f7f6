package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amharies/BIONARY--CHATBOT/ai/mock"
	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/search"
)

func TestAnswer_EmptyResultSkipsModel(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	a, err := NewAnswerer(synth, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := a.Answer(context.Background(), "any events?", &search.Result{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != InsufficientAnswer {
		t.Errorf("got %q, want %q", got, InsufficientAnswer)
	}
	if synth.CallCount() != 0 {
		t.Errorf("expected no model call, got %d", synth.CallCount())
	}
}

func TestAnswer_DirectResult(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	a, _ := NewAnswerer(synth, nil)

	result := &search.Result{Direct: testRecord()}
	_, err := a.Answer(context.Background(), "details of robotics workshop", result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synth.CallCount() != 1 {
		t.Fatalf("expected one model call, got %d", synth.CallCount())
	}
	if !strings.Contains(synth.LastInformation(), "## Robotics Workshop") {
		t.Errorf("context missing record block:\n%s", synth.LastInformation())
	}
	if synth.LastPreferTable() {
		t.Error("single record must not request a table")
	}
}

func TestAnswer_MultipleRecordsPreferTable(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	a, _ := NewAnswerer(synth, nil)

	b := testRecord()
	b.Name = "Robotics Expo"
	b.RefreshDerived()
	result := &search.Result{
		Ranked: []*core.RankedResult{
			{Candidate: &core.Candidate{Record: testRecord()}, FinalScore: 0.9},
			{Candidate: &core.Candidate{Record: b}, FinalScore: 0.5},
		},
	}

	_, err := a.Answer(context.Background(), "robotics events", result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !synth.LastPreferTable() {
		t.Error("multiple records must request a table")
	}
}

func TestAnswer_SynthesisFailure(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	synth.SynthesizeFunc = func(_ context.Context, _, _ string, _ bool) (string, error) {
		return "", errors.New("model unavailable")
	}
	a, _ := NewAnswerer(synth, nil)

	result := &search.Result{Direct: testRecord()}
	_, err := a.Answer(context.Background(), "details of robotics workshop", result)
	if !errors.Is(err, ErrSynthesis) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
}

func TestNewAnswerer_RequiresSynthesizer(t *testing.T) {
	if _, err := NewAnswerer(nil, nil); !errors.Is(err, ErrSynthesizerRequired) {
		t.Fatalf("expected ErrSynthesizerRequired, got %v", err)
	}
}
