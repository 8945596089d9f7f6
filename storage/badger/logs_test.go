package badger

import (
	"context"
	"testing"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

func TestQueryLogBasics(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	entry := &core.QueryLog{
		Question:  "free robotics events in october 2024",
		Answer:    "There is one free robotics event in October 2024.",
		QueryText: "scan events term=\"robotics\"",
	}

	added, err := logRepo.AddLog(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to add log entry: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.AskedAt.IsZero() {
		t.Fatal("Expected AskedAt to be set")
	}
}

func TestRecentLogsOrder(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	now := time.Now().UTC()
	entries := []*core.QueryLog{
		{Question: "first", AskedAt: now.Add(-2 * time.Hour)},
		{Question: "second", AskedAt: now.Add(-1 * time.Hour)},
		{Question: "third", AskedAt: now},
	}
	for _, e := range entries {
		if _, err := logRepo.AddLog(ctx, e); err != nil {
			t.Fatalf("Failed to add log entry: %v", err)
		}
	}

	recent, err := logRepo.RecentLogs(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get recent logs: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}
	if recent[0].Question != "third" || recent[1].Question != "second" {
		t.Fatalf("Expected newest first, got %q then %q", recent[0].Question, recent[1].Question)
	}
}
