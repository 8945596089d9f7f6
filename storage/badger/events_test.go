package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
	"github.com/amharies/BIONARY--CHATBOT/storage"
)

func newTestEvent(name, domain, description string, date time.Time, fee string) *core.EventRecord {
	record := &core.EventRecord{
		Name:                name,
		Domain:              domain,
		Date:                date,
		TimeOfDay:           "NaN",
		Venue:               "NaN",
		Mode:                "NaN",
		RegistrationFee:     fee,
		Speakers:            "NaN",
		FacultyCoordinators: "NaN",
		StudentCoordinators: "NaN",
		Perks:               "NaN",
		Collaboration:       "NaN",
		Description:         description,
	}
	record.RefreshDerived()
	return record
}

func TestEventRecordBasics(t *testing.T) {
	// Create in-memory repositories
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		logRepo.Close()
		eventRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	record := newTestEvent("Robotics Workshop", "Robotics",
		"Hands-on robotics session", time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC), "0")

	added, err := eventRepo.AddEvents(ctx, record)
	if err != nil {
		t.Fatalf("Failed to add event record: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	// Test retrieving the record
	retrieved, err := eventRepo.GetEvent(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get event record: %v", err)
	}

	if retrieved.Name != "Robotics Workshop" {
		t.Fatalf("Expected 'Robotics Workshop', got '%s'", retrieved.Name)
	}
	if retrieved.NormalizedName != "robotics workshop" {
		t.Fatalf("Expected normalized name, got '%s'", retrieved.NormalizedName)
	}
}

func TestEventRecordDuplicate(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	first := newTestEvent("Tech Summit", "Technology", "Annual summit",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "100")
	if _, err := eventRepo.AddEvents(ctx, first); err != nil {
		t.Fatalf("Failed to add event record: %v", err)
	}

	// Same name normalizes to the same identity
	dup := newTestEvent("Tech Summit", "Technology", "Annual summit again",
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "100")
	if _, err := eventRepo.AddEvents(ctx, dup); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetEventByName(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	record := newTestEvent("Hackathon 2024", "Technology", "24 hour hackathon",
		time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC), "50")
	if _, err := eventRepo.AddEvents(ctx, record); err != nil {
		t.Fatalf("Failed to add event record: %v", err)
	}

	found, err := eventRepo.GetEventByName(ctx, "hackathon 2024")
	if err != nil {
		t.Fatalf("Failed to get event by name: %v", err)
	}
	if found.Id != record.Id {
		t.Fatalf("Expected ID %d, got %d", record.Id, found.Id)
	}

	_, err = eventRepo.GetEventByName(ctx, "no such event")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestEventRecordUpdateAndDelete(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	record := newTestEvent("AI Conclave", "AI", "Talks on machine learning",
		time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), "0")
	if _, err := eventRepo.AddEvents(ctx, record); err != nil {
		t.Fatalf("Failed to add event record: %v", err)
	}

	record.Venue = "Main Auditorium"
	record.RefreshDerived()
	if _, err := eventRepo.UpdateEvents(ctx, record); err != nil {
		t.Fatalf("Failed to update event record: %v", err)
	}

	updated, err := eventRepo.GetEvent(ctx, record.Id)
	if err != nil {
		t.Fatalf("Failed to get event record: %v", err)
	}
	if updated.Venue != "Main Auditorium" {
		t.Fatalf("Expected updated venue, got '%s'", updated.Venue)
	}
	if updated.UpdatedAt.Before(updated.InsertedAt) {
		t.Fatal("Expected UpdatedAt >= InsertedAt")
	}

	if err := eventRepo.DeleteEvents(ctx, record.Id); err != nil {
		t.Fatalf("Failed to delete event record: %v", err)
	}
	if _, err := eventRepo.GetEvent(ctx, record.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	// Name index must be cleaned up too
	if _, err := eventRepo.GetEventByName(ctx, record.NormalizedName); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for name lookup after delete, got %v", err)
	}
}

func TestNameIndexFollowsUpdate(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	record := newTestEvent("Robotics Workshop", "Robotics", "Hands-on session",
		time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC), "0")
	if _, err := eventRepo.AddEvents(ctx, record); err != nil {
		t.Fatalf("Failed to add event record: %v", err)
	}
	oldName := record.NormalizedName

	// An update may carry a refreshed normalized name under the same
	// identity, as the reindex path does after a rule change.
	record.NormalizedName = "robotics workshop v2"
	if _, err := eventRepo.UpdateEvents(ctx, record); err != nil {
		t.Fatalf("Failed to update event record: %v", err)
	}

	found, err := eventRepo.GetEventByName(ctx, "robotics workshop v2")
	if err != nil {
		t.Fatalf("Failed to get event by updated name: %v", err)
	}
	if found.Id != record.Id {
		t.Fatalf("Expected ID %d, got %d", record.Id, found.Id)
	}
	if found.NormalizedName != "robotics workshop v2" {
		t.Fatalf("Expected updated normalized name, got %q", found.NormalizedName)
	}

	if _, err := eventRepo.GetEventByName(ctx, oldName); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for stale name, got %v", err)
	}
}

func TestHybridQueryFilters(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	events := []*core.EventRecord{
		newTestEvent("Robotics Workshop", "Robotics", "Hands-on robotics session",
			time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC), "0"),
		newTestEvent("Robotics Expo", "Robotics", "Robot showcase",
			time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC), "150"),
		newTestEvent("Cooking Masterclass", "Culinary", "Learn to cook",
			time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC), "0"),
		newTestEvent("Spring Hackathon", "Technology", "Coding marathon",
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "0"),
	}
	if _, err := eventRepo.AddEvents(ctx, events...); err != nil {
		t.Fatalf("Failed to add event records: %v", err)
	}

	fee := 0
	result, err := eventRepo.HybridQuery(ctx, storage.EventQuery{
		Term: "robotics",
		Date: &core.DateRange{
			Start: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
		},
		FeeEquals:     &fee,
		MinSimilarity: 0.1,
		Limit:         50,
	})
	if err != nil {
		t.Fatalf("Hybrid query failed: %v", err)
	}

	if len(result.Candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(result.Candidates))
	}
	got := result.Candidates[0]
	if got.Record.Name != "Robotics Workshop" {
		t.Fatalf("Expected 'Robotics Workshop', got '%s'", got.Record.Name)
	}
	if got.Score <= 0 || got.Score > 1 {
		t.Fatalf("Expected score in (0,1], got %f", got.Score)
	}
	if !got.MatchedDate || !got.MatchedFee {
		t.Fatal("Expected both filter flags set")
	}
	if result.QueryText == "" {
		t.Fatal("Expected non-empty query text")
	}
}

func TestHybridQueryEmptyReturnsCatalog(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	events := []*core.EventRecord{
		newTestEvent("Event A", "General", "First", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "0"),
		newTestEvent("Event B", "General", "Second", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "0"),
	}
	if _, err := eventRepo.AddEvents(ctx, events...); err != nil {
		t.Fatalf("Failed to add event records: %v", err)
	}

	result, err := eventRepo.HybridQuery(ctx, storage.EventQuery{})
	if err != nil {
		t.Fatalf("Hybrid query failed: %v", err)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("Expected full catalog (2), got %d", len(result.Candidates))
	}
	for _, c := range result.Candidates {
		if c.MatchedDate || c.MatchedFee {
			t.Fatal("Expected no filter flags with an empty query")
		}
	}
}

func TestHybridQueryUnknownFeeExcluded(t *testing.T) {
	eventRepo, logRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { logRepo.Close(); eventRepo.Close(); backend.Close() }()

	ctx := context.Background()

	known := newTestEvent("Free Seminar", "General", "Open to all",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "0")
	unknown := newTestEvent("Mystery Meetup", "General", "Fee unlisted",
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), "NaN")
	if _, err := eventRepo.AddEvents(ctx, known, unknown); err != nil {
		t.Fatalf("Failed to add event records: %v", err)
	}

	fee := 0
	result, err := eventRepo.HybridQuery(ctx, storage.EventQuery{FeeEquals: &fee})
	if err != nil {
		t.Fatalf("Hybrid query failed: %v", err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(result.Candidates))
	}
	if result.Candidates[0].Record.Name != "Free Seminar" {
		t.Fatalf("Expected 'Free Seminar', got '%s'", result.Candidates[0].Record.Name)
	}
}
