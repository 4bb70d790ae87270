package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/sgmi/internal/adapters/sqlite"
	"github.com/example/sgmi/internal/models"
)

func TestActivityLogAppendAndList(t *testing.T) {
	log := sqlite.NewActivityLog(setupTestDB(t))
	ctx := context.Background()

	entries := []models.ActivityEntry{
		{Kind: models.ActivityOrderSaved, EntityID: "OS-0001", Detail: "Protocolo salvo", User: "joao", Date: "2024-01-01T10:00:00Z"},
		{Kind: models.ActivityStockPosted, EntityID: "P-01", User: "joao", Date: "2024-01-02T10:00:00Z"},
	}
	for _, e := range entries {
		if err := log.Append(ctx, e); err != nil {
			t.Fatalf("Append(%s) error = %v", e.Kind, err)
		}
	}

	got, err := log.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(got))
	}
	// Newest first.
	if got[0].Kind != models.ActivityStockPosted || got[1].Kind != models.ActivityOrderSaved {
		t.Errorf("List() order = [%s, %s], want newest first", got[0].Kind, got[1].Kind)
	}
	if got[1].EntityID != "OS-0001" || got[1].Detail != "Protocolo salvo" {
		t.Errorf("entry fields not round-tripped: %+v", got[1])
	}
}

func TestActivityLogAssignsIDAndTimestamp(t *testing.T) {
	log := sqlite.NewActivityLog(setupTestDB(t))
	ctx := context.Background()

	if err := log.Append(ctx, models.ActivityEntry{Kind: models.ActivitySync}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := log.List(ctx, 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(got))
	}
	if got[0].ID == "" {
		t.Error("entry ID not assigned")
	}
	if got[0].Date == "" {
		t.Error("entry timestamp not assigned")
	}
}

func TestActivityLogRejectsUnknownKind(t *testing.T) {
	log := sqlite.NewActivityLog(setupTestDB(t))

	err := log.Append(context.Background(), models.ActivityEntry{Kind: "page_viewed"})
	if err == nil {
		t.Fatal("Append() accepted a kind outside the closed union")
	}

	got, listErr := log.List(context.Background(), 0)
	if listErr != nil {
		t.Fatalf("List() error = %v", listErr)
	}
	if len(got) != 0 {
		t.Errorf("rejected entry was persisted: %+v", got)
	}
}

func TestActivityLogListLimit(t *testing.T) {
	log := sqlite.NewActivityLog(setupTestDB(t))
	ctx := context.Background()

	for _, date := range []string{"2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", "2024-01-03T00:00:00Z"} {
		if err := log.Append(ctx, models.ActivityEntry{Kind: models.ActivitySync, Date: date}); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got, err := log.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List(2) returned %d entries, want 2", len(got))
	}
	if got[0].Date != "2024-01-03T00:00:00Z" {
		t.Errorf("List(2)[0].Date = %q, want newest", got[0].Date)
	}
}
