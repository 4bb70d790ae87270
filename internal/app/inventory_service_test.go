package app

import (
	"context"
	"testing"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/primary"
)

func seedPart(t *testing.T, svc *InventoryServiceImpl, part models.SparePart) {
	t.Helper()
	if err := svc.SavePart(context.Background(), part); err != nil {
		t.Fatalf("SavePart() error = %v", err)
	}
}

func TestSavePartUpsert(t *testing.T) {
	env := newTestEnv()
	svc := env.inventoryService()
	ctx := context.Background()

	seedPart(t, svc, models.SparePart{ID: "P-01", Name: "Rolamento 6205", CurrentStock: 10})
	seedPart(t, svc, models.SparePart{ID: "P-02", Name: "Correia A-42", CurrentStock: 4})

	parts := svc.Parts(ctx)
	if len(parts) != 2 || parts[0].ID != "P-01" || parts[1].ID != "P-02" {
		t.Fatalf("parts = %+v, want appended [P-01, P-02]", parts)
	}

	seedPart(t, svc, models.SparePart{ID: "P-01", Name: "Rolamento 6205-ZZ", CurrentStock: 10})
	parts = svc.Parts(ctx)
	if len(parts) != 2 || parts[0].Name != "Rolamento 6205-ZZ" {
		t.Errorf("parts = %+v, want P-01 replaced in place", parts)
	}
}

func TestFindPart(t *testing.T) {
	env := newTestEnv()
	svc := env.inventoryService()
	ctx := context.Background()

	seedPart(t, svc, models.SparePart{ID: "P-01", Name: "Rolamento 6205"})

	part, found := svc.FindPart(ctx, "P-01")
	if !found || part.Name != "Rolamento 6205" {
		t.Errorf("FindPart(P-01) = (%+v, %v), want the seeded part", part, found)
	}
	if _, found := svc.FindPart(ctx, "P-99"); found {
		t.Error("FindPart(P-99) reported a part that was never saved")
	}
}

func TestPostMovementAdjustsStock(t *testing.T) {
	env := newTestEnv()
	svc := env.inventoryService()
	ctx := context.Background()

	seedPart(t, svc, models.SparePart{ID: "P-01", Name: "Rolamento 6205", CurrentStock: 10})

	out, err := svc.PostMovement(ctx, primary.PostMovementRequest{
		PartID:   "P-01",
		Quantity: 3,
		Type:     models.MovementOutbound,
		Reason:   "Uso em manutenção",
	})
	if err != nil {
		t.Fatalf("PostMovement() error = %v", err)
	}
	if out.ID == "" {
		t.Error("movement ID not assigned")
	}
	if out.PartName != "Rolamento 6205" {
		t.Errorf("PartName = %q, want denormalized part name", out.PartName)
	}

	part, _ := svc.FindPart(ctx, "P-01")
	if part.CurrentStock != 7 {
		t.Errorf("CurrentStock = %v, want 7 after Saída of 3", part.CurrentStock)
	}

	in, err := svc.PostMovement(ctx, primary.PostMovementRequest{
		PartID:   "P-01",
		Quantity: 5,
		Type:     models.MovementInbound,
		Reason:   "Compra",
	})
	if err != nil {
		t.Fatalf("PostMovement() error = %v", err)
	}
	part, _ = svc.FindPart(ctx, "P-01")
	if part.CurrentStock != 12 {
		t.Errorf("CurrentStock = %v, want 12 after Entrada of 5", part.CurrentStock)
	}

	// Newest first in the log.
	moves := svc.Movements(ctx)
	if len(moves) != 2 || moves[0].ID != in.ID || moves[1].ID != out.ID {
		t.Errorf("movements = %+v, want newest first", moves)
	}
}

func TestPostMovementGuardDenialLeavesStateUnchanged(t *testing.T) {
	env := newTestEnv()
	svc := env.inventoryService()
	ctx := context.Background()

	seedPart(t, svc, models.SparePart{ID: "P-01", Name: "Rolamento 6205", CurrentStock: 2})

	tests := []struct {
		name string
		req  primary.PostMovementRequest
	}{
		{
			name: "outbound exceeding stock",
			req:  primary.PostMovementRequest{PartID: "P-01", Quantity: 5, Type: models.MovementOutbound},
		},
		{
			name: "unknown part",
			req:  primary.PostMovementRequest{PartID: "P-99", Quantity: 1, Type: models.MovementInbound},
		},
		{
			name: "non-positive quantity",
			req:  primary.PostMovementRequest{PartID: "P-01", Quantity: 0, Type: models.MovementInbound},
		},
		{
			name: "unknown direction",
			req:  primary.PostMovementRequest{PartID: "P-01", Quantity: 1, Type: models.MovementType("Transferência")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.PostMovement(ctx, tt.req); err == nil {
				t.Fatal("PostMovement() accepted a movement the guards must deny")
			}
			if part, _ := svc.FindPart(ctx, "P-01"); part.CurrentStock != 2 {
				t.Errorf("CurrentStock = %v, changed by a denied posting", part.CurrentStock)
			}
			if moves := svc.Movements(ctx); len(moves) != 0 {
				t.Errorf("movements = %+v, logged despite denial", moves)
			}
		})
	}
}

func TestPostMovementRecordsActivityNotPartSave(t *testing.T) {
	env := newTestEnv()
	svc := env.inventoryService()
	ctx := context.Background()

	seedPart(t, svc, models.SparePart{ID: "P-01", Name: "Rolamento 6205", CurrentStock: 10})
	savedNotifications := len(env.notifier.messages)

	if _, err := svc.PostMovement(ctx, primary.PostMovementRequest{
		PartID:   "P-01",
		Quantity: 1,
		Type:     models.MovementOutbound,
	}); err != nil {
		t.Fatalf("PostMovement() error = %v", err)
	}

	// Stock adjustment must not re-announce the part as saved.
	if len(env.notifier.messages) != savedNotifications {
		t.Errorf("notifications = %v, posting emitted a part-saved message", env.notifier.messages)
	}

	last := env.activity.entries[len(env.activity.entries)-1]
	if last.Kind != models.ActivityStockPosted {
		t.Errorf("activity kind = %q, want %q", last.Kind, models.ActivityStockPosted)
	}
}
