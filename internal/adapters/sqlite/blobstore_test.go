package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/sgmi/internal/adapters/sqlite"
)

func TestBlobStoreGetMissingKey(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))

	value, found, err := store.Get(context.Background(), "sgmi_equipment")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true for a missing key")
	}
	if value != nil {
		t.Errorf("Get() value = %q, want nil", value)
	}
}

func TestBlobStorePutGetRoundTrip(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))
	ctx := context.Background()

	payload := []byte(`[{"id":"EQ-01","name":"Torno CNC"}]`)
	if err := store.Put(ctx, "sgmi_equipment", payload); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	value, found, err := store.Get(ctx, "sgmi_equipment")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false after Put")
	}
	if string(value) != string(payload) {
		t.Errorf("Get() value = %q, want %q", value, payload)
	}
}

func TestBlobStorePutOverwrites(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Put(ctx, "sgmi_inventory", []byte(`["old"]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put(ctx, "sgmi_inventory", []byte(`["new"]`)); err != nil {
		t.Fatalf("second Put() error = %v", err)
	}

	value, _, err := store.Get(ctx, "sgmi_inventory")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(value) != `["new"]` {
		t.Errorf("Get() value = %q, want %q", value, `["new"]`)
	}
}

func TestBlobStoreDelete(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Put(ctx, "sgmi_plans", []byte(`[]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Delete(ctx, "sgmi_plans"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, found, err := store.Get(ctx, "sgmi_plans")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true after Delete")
	}

	// Deleting a missing key is a no-op.
	if err := store.Delete(ctx, "sgmi_plans"); err != nil {
		t.Errorf("Delete() on missing key error = %v", err)
	}
}

func TestBlobStoreKeysAreIndependent(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Put(ctx, "sgmi_equipment", []byte(`["a"]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put(ctx, "sgmi_work_orders", []byte(`["b"]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Delete(ctx, "sgmi_equipment"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	value, found, err := store.Get(ctx, "sgmi_work_orders")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || string(value) != `["b"]` {
		t.Errorf("Get() = (%q, %v), want ([\"b\"], true)", value, found)
	}
}
