package app

import (
	"context"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/secondary"
)

// mockBlobStore implements secondary.BlobStore in memory and counts writes
// per key, so tests can assert that redundant persistence is skipped.
type mockBlobStore struct {
	values    map[string][]byte
	putCounts map[string]int
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{
		values:    make(map[string][]byte),
		putCounts: make(map[string]int),
	}
}

func (m *mockBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockBlobStore) Put(ctx context.Context, key string, value []byte) error {
	m.values[key] = value
	m.putCounts[key]++
	return nil
}

func (m *mockBlobStore) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// Ensure mockBlobStore implements the interface
var _ secondary.BlobStore = (*mockBlobStore)(nil)

// mockNotifier records every notification.
type mockNotifier struct {
	messages []string
	kinds    []secondary.NotifyKind
}

func (n *mockNotifier) Notify(message string, kind secondary.NotifyKind) {
	n.messages = append(n.messages, message)
	n.kinds = append(n.kinds, kind)
}

// mockConfirmer answers every prompt with a fixed result.
type mockConfirmer struct {
	result   bool
	prompted int
}

func (c *mockConfirmer) Confirm(message string) bool {
	c.prompted++
	return c.result
}

// mockActivityLog records appended entries in memory.
type mockActivityLog struct {
	entries   []models.ActivityEntry
	appendErr error
}

func (l *mockActivityLog) Append(ctx context.Context, entry models.ActivityEntry) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	if err := models.ValidateActivityKind(entry.Kind); err != nil {
		return err
	}
	l.entries = append(l.entries, entry)
	return nil
}

func (l *mockActivityLog) List(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	out := make([]models.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}

// testEnv bundles the mocks behind a service under test.
type testEnv struct {
	blob        *mockBlobStore
	notifier    *mockNotifier
	confirmer   *mockConfirmer
	activity    *mockActivityLog
	collections *Collections
}

func newTestEnv() *testEnv {
	blob := newMockBlobStore()
	notifier := &mockNotifier{}
	return &testEnv{
		blob:        blob,
		notifier:    notifier,
		confirmer:   &mockConfirmer{},
		activity:    &mockActivityLog{},
		collections: NewCollections(blob, notifier),
	}
}

func (e *testEnv) dataService() *DataServiceImpl {
	s := NewDataService(e.collections, e.notifier, e.confirmer, e.activity, "tester")
	s.syncDelay = 0
	return s
}

func (e *testEnv) inventoryService() *InventoryServiceImpl {
	return NewInventoryService(e.collections, e.notifier, e.activity, "tester")
}

func (e *testEnv) catalogService() *CatalogServiceImpl {
	return NewCatalogService(e.collections)
}
