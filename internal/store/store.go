// Package store provides the typed, key-scoped persistent containers that
// hold every top-level collection. A Collection mirrors an in-memory value
// to the blob persistence medium: reads are served from memory after first
// load, writes overwrite the persisted blob whole (last-writer-wins).
//
// The execution model is single-threaded and event-driven; a mutation is
// only issued after the prior one's effect is committed, so the container
// carries no locking.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/sgmi/internal/ports/secondary"
)

// Collection is a typed container bound to a unique persistence key.
// On first access with no prior persisted value it initializes from the
// caller-supplied default and persists that default immediately.
type Collection[T any] struct {
	key      string
	blob     secondary.BlobStore
	def      func() T
	notifier secondary.Notifier
	log      logrus.FieldLogger

	cached T
	loaded bool
	// memOnly is set when the persistence medium fails; the collection
	// then serves reads and writes from memory for the rest of the
	// session instead of aborting.
	memOnly bool
}

// New creates a collection bound to key. def supplies the first-run value
// and the fallback for corrupted data. notifier may be nil; warnings then
// only reach the diagnostic log.
func New[T any](key string, blob secondary.BlobStore, def func() T, notifier secondary.Notifier) *Collection[T] {
	return &Collection[T]{
		key:      key,
		blob:     blob,
		def:      def,
		notifier: notifier,
		log:      logrus.WithField("collection", key),
	}
}

// Key returns the persistence key the collection is bound to.
func (c *Collection[T]) Key() string {
	return c.key
}

// Read returns the current value, loading it from persistence on first
// access. A corrupted or unreadable blob falls back to the default with a
// non-fatal warning - never an error.
func (c *Collection[T]) Read(ctx context.Context) T {
	if c.loaded {
		return c.cached
	}

	data, found, err := c.blob.Get(ctx, c.key)
	switch {
	case err != nil:
		c.warn("persistence unavailable, continuing in memory", err)
		c.memOnly = true
		c.cached = c.def()
	case !found:
		c.cached = c.def()
		c.persist(ctx, c.cached)
	default:
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			c.warn("stored value unreadable, falling back to default", err)
			c.cached = c.def()
		} else {
			c.cached = v
		}
	}

	c.loaded = true
	return c.cached
}

// Write replaces the value and persists it. A save that returns nil is
// guaranteed visible to the very next Read of the same collection. When
// the medium has failed the write still succeeds in memory.
func (c *Collection[T]) Write(ctx context.Context, v T) error {
	c.cached = v
	c.loaded = true
	if c.memOnly {
		return nil
	}
	c.persist(ctx, v)
	return nil
}

// Reset drops the persisted value and reinitializes from the default.
func (c *Collection[T]) Reset(ctx context.Context) error {
	if !c.memOnly {
		if err := c.blob.Delete(ctx, c.key); err != nil {
			return fmt.Errorf("failed to reset collection %s: %w", c.key, err)
		}
	}
	c.loaded = false
	c.memOnly = false
	c.Read(ctx)
	return nil
}

func (c *Collection[T]) persist(ctx context.Context, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		c.warn("value not serializable, keeping in memory only", err)
		c.memOnly = true
		return
	}
	if err := c.blob.Put(ctx, c.key, data); err != nil {
		c.warn("persistence write failed, continuing in memory", err)
		c.memOnly = true
	}
}

func (c *Collection[T]) warn(message string, err error) {
	c.log.WithError(err).Warn(message)
	if c.notifier != nil {
		c.notifier.Notify(fmt.Sprintf("%s (%s)", message, c.key), secondary.NotifyWarning)
	}
}
