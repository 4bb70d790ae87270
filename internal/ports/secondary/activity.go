package secondary

import (
	"context"

	"github.com/example/sgmi/internal/models"
)

// ActivityLog is the append-only audit trail. Entries are never mutated
// after creation; implementations must reject kinds outside the closed
// union in models.
type ActivityLog interface {
	// Append writes one entry. Implementations assign the timestamp when
	// the entry carries none.
	Append(ctx context.Context, entry models.ActivityEntry) error

	// List returns the most recent entries, newest first, up to limit
	// (all entries when limit <= 0).
	List(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
