// Package primary defines the primary ports (driving adapters) for the
// application. The presentation layer only ever talks to these interfaces.
package primary

import (
	"context"

	"github.com/example/sgmi/internal/core/reliability"
	"github.com/example/sgmi/internal/models"
)

// MaintenanceService defines the primary port for equipment and work-order
// operations: the unified save protocol and everything layered on it.
type MaintenanceService interface {
	// Equipment returns the equipment collection in stored order.
	Equipment(ctx context.Context) []models.Equipment

	// WorkOrders returns the work-order collection, most recently touched
	// first.
	WorkOrders(ctx context.Context) []models.WorkOrder

	// SaveWorkOrder upserts an order by ID: replace in place when found,
	// insert at the front when new. Never partially applied.
	SaveWorkOrder(ctx context.Context, order models.WorkOrder) error

	// SaveEquipment upserts an equipment record by ID (inserts append) and
	// runs the consistency reconciler over the work-order collection.
	SaveEquipment(ctx context.Context, eq models.Equipment) error

	// CreateQuickCorrective builds and saves a corrective order for an
	// unplanned failure, generating the ID when none is supplied.
	CreateQuickCorrective(ctx context.Context, req QuickCorrectiveRequest) (*models.WorkOrder, error)

	// NextOrderID previews the identifier the generator would issue.
	NextOrderID(ctx context.Context) string

	// ReprogramTask moves an embedded schedule task to another month/year.
	ReprogramTask(ctx context.Context, equipmentID, taskID, month string, year int) error

	// Metrics computes reliability figures for one equipment item (the
	// whole fleet when equipmentID is empty) over a calendar year.
	Metrics(ctx context.Context, equipmentID string, year int) reliability.Metrics

	// Sync simulates a database synchronization round-trip. Cosmetic.
	Sync(ctx context.Context, silent bool) error

	// ResetAll clears every collection and reinitializes defaults, gated
	// by the confirmation collaborator. A declined prompt is a no-op.
	ResetAll(ctx context.Context) error
}

// QuickCorrectiveRequest contains parameters for the quick-corrective
// creation path.
type QuickCorrectiveRequest struct {
	EquipmentID     string
	Description     string
	Requester       string
	Priority        models.Priority
	OrderID         string                    // Optional - generated when empty
	Category        models.CorrectiveCategory // Optional
	FailureDateTime string                    // Optional - defaults to now
}
