package primary

import (
	"context"

	"github.com/example/sgmi/internal/models"
)

// InventoryService defines the primary port for spare parts and the
// stock-movement log.
type InventoryService interface {
	// Parts returns the spare-part collection in stored order.
	Parts(ctx context.Context) []models.SparePart

	// FindPart resolves a part by ID. A missing part is (nil, false),
	// never an error: part references are soft.
	FindPart(ctx context.Context, partID string) (*models.SparePart, bool)

	// SavePart upserts a part by ID (inserts append).
	SavePart(ctx context.Context, part models.SparePart) error

	// PostMovement appends a stock movement and applies its signed
	// quantity to the referenced part's stock level.
	PostMovement(ctx context.Context, req PostMovementRequest) (*models.StockMovement, error)

	// Movements returns the append-only movement log, newest first.
	Movements(ctx context.Context) []models.StockMovement
}

// PostMovementRequest contains parameters for posting a stock movement.
type PostMovementRequest struct {
	PartID      string
	Quantity    float64
	Type        models.MovementType
	Reason      string
	WorkOrderID string // Optional
}
