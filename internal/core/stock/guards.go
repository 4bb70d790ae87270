// Package stock contains the pure business logic for stock-movement
// postings. This is part of the Functional Core - no I/O, only pure
// functions.
package stock

import (
	"fmt"

	"github.com/example/sgmi/internal/models"
)

// PostContext provides the context needed to evaluate a posting guard.
// Part is nil when the movement's part reference does not resolve.
type PostContext struct {
	Part     *models.SparePart
	Movement models.StockMovement
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanPost evaluates whether a stock movement may be appended to the log.
// Rules: the part must exist, the quantity must be positive, the direction
// must be a known tag, and an outbound movement cannot exceed the current
// stock level.
func CanPost(ctx PostContext) GuardResult {
	m := ctx.Movement
	if m.Type != models.MovementInbound && m.Type != models.MovementOutbound {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown movement direction %q", m.Type),
		}
	}
	if m.Quantity <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("movement quantity must be positive, got %v", m.Quantity),
		}
	}
	if ctx.Part == nil {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("part %s not found", m.PartID),
		}
	}
	if m.Type == models.MovementOutbound && m.Quantity > ctx.Part.CurrentStock {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("outbound of %v exceeds current stock %v for part %s", m.Quantity, ctx.Part.CurrentStock, m.PartID),
		}
	}
	return GuardResult{Allowed: true}
}

// Apply returns the part with the movement's signed quantity applied to its
// stock level. The caller persists the result; the input is not mutated.
func Apply(part models.SparePart, m models.StockMovement) models.SparePart {
	part.CurrentStock += m.Signed()
	return part
}
