package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/sgmi/internal/core/stock"
	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/primary"
	"github.com/example/sgmi/internal/ports/secondary"
)

// InventoryServiceImpl implements the InventoryService interface: spare-part
// upserts and the append-only stock-movement log.
type InventoryServiceImpl struct {
	collections *Collections
	notifier    secondary.Notifier
	activity    secondary.ActivityLog
	user        string
	log         logrus.FieldLogger
	now         func() time.Time
	newID       func() string
}

// NewInventoryService creates a new InventoryService with injected dependencies.
func NewInventoryService(collections *Collections, notifier secondary.Notifier, activity secondary.ActivityLog, user string) *InventoryServiceImpl {
	return &InventoryServiceImpl{
		collections: collections,
		notifier:    notifier,
		activity:    activity,
		user:        user,
		log:         logrus.WithField("service", "inventory"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// recordActivity appends to the audit trail. A failing trail never fails the
// operation it records; the error surfaces as a diagnostic only.
func (s *InventoryServiceImpl) recordActivity(ctx context.Context, entry models.ActivityEntry) {
	if err := s.activity.Append(ctx, entry); err != nil {
		s.log.WithError(err).Warn("failed to record activity entry")
	}
}

// Parts returns the spare-part collection in stored order.
func (s *InventoryServiceImpl) Parts(ctx context.Context) []models.SparePart {
	return s.collections.Inventory.Read(ctx)
}

// FindPart resolves a part by ID. Absence is reported, never an error.
func (s *InventoryServiceImpl) FindPart(ctx context.Context, partID string) (*models.SparePart, bool) {
	for _, p := range s.collections.Inventory.Read(ctx) {
		if p.ID == partID {
			return &p, true
		}
	}
	return nil, false
}

// SavePart upserts a part by ID (inserts append).
func (s *InventoryServiceImpl) SavePart(ctx context.Context, part models.SparePart) error {
	parts := s.collections.Inventory.Read(ctx)

	replaced := false
	updated := make([]models.SparePart, len(parts))
	copy(updated, parts)
	for i := range updated {
		if updated[i].ID == part.ID {
			updated[i] = part
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, part)
	}

	if err := s.collections.Inventory.Write(ctx, updated); err != nil {
		return fmt.Errorf("failed to save part %s: %w", part.ID, err)
	}

	s.recordActivity(ctx, models.ActivityEntry{
		Kind:     models.ActivityPartSaved,
		EntityID: part.ID,
		User:     s.user,
	})
	s.notifier.Notify(fmt.Sprintf("Item %s salvo", part.Name), secondary.NotifySuccess)
	return nil
}

// PostMovement appends a stock movement and applies its signed quantity to
// the referenced part. The movement is immutable once posted; corrections
// are compensating movements.
func (s *InventoryServiceImpl) PostMovement(ctx context.Context, req primary.PostMovementRequest) (*models.StockMovement, error) {
	part, found := s.FindPart(ctx, req.PartID)

	movement := models.StockMovement{
		ID:          s.newID(),
		PartID:      req.PartID,
		Quantity:    req.Quantity,
		Type:        req.Type,
		Reason:      req.Reason,
		User:        s.user,
		Date:        s.now().UTC().Format(time.RFC3339),
		WorkOrderID: req.WorkOrderID,
	}
	if found {
		movement.PartName = part.Name
	}

	guardCtx := stock.PostContext{Movement: movement}
	if found {
		guardCtx.Part = part
	}
	if err := stock.CanPost(guardCtx).Error(); err != nil {
		s.notifier.Notify(err.Error(), secondary.NotifyError)
		return nil, err
	}

	moves := s.collections.StockMoves.Read(ctx)
	updated := append([]models.StockMovement{movement}, moves...)
	if err := s.collections.StockMoves.Write(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to post stock movement: %w", err)
	}

	// Adjust the part's stock level directly: a posting is not a part
	// save and must not emit the part-saved notification.
	adjusted := stock.Apply(*part, movement)
	parts := s.collections.Inventory.Read(ctx)
	updatedParts := make([]models.SparePart, len(parts))
	copy(updatedParts, parts)
	for i := range updatedParts {
		if updatedParts[i].ID == adjusted.ID {
			updatedParts[i] = adjusted
			break
		}
	}
	if err := s.collections.Inventory.Write(ctx, updatedParts); err != nil {
		return nil, fmt.Errorf("failed to adjust stock for part %s: %w", adjusted.ID, err)
	}

	s.recordActivity(ctx, models.ActivityEntry{
		Kind:     models.ActivityStockPosted,
		EntityID: req.PartID,
		Detail:   fmt.Sprintf("%s %v", movement.Type, movement.Quantity),
		User:     s.user,
	})
	return &movement, nil
}

// Movements returns the append-only movement log, newest first.
func (s *InventoryServiceImpl) Movements(ctx context.Context) []models.StockMovement {
	return s.collections.StockMoves.Read(ctx)
}

// Ensure InventoryServiceImpl implements the interface
var _ primary.InventoryService = (*InventoryServiceImpl)(nil)
