package app

import (
	"context"
	"fmt"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/primary"
)

// CatalogServiceImpl implements the CatalogService interface over the
// auxiliary reference collections.
type CatalogServiceImpl struct {
	collections *Collections
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(collections *Collections) *CatalogServiceImpl {
	return &CatalogServiceImpl{collections: collections}
}

func (s *CatalogServiceImpl) Maintainers(ctx context.Context) []string {
	return s.collections.Maintainers.Read(ctx)
}

// AddMaintainer appends a name to the roster; duplicates are a no-op.
func (s *CatalogServiceImpl) AddMaintainer(ctx context.Context, name string) error {
	return appendName(ctx, s.collections.Maintainers, name)
}

func (s *CatalogServiceImpl) Requesters(ctx context.Context) []string {
	return s.collections.Requesters.Read(ctx)
}

// AddRequester appends a name to the roster; duplicates are a no-op.
func (s *CatalogServiceImpl) AddRequester(ctx context.Context, name string) error {
	return appendName(ctx, s.collections.Requesters, name)
}

func (s *CatalogServiceImpl) EquipmentTypes(ctx context.Context) []models.EquipmentType {
	return s.collections.Types.Read(ctx)
}

// SaveEquipmentType upserts a catalog entry by ID (inserts append).
func (s *CatalogServiceImpl) SaveEquipmentType(ctx context.Context, et models.EquipmentType) error {
	types := s.collections.Types.Read(ctx)

	replaced := false
	updated := make([]models.EquipmentType, len(types))
	copy(updated, types)
	for i := range updated {
		if updated[i].ID == et.ID {
			updated[i] = et
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, et)
	}

	if err := s.collections.Types.Write(ctx, updated); err != nil {
		return fmt.Errorf("failed to save equipment type %s: %w", et.ID, err)
	}
	return nil
}

func (s *CatalogServiceImpl) Plans(ctx context.Context) []models.MaintenancePlan {
	return s.collections.Plans.Read(ctx)
}

// SavePlan upserts a plan template by ID (inserts append).
func (s *CatalogServiceImpl) SavePlan(ctx context.Context, plan models.MaintenancePlan) error {
	plans := s.collections.Plans.Read(ctx)

	replaced := false
	updated := make([]models.MaintenancePlan, len(plans))
	copy(updated, plans)
	for i := range updated {
		if updated[i].ID == plan.ID {
			updated[i] = plan
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, plan)
	}

	if err := s.collections.Plans.Write(ctx, updated); err != nil {
		return fmt.Errorf("failed to save plan %s: %w", plan.ID, err)
	}
	return nil
}

// StandardTasks returns the predefined checklist actions.
func (s *CatalogServiceImpl) StandardTasks(ctx context.Context) []string {
	out := make([]string, len(standardActions))
	copy(out, standardActions)
	return out
}

// StandardMaterials returns the predefined checklist materials.
func (s *CatalogServiceImpl) StandardMaterials(ctx context.Context) []string {
	out := make([]string, len(standardMaterials))
	copy(out, standardMaterials)
	return out
}

func appendName(ctx context.Context, c interface {
	Read(context.Context) []string
	Write(context.Context, []string) error
}, name string) error {
	names := c.Read(ctx)
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	updated := make([]string, len(names), len(names)+1)
	copy(updated, names)
	updated = append(updated, name)
	return c.Write(ctx, updated)
}

// Ensure CatalogServiceImpl implements the interface
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)
