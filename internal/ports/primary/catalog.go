package primary

import (
	"context"

	"github.com/example/sgmi/internal/models"
)

// CatalogService defines the primary port for the auxiliary reference
// collections: maintainer and requester rosters, the equipment-type catalog
// and maintenance-plan templates.
type CatalogService interface {
	Maintainers(ctx context.Context) []string
	AddMaintainer(ctx context.Context, name string) error

	Requesters(ctx context.Context) []string
	AddRequester(ctx context.Context, name string) error

	EquipmentTypes(ctx context.Context) []models.EquipmentType
	SaveEquipmentType(ctx context.Context, et models.EquipmentType) error

	Plans(ctx context.Context) []models.MaintenancePlan
	SavePlan(ctx context.Context, plan models.MaintenancePlan) error

	// StandardTasks and StandardMaterials are the predefined checklist
	// building blocks offered by the scheduling forms.
	StandardTasks(ctx context.Context) []string
	StandardMaterials(ctx context.Context) []string
}
