package workorder

import (
	"time"

	"github.com/example/sgmi/internal/models"
)

// minuteLayout truncates the failure timestamp to minute precision, matching
// what the scheduling forms capture.
const minuteLayout = "2006-01-02T15:04"

// NewCorrectiveOrder builds the work order for an unplanned failure report.
// The caller resolves the ID (explicit or generated) before calling.
//
// Priority Alta means the machine is down: the order starts Atrasado with the
// machine-stopped flag set. Anything else starts Programado. When no failure
// timestamp is supplied the scheduled date defaults to now, truncated to the
// minute.
func NewCorrectiveOrder(id, equipmentID, description, requester string, priority models.Priority, category models.CorrectiveCategory, failureDateTime string, now time.Time) models.WorkOrder {
	status := models.StatusScheduled
	stopped := false
	if priority == models.PriorityHigh {
		status = models.StatusDelayed
		stopped = true
	}
	scheduled := failureDateTime
	if scheduled == "" {
		scheduled = now.Format(minuteLayout)
	}
	return models.WorkOrder{
		ID:                 id,
		EquipmentID:        equipmentID,
		Type:               models.TypeCorrective,
		Status:             status,
		ScheduledDate:      scheduled,
		Description:        description,
		Requester:          requester,
		MachineStopped:     stopped,
		MaterialsUsed:      []models.MaterialUsage{},
		ManHours:           []models.ManHourEntry{},
		CorrectiveCategory: category,
	}
}
