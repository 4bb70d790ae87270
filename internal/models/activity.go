package models

import "fmt"

// ActivityKind enumerates the closed set of events the activity log accepts.
// Arbitrary payloads are rejected: a log entry must name one of these kinds.
type ActivityKind string

const (
	ActivityOrderSaved       ActivityKind = "order_saved"
	ActivityEquipmentSaved   ActivityKind = "equipment_saved"
	ActivityPartSaved        ActivityKind = "part_saved"
	ActivityStockPosted      ActivityKind = "stock_posted"
	ActivityTaskReprogrammed ActivityKind = "task_reprogrammed"
	ActivityReset            ActivityKind = "reset"
	ActivitySync             ActivityKind = "sync"
)

// ActivityEntry is one immutable line of the audit trail.
type ActivityEntry struct {
	ID       string       `json:"id"`
	Kind     ActivityKind `json:"kind"`
	EntityID string       `json:"entityId,omitempty"`
	Detail   string       `json:"detail,omitempty"`
	User     string       `json:"user,omitempty"`
	Date     string       `json:"date"`
}

// ValidateActivityKind rejects kinds outside the closed union.
func ValidateActivityKind(kind ActivityKind) error {
	switch kind {
	case ActivityOrderSaved, ActivityEquipmentSaved, ActivityPartSaved,
		ActivityStockPosted, ActivityTaskReprogrammed, ActivityReset, ActivitySync:
		return nil
	}
	return fmt.Errorf("unknown activity kind %q", kind)
}
