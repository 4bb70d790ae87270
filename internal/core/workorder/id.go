// Package workorder contains the pure business logic for work-order
// operations. This is part of the Functional Core - no I/O, only pure
// functions.
package workorder

import (
	"fmt"

	"github.com/example/sgmi/internal/models"
)

// FormatOrderID formats a sequence number as an order ID.
// The format is OS-XXXX where XXXX is a zero-padded 4-digit number.
func FormatOrderID(n int) string {
	return fmt.Sprintf("OS-%04d", n)
}

// ParseOrderNumber extracts the numeric portion from an order ID.
// Returns -1 if the ID format is invalid.
func ParseOrderNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "OS-%d", &num)
	if err != nil {
		return -1
	}
	return num
}

// NextOrderID returns an order ID distinct from every identifier currently
// present in the embedded schedules and in the standalone order collection.
// Both task IDs and the task OS-number field count: a schedule entry linked
// to an order by number must never collide with a freshly issued ID.
// With no prior identifiers the sequence starts at OS-0001.
func NextOrderID(equipment []models.Equipment, orders []models.WorkOrder) string {
	max := 0
	bump := func(id string) {
		if n := ParseOrderNumber(id); n > max {
			max = n
		}
	}
	for _, eq := range equipment {
		for _, task := range eq.Schedule {
			bump(task.ID)
			bump(task.OSNumber)
		}
	}
	for _, o := range orders {
		bump(o.ID)
	}
	return FormatOrderID(max + 1)
}
