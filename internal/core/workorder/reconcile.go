package workorder

import (
	"time"

	"github.com/example/sgmi/internal/models"
)

// scheduleLayouts are the timestamp layouts accepted on work-order dates,
// tried in order. The minute-precision layout comes first because that is
// what the quick-corrective path writes.
var scheduleLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseOrderDate parses a work-order timestamp and reports the layout that
// matched, so the repaired value can be written back in the same shape.
func parseOrderDate(value string) (time.Time, string, bool) {
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, layout, true
		}
	}
	return time.Time{}, "", false
}

// executedRepairDelta is the synthesized duration of an executed order whose
// completion timestamp was never recorded.
const executedRepairDelta = time.Hour

// Reconcile repairs orders whose status is Executado but whose completion
// timestamp is absent, synthesizing EndDate as the scheduled timestamp plus
// one hour. Orders with unparseable scheduled dates are left untouched.
//
// The returned flag is true only when at least one order was changed; callers
// use it to skip redundant persistence writes. Running the pass twice on the
// same input yields the same output and a false flag on the second run.
func Reconcile(orders []models.WorkOrder) ([]models.WorkOrder, bool) {
	changed := false
	out := make([]models.WorkOrder, len(orders))
	copy(out, orders)
	for i := range out {
		if out[i].Status != models.StatusExecuted || out[i].EndDate != "" {
			continue
		}
		scheduled, layout, ok := parseOrderDate(out[i].ScheduledDate)
		if !ok {
			continue
		}
		out[i].EndDate = scheduled.Add(executedRepairDelta).Format(layout)
		changed = true
	}
	if !changed {
		return orders, false
	}
	return out, true
}
