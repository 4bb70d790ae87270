// Package reliability derives availability, MTBF and MTTR figures from
// work-order history. This is part of the Functional Core - no I/O, only
// pure functions. It never mutates the collections it reads.
package reliability

import (
	"time"

	"github.com/example/sgmi/internal/models"
)

// Metrics are the standard reliability-engineering figures for one equipment
// item or the whole fleet over one calendar year.
type Metrics struct {
	// MTBF is nil when fewer than two qualifying failures exist: with zero
	// or one failure there is no "time between" to average.
	MTBF                 *float64
	MTTR                 float64
	Availability         float64
	TotalFailures        int
	TotalCorrectiveHours float64
}

// HoursInYear returns the total period hours for availability, accounting
// for leap years.
func HoursInYear(year int) float64 {
	if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
		return 366 * 24
	}
	return 365 * 24
}

var dateLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Compute aggregates the corrective failure history for equipmentID (the
// whole fleet when empty) in the given year.
//
// A qualifying failure is a corrective order with the machine-stopped flag,
// a scheduled date inside the year, and a parseable completion after the
// scheduled date. Orders with dangling or mismatched equipment references
// and orders missing timestamps contribute nothing; absence is never an
// error here.
func Compute(orders []models.WorkOrder, equipmentID string, year int) Metrics {
	m := Metrics{}
	period := HoursInYear(year)

	for _, o := range orders {
		if o.Type != models.TypeCorrective || !o.MachineStopped {
			continue
		}
		if equipmentID != "" && o.EquipmentID != equipmentID {
			continue
		}
		scheduled, ok := parseDate(o.ScheduledDate)
		if !ok || scheduled.Year() != year {
			continue
		}
		end, ok := parseDate(o.EndDate)
		if !ok || !end.After(scheduled) {
			continue
		}
		m.TotalFailures++
		m.TotalCorrectiveHours += end.Sub(scheduled).Hours()
	}

	if m.TotalFailures > 0 {
		m.MTTR = m.TotalCorrectiveHours / float64(m.TotalFailures)
	}
	if m.TotalFailures >= 2 {
		mtbf := (period - m.TotalCorrectiveHours) / float64(m.TotalFailures)
		m.MTBF = &mtbf
	}
	m.Availability = 1 - m.TotalCorrectiveHours/period

	return m
}
