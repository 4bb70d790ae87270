package reliability

import (
	"math"
	"reflect"
	"testing"

	"github.com/example/sgmi/internal/models"
)

func corrective(id, eqID, scheduled, end string, stopped bool) models.WorkOrder {
	return models.WorkOrder{
		ID:             id,
		EquipmentID:    eqID,
		Type:           models.TypeCorrective,
		Status:         models.StatusExecuted,
		ScheduledDate:  scheduled,
		EndDate:        end,
		MachineStopped: stopped,
	}
}

func TestHoursInYear(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{year: 2023, want: 8760},
		{year: 2024, want: 8784}, // leap
		{year: 2000, want: 8784}, // divisible by 400
		{year: 1900, want: 8760}, // divisible by 100, not 400
	}

	for _, tt := range tests {
		if got := HoursInYear(tt.year); got != tt.want {
			t.Errorf("HoursInYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestComputeAggregates(t *testing.T) {
	orders := []models.WorkOrder{
		corrective("OS-0001", "EQ-01", "2024-01-10T08:00", "2024-01-10T12:00", true), // 4h
		corrective("OS-0002", "EQ-01", "2024-02-01T10:00", "2024-02-01T12:00", true), // 2h
		corrective("OS-0003", "EQ-02", "2024-03-01T10:00", "2024-03-01T11:00", true), // other equipment
		corrective("OS-0004", "EQ-01", "2023-03-01T10:00", "2023-03-01T14:00", true), // other year
		corrective("OS-0005", "EQ-01", "2024-04-01T10:00", "2024-04-01T18:00", false), // machine not stopped
		{ID: "OS-0006", EquipmentID: "EQ-01", Type: models.TypePreventive, ScheduledDate: "2024-05-01T10:00", EndDate: "2024-05-01T12:00", MachineStopped: true},
		corrective("OS-0007", "EQ-01", "2024-06-01T10:00", "", true), // no completion
	}

	m := Compute(orders, "EQ-01", 2024)

	if m.TotalFailures != 2 {
		t.Errorf("TotalFailures = %d, want 2", m.TotalFailures)
	}
	if m.TotalCorrectiveHours != 6 {
		t.Errorf("TotalCorrectiveHours = %v, want 6", m.TotalCorrectiveHours)
	}
	if m.MTTR != 3 {
		t.Errorf("MTTR = %v, want 3", m.MTTR)
	}
	if m.MTBF == nil {
		t.Fatal("MTBF = nil, want a value with two failures")
	}
	wantMTBF := (8784 - 6.0) / 2
	if math.Abs(*m.MTBF-wantMTBF) > 1e-9 {
		t.Errorf("MTBF = %v, want %v", *m.MTBF, wantMTBF)
	}
	wantAvail := 1 - 6.0/8784
	if math.Abs(m.Availability-wantAvail) > 1e-9 {
		t.Errorf("Availability = %v, want %v", m.Availability, wantAvail)
	}
}

// With zero or one qualifying failure MTBF is undefined, never a computed
// number or a divide-by-zero artifact.
func TestComputeMTBFUndefinedBelowTwoFailures(t *testing.T) {
	tests := []struct {
		name   string
		orders []models.WorkOrder
	}{
		{name: "no failures"},
		{
			name: "one failure",
			orders: []models.WorkOrder{
				corrective("OS-0001", "EQ-01", "2024-01-10T08:00", "2024-01-10T12:00", true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(tt.orders, "", 2024)
			if m.MTBF != nil {
				t.Errorf("MTBF = %v, want nil", *m.MTBF)
			}
		})
	}
}

func TestComputeFleetWide(t *testing.T) {
	orders := []models.WorkOrder{
		corrective("OS-0001", "EQ-01", "2023-01-10T08:00", "2023-01-10T09:00", true),
		corrective("OS-0002", "EQ-02", "2023-02-10T08:00", "2023-02-10T11:00", true),
	}

	m := Compute(orders, "", 2023)
	if m.TotalFailures != 2 {
		t.Errorf("TotalFailures = %d, want 2", m.TotalFailures)
	}
	if m.TotalCorrectiveHours != 4 {
		t.Errorf("TotalCorrectiveHours = %v, want 4", m.TotalCorrectiveHours)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	orders := []models.WorkOrder{
		corrective("OS-0001", "EQ-01", "2024-01-10T08:00", "2024-01-10T12:00", true),
	}
	before := orders[0]
	Compute(orders, "EQ-01", 2024)
	if !reflect.DeepEqual(orders[0], before) {
		t.Error("Compute mutated its input")
	}
}
