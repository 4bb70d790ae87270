package models

// SparePart is an inventory item. CurrentStock is only ever adjusted through
// part saves and stock-movement postings.
type SparePart struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Unit         string  `json:"unit"`
	Cost         float64 `json:"cost"`
	MinStock     float64 `json:"minStock"`
	CurrentStock float64 `json:"currentStock"`
}

// BelowMinimum reports whether the part needs replenishment.
func (p SparePart) BelowMinimum() bool {
	return p.CurrentStock < p.MinStock
}

// StockMovement is an append-only log entry. It is never mutated after
// creation; corrections are posted as compensating movements.
type StockMovement struct {
	ID          string       `json:"id"`
	PartID      string       `json:"partId"`
	PartName    string       `json:"partName"`
	Quantity    float64      `json:"quantity"`
	Type        MovementType `json:"type"`
	Reason      string       `json:"reason"`
	User        string       `json:"user"`
	Date        string       `json:"date"`
	WorkOrderID string       `json:"workOrderId,omitempty"`
}

// Signed returns the quantity with the direction applied.
func (m StockMovement) Signed() float64 {
	if m.Type == MovementOutbound {
		return -m.Quantity
	}
	return m.Quantity
}
