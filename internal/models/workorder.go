package models

// MaterialUsage is a soft reference into the spare-part collection. The part
// may have been deleted since; consumers treat a dangling PartID as absent.
type MaterialUsage struct {
	PartID   string  `json:"partId"`
	Quantity float64 `json:"quantity"`
}

// ManHourEntry records hours booked by one maintainer against an order.
type ManHourEntry struct {
	Maintainer string  `json:"maintainer"`
	Hours      float64 `json:"hours"`
}

// WorkOrder (OS) is a unit of maintenance work tracked independently of the
// equipment's embedded schedule. EquipmentID is a soft reference: it is not
// required to resolve.
type WorkOrder struct {
	ID             string            `json:"id"`
	EquipmentID    string            `json:"equipmentId"`
	Type           MaintenanceType   `json:"type"`
	Status         MaintenanceStatus `json:"status"`
	ScheduledDate  string            `json:"scheduledDate"`
	EndDate        string            `json:"endDate,omitempty"`
	Description    string            `json:"description"`
	Checklist      []TaskDetail      `json:"checklist,omitempty"`
	MaterialsUsed  []MaterialUsage   `json:"materialsUsed"`
	ManHours       []ManHourEntry    `json:"manHours"`
	Requester      string            `json:"requester"`
	MachineStopped bool              `json:"machineStopped"`

	TechnicalAuditComment string             `json:"technicalAuditComment,omitempty"`
	RootCause             string             `json:"rootCause,omitempty"`
	Observations          string             `json:"observations,omitempty"`
	MiscNotes             string             `json:"miscNotes,omitempty"`
	DowntimeNotes         string             `json:"downtimeNotes,omitempty"`
	CorrectiveCategory    CorrectiveCategory `json:"correctiveCategory,omitempty"`
	IsPrepared            bool               `json:"isPrepared,omitempty"`
	PurchaseRequests      []PurchaseRequest  `json:"purchaseRequests,omitempty"`
}
