package models

// TaskDetail is one checklist line: an action, the materials it needs, and
// whether the technician ticked it off in the field.
type TaskDetail struct {
	Action    string `json:"action"`
	Materials string `json:"materials,omitempty"`
	Checked   bool   `json:"checked,omitempty"`
}

// Maintainer identifies who executes a task, internal staff or a contractor.
type Maintainer struct {
	Name       string `json:"name"`
	IsExternal bool   `json:"isExternal"`
}

// PurchaseRequest tracks parts bought specifically for a task or order.
type PurchaseRequest struct {
	ID                  string         `json:"id"`
	ItemDescription     string         `json:"itemDescription"`
	Quantity            int            `json:"quantity"`
	Status              PurchaseStatus `json:"status"`
	RequisitionDate     string         `json:"requisitionDate"`
	ArrivalDate         string         `json:"arrivalDate,omitempty"`
	PurchaseOrderNumber string         `json:"purchaseOrderNumber,omitempty"`
}

// MaintenanceTask is a schedule-embedded planned activity for one equipment
// item. Its ID is unique only within the parent equipment's schedule.
type MaintenanceTask struct {
	ID          string            `json:"id"`
	Year        int               `json:"year"`
	Month       string            `json:"month"`
	Status      MaintenanceStatus `json:"status"`
	Type        MaintenanceType   `json:"type,omitempty"`
	Description string            `json:"description"`
	Details     []TaskDetail      `json:"details,omitempty"`
	OSNumber    string            `json:"osNumber,omitempty"`
	Priority    Priority          `json:"priority,omitempty"`
	StartDate   string            `json:"startDate,omitempty"`
	EndDate     string            `json:"endDate,omitempty"`
	ManHours    float64           `json:"manHours,omitempty"`
	PlanID      string            `json:"planId,omitempty"`
	IsPrepared  bool              `json:"isPrepared,omitempty"`

	CorrectiveCategory CorrectiveCategory `json:"correctiveCategory,omitempty"`
	RootCause          string             `json:"rootCause,omitempty"`
	RequestDate        string             `json:"requestDate,omitempty"`
	Maintainer         *Maintainer        `json:"maintainer,omitempty"`
	Requester          string             `json:"requester,omitempty"`
	WaitingForParts    bool               `json:"waitingForParts,omitempty"`
	PurchaseRequests   []PurchaseRequest  `json:"purchaseRequests,omitempty"`
}

// Equipment is a tracked asset and the exclusive owner of its schedule.
// Tasks are embedded, never referenced externally except by copy.
type Equipment struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Location   string            `json:"location"`
	Category   AssetCategory     `json:"category"`
	Status     EquipmentState    `json:"status"`
	IsCritical bool              `json:"is_critical"`
	Schedule   []MaintenanceTask `json:"schedule"`

	Manufacturer                 string `json:"manufacturer,omitempty"`
	Model                        string `json:"model,omitempty"`
	YearOfManufacture            string `json:"yearOfManufacture,omitempty"`
	PreservationNotes            string `json:"preservationNotes,omitempty"`
	CustomerSpecificRequirements string `json:"customerSpecificRequirements,omitempty"`
	CustomPlanID                 string `json:"customPlanId,omitempty"`
}

// FindTask returns the schedule entry with the given ID, or nil.
func (e *Equipment) FindTask(taskID string) *MaintenanceTask {
	for i := range e.Schedule {
		if e.Schedule[i].ID == taskID {
			return &e.Schedule[i]
		}
	}
	return nil
}

// EquipmentType is a catalog entry grouping equipment for plan targeting.
type EquipmentType struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// MaintenancePlan is a reusable template that stamps tasks onto the
// schedules of its target equipment at the configured frequency.
type MaintenancePlan struct {
	ID                 string          `json:"id"`
	Description        string          `json:"description"`
	EquipmentTypeID    string          `json:"equipment_type_id"`
	TargetEquipmentIDs []string        `json:"target_equipment_ids"`
	Frequency          int             `json:"frequency"`
	MaintenanceType    MaintenanceType `json:"maintenance_type"`
	DefaultMaintainer  string          `json:"default_maintainer"`
	StartMonth         string          `json:"start_month"`
	Tasks              []TaskDetail    `json:"tasks"`
}
