package models

// MaintenanceStatus is the lifecycle state of a task or work order.
// Values are the display labels and are what gets persisted, so reordering
// the constants never changes stored data.
type MaintenanceStatus string

const (
	StatusScheduled    MaintenanceStatus = "Programado"
	StatusInField      MaintenanceStatus = "Em Campo"
	StatusExecuted     MaintenanceStatus = "Executado"
	StatusDelayed      MaintenanceStatus = "Atrasado"
	StatusDeactivated  MaintenanceStatus = "Desativado"
	StatusWaitingParts MaintenanceStatus = "Aguardando Peças"
	StatusNone         MaintenanceStatus = "Nenhum"
)

// AssetCategory splits the fleet between industrial machines and building assets.
type AssetCategory string

const (
	CategoryIndustrial AssetCategory = "Industrial"
	CategoryFacility   AssetCategory = "Predial"
)

// EquipmentState marks an equipment record active or retired.
type EquipmentState string

const (
	EquipmentActive   EquipmentState = "Ativo"
	EquipmentInactive EquipmentState = "Inativo"
)

// MaintenanceType classifies the nature of the work.
type MaintenanceType string

const (
	TypePreventive     MaintenanceType = "Preventiva"
	TypePredictive     MaintenanceType = "Preditiva"
	TypeCorrective     MaintenanceType = "Corretiva"
	TypeOverhaul       MaintenanceType = "Revisão Geral"
	TypePeriodicReview MaintenanceType = "Revisão Periódica"
	TypeService        MaintenanceType = "Prestação de Serviços"
	TypeFacility       MaintenanceType = "Predial"
	TypeImprovement    MaintenanceType = "Melhoria"
)

// CorrectiveCategory narrows a corrective order to a failure discipline.
type CorrectiveCategory string

const (
	CorrectiveMechanical CorrectiveCategory = "Mecânica"
	CorrectiveElectrical CorrectiveCategory = "Elétrica"
	CorrectivePneumatic  CorrectiveCategory = "Pneumática"
	CorrectiveHydraulic  CorrectiveCategory = "Hidráulica"
	CorrectiveOther      CorrectiveCategory = "Outros"
)

// Priority of a corrective request. Alta implies the machine is stopped.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Média"
	PriorityLow    Priority = "Baixa"
)

// MovementType is the direction tag of a stock movement.
type MovementType string

const (
	MovementInbound  MovementType = "Entrada"
	MovementOutbound MovementType = "Saída"
)

// PurchaseStatus tracks a purchase request from requisition to delivery.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "Pendente"
	PurchaseBought    PurchaseStatus = "Comprado"
	PurchaseDelivered PurchaseStatus = "Entregue"
)
