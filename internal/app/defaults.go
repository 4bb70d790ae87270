package app

import (
	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/secondary"
	"github.com/example/sgmi/internal/store"
)

// Persistence keys, one per top-level collection. Stable: renaming one
// orphans the data stored under it.
const (
	KeyEquipment   = "sgmi_equipment"
	KeyWorkOrders  = "sgmi_work_orders"
	KeyInventory   = "sgmi_inventory"
	KeyStockMoves  = "sgmi_stock_moves"
	KeyMaintainers = "sgmi_maintainers"
	KeyRequesters  = "sgmi_requesters"
	KeyTypes       = "sgmi_types"
	KeyPlans       = "sgmi_plans"
)

func defaultMaintainers() []string {
	return []string{
		"João Silva",
		"Carlos Pereira",
		"Ana Souza",
		"Marcos Lima",
		"Equipe Externa A",
		"Fornecedor B",
		"Sampred",
	}
}

func defaultRequesters() []string {
	return []string{
		"Produção",
		"Qualidade",
		"Engenharia",
		"Segurança",
		"Manutenção",
	}
}

// standardActions are the predefined checklist actions offered by the
// scheduling forms, alphabetically ordered.
var standardActions = []string{
	"Analisar condições gerais",
	"Análise de vibração",
	"Análise termográfica",
	"Limpeza do equipamento",
	"Lubrificar guias e barramentos",
	"Medição de corrente do motor",
	"Reaperto de contatos elétricos",
	"Substituição de Óleo e Filtro do Óleo",
	"Verificação de vazamentos",
	"Verificação do nível de óleo",
}

var standardMaterials = []string{
	"Graxa à base de lítio",
	"Óleo hidráulico ISO VG 46",
	"ÓLEO ISO VG 68",
	"Rolamento 6202 zz",
}

// Collections bundles every persistent collection of the application.
// Each collection has exactly one writer path in the services below.
type Collections struct {
	Equipment   *store.Collection[[]models.Equipment]
	WorkOrders  *store.Collection[[]models.WorkOrder]
	Inventory   *store.Collection[[]models.SparePart]
	StockMoves  *store.Collection[[]models.StockMovement]
	Maintainers *store.Collection[[]string]
	Requesters  *store.Collection[[]string]
	Types       *store.Collection[[]models.EquipmentType]
	Plans       *store.Collection[[]models.MaintenancePlan]
}

// NewCollections binds every collection to its key with first-run defaults.
func NewCollections(blob secondary.BlobStore, notifier secondary.Notifier) *Collections {
	return &Collections{
		Equipment:   store.New(KeyEquipment, blob, func() []models.Equipment { return []models.Equipment{} }, notifier),
		WorkOrders:  store.New(KeyWorkOrders, blob, func() []models.WorkOrder { return []models.WorkOrder{} }, notifier),
		Inventory:   store.New(KeyInventory, blob, func() []models.SparePart { return []models.SparePart{} }, notifier),
		StockMoves:  store.New(KeyStockMoves, blob, func() []models.StockMovement { return []models.StockMovement{} }, notifier),
		Maintainers: store.New(KeyMaintainers, blob, defaultMaintainers, notifier),
		Requesters:  store.New(KeyRequesters, blob, defaultRequesters, notifier),
		Types:       store.New(KeyTypes, blob, func() []models.EquipmentType { return []models.EquipmentType{} }, notifier),
		Plans:       store.New(KeyPlans, blob, func() []models.MaintenancePlan { return []models.MaintenancePlan{} }, notifier),
	}
}
