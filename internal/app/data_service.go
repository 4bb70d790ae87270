package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/sgmi/internal/core/reliability"
	"github.com/example/sgmi/internal/core/workorder"
	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/primary"
	"github.com/example/sgmi/internal/ports/secondary"
)

// DataServiceImpl implements the MaintenanceService interface: the unified
// save protocol for equipment and work orders, with the consistency
// reconciler hooked into the equipment write path.
type DataServiceImpl struct {
	collections *Collections
	notifier    secondary.Notifier
	confirmer   secondary.Confirmer
	activity    secondary.ActivityLog
	user        string
	log         logrus.FieldLogger

	now       func() time.Time
	syncDelay time.Duration
	lastSync  string
}

// NewDataService creates a new MaintenanceService with injected dependencies.
func NewDataService(collections *Collections, notifier secondary.Notifier, confirmer secondary.Confirmer, activity secondary.ActivityLog, user string) *DataServiceImpl {
	return &DataServiceImpl{
		collections: collections,
		notifier:    notifier,
		confirmer:   confirmer,
		activity:    activity,
		user:        user,
		log:         logrus.WithField("service", "maintenance"),
		now:         time.Now,
		syncDelay:   600 * time.Millisecond,
	}
}

// recordActivity appends to the audit trail. A failing trail never fails the
// operation it records; the error surfaces as a diagnostic only.
func (s *DataServiceImpl) recordActivity(ctx context.Context, entry models.ActivityEntry) {
	if err := s.activity.Append(ctx, entry); err != nil {
		s.log.WithError(err).Warn("failed to record activity entry")
	}
}

// Equipment returns the equipment collection in stored order.
func (s *DataServiceImpl) Equipment(ctx context.Context) []models.Equipment {
	return s.collections.Equipment.Read(ctx)
}

// WorkOrders returns the work-order collection, most recently touched first.
func (s *DataServiceImpl) WorkOrders(ctx context.Context) []models.WorkOrder {
	return s.collections.WorkOrders.Read(ctx)
}

// SaveWorkOrder upserts an order by ID. An existing order is replaced in
// place, keeping its position; a new one is inserted at the front so the
// collection's iteration order doubles as "recently touched" order.
func (s *DataServiceImpl) SaveWorkOrder(ctx context.Context, order models.WorkOrder) error {
	orders := s.collections.WorkOrders.Read(ctx)

	replaced := false
	updated := make([]models.WorkOrder, len(orders))
	copy(updated, orders)
	for i := range updated {
		if updated[i].ID == order.ID {
			updated[i] = order
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append([]models.WorkOrder{order}, updated...)
	}

	if err := s.collections.WorkOrders.Write(ctx, updated); err != nil {
		return fmt.Errorf("failed to save work order %s: %w", order.ID, err)
	}

	s.recordActivity(ctx, models.ActivityEntry{
		Kind:     models.ActivityOrderSaved,
		EntityID: order.ID,
		User:     s.user,
	})
	s.notifier.Notify(fmt.Sprintf("Protocolo #%s salvo", order.ID), secondary.NotifySuccess)
	return nil
}

// SaveEquipment upserts an equipment record by ID (inserts append) and then
// runs the consistency reconciler, the only writer of the work-order
// collection outside SaveWorkOrder.
func (s *DataServiceImpl) SaveEquipment(ctx context.Context, eq models.Equipment) error {
	equipment := s.collections.Equipment.Read(ctx)

	replaced := false
	updated := make([]models.Equipment, len(equipment))
	copy(updated, equipment)
	for i := range updated {
		if updated[i].ID == eq.ID {
			updated[i] = eq
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, eq)
	}

	if err := s.writeEquipment(ctx, updated); err != nil {
		return fmt.Errorf("failed to save equipment %s: %w", eq.ID, err)
	}

	s.recordActivity(ctx, models.ActivityEntry{
		Kind:     models.ActivityEquipmentSaved,
		EntityID: eq.ID,
		User:     s.user,
	})
	return nil
}

// writeEquipment is the single equipment write path. Every equipment change
// triggers the reconciler synchronously, and the repaired work-order
// collection is persisted only when a record actually changed.
func (s *DataServiceImpl) writeEquipment(ctx context.Context, equipment []models.Equipment) error {
	if err := s.collections.Equipment.Write(ctx, equipment); err != nil {
		return err
	}
	repaired, changed := workorder.Reconcile(s.collections.WorkOrders.Read(ctx))
	if changed {
		if err := s.collections.WorkOrders.Write(ctx, repaired); err != nil {
			return fmt.Errorf("failed to persist reconciled work orders: %w", err)
		}
	}
	return nil
}

// CreateQuickCorrective builds and saves the work order for an unplanned
// failure report, generating the identifier when none is supplied.
func (s *DataServiceImpl) CreateQuickCorrective(ctx context.Context, req primary.QuickCorrectiveRequest) (*models.WorkOrder, error) {
	if req.EquipmentID == "" {
		return nil, fmt.Errorf("quick corrective requires an equipment ID")
	}
	if req.Description == "" {
		return nil, fmt.Errorf("quick corrective requires a description")
	}

	id := req.OrderID
	if id == "" {
		id = s.NextOrderID(ctx)
	}
	order := workorder.NewCorrectiveOrder(id, req.EquipmentID, req.Description, req.Requester, req.Priority, req.Category, req.FailureDateTime, s.now())

	if err := s.SaveWorkOrder(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// NextOrderID previews the identifier the generator would issue.
func (s *DataServiceImpl) NextOrderID(ctx context.Context) string {
	return workorder.NextOrderID(s.collections.Equipment.Read(ctx), s.collections.WorkOrders.Read(ctx))
}

// ReprogramTask moves an embedded schedule task to another month/year.
// A missing equipment or task is tolerated as a no-op with a notification.
func (s *DataServiceImpl) ReprogramTask(ctx context.Context, equipmentID, taskID, month string, year int) error {
	equipment := s.collections.Equipment.Read(ctx)

	updated := make([]models.Equipment, len(equipment))
	copy(updated, equipment)
	moved := false
	for i := range updated {
		if updated[i].ID != equipmentID {
			continue
		}
		schedule := make([]models.MaintenanceTask, len(updated[i].Schedule))
		copy(schedule, updated[i].Schedule)
		updated[i].Schedule = schedule
		if task := updated[i].FindTask(taskID); task != nil {
			task.Month = month
			task.Year = year
			moved = true
		}
	}

	if !moved {
		s.notifier.Notify(fmt.Sprintf("Tarefa %s não encontrada em %s", taskID, equipmentID), secondary.NotifyInfo)
		return nil
	}

	if err := s.writeEquipment(ctx, updated); err != nil {
		return fmt.Errorf("failed to reprogram task %s: %w", taskID, err)
	}

	s.recordActivity(ctx, models.ActivityEntry{
		Kind:     models.ActivityTaskReprogrammed,
		EntityID: taskID,
		Detail:   fmt.Sprintf("%s/%d", month, year),
		User:     s.user,
	})
	return nil
}

// Metrics computes reliability figures. Read-only: the order history is
// never mutated here.
func (s *DataServiceImpl) Metrics(ctx context.Context, equipmentID string, year int) reliability.Metrics {
	return reliability.Compute(s.collections.WorkOrders.Read(ctx), equipmentID, year)
}

// Sync simulates a database synchronization round-trip. The delay is
// cosmetic and has no correctness implication.
func (s *DataServiceImpl) Sync(ctx context.Context, silent bool) error {
	time.Sleep(s.syncDelay)
	s.lastSync = s.now().Format("15:04:05")
	s.recordActivity(ctx, models.ActivityEntry{Kind: models.ActivitySync, User: s.user})
	if !silent {
		s.notifier.Notify("Base de dados sincronizada com sucesso", secondary.NotifySuccess)
	}
	return nil
}

// LastSyncTime returns the wall-clock time of the last sync, empty before
// the first one.
func (s *DataServiceImpl) LastSyncTime() string {
	return s.lastSync
}

// ResetAll clears the data collections and reinitializes their defaults.
// The reference rosters (maintainers, requesters, types) survive a reset.
// A declined confirmation is a no-op, not an error.
func (s *DataServiceImpl) ResetAll(ctx context.Context) error {
	if !s.confirmer.Confirm("ATENÇÃO: Deseja resetar o banco de dados? Isso apagará edições manuais.") {
		return nil
	}

	resets := []func(context.Context) error{
		s.collections.Equipment.Reset,
		s.collections.WorkOrders.Reset,
		s.collections.Inventory.Reset,
		s.collections.StockMoves.Reset,
		s.collections.Plans.Reset,
	}
	for _, reset := range resets {
		if err := reset(ctx); err != nil {
			return fmt.Errorf("failed to reset collections: %w", err)
		}
	}

	s.recordActivity(ctx, models.ActivityEntry{Kind: models.ActivityReset, User: s.user})
	s.notifier.Notify("Base de dados reiniciada", secondary.NotifyInfo)
	return nil
}

// Ensure DataServiceImpl implements the interface
var _ primary.MaintenanceService = (*DataServiceImpl)(nil)
