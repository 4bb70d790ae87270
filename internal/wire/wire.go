// Package wire provides dependency injection for the SGMI application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/sgmi/internal/adapters/cli"
	"github.com/example/sgmi/internal/adapters/sqlite"
	"github.com/example/sgmi/internal/app"
	"github.com/example/sgmi/internal/config"
	"github.com/example/sgmi/internal/db"
	"github.com/example/sgmi/internal/ports/primary"
	"github.com/example/sgmi/internal/ports/secondary"
)

var (
	maintenanceService primary.MaintenanceService
	inventoryService   primary.InventoryService
	catalogService     primary.CatalogService
	activityLog        secondary.ActivityLog
	once               sync.Once
)

// MaintenanceService returns the singleton MaintenanceService instance.
func MaintenanceService() primary.MaintenanceService {
	once.Do(initServices)
	return maintenanceService
}

// InventoryService returns the singleton InventoryService instance.
func InventoryService() primary.InventoryService {
	once.Do(initServices)
	return inventoryService
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// ActivityLog returns the singleton ActivityLog instance.
func ActivityLog() secondary.ActivityLog {
	once.Do(initServices)
	return activityLog
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Config is optional: a fresh install runs on defaults.
	home, _ := os.UserHomeDir()
	cfg, err := config.LoadConfig(home)
	if err != nil {
		cfg = nil
	}
	user := config.CurrentUser(cfg)

	// Secondary adapters: sqlite persistence plus terminal feedback.
	blob := sqlite.NewBlobStore(database)
	activityLog = sqlite.NewActivityLog(database)
	notifier := cliadapter.NewConsoleNotifier()
	confirmer := cliadapter.NewConsoleConfirmer()

	collections := app.NewCollections(blob, notifier)

	maintenanceService = app.NewDataService(collections, notifier, confirmer, activityLog, user)
	inventoryService = app.NewInventoryService(collections, notifier, activityLog, user)
	catalogService = app.NewCatalogService(collections)
}
