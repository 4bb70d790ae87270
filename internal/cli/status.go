package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/db"
	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			equipment := wire.MaintenanceService().Equipment(ctx)
			orders := wire.MaintenanceService().WorkOrders(ctx)
			parts := wire.InventoryService().Parts(ctx)
			moves := wire.InventoryService().Movements(ctx)

			open := 0
			for _, o := range orders {
				if o.Status != models.StatusExecuted && o.Status != models.StatusDeactivated {
					open++
				}
			}
			lowStock := 0
			for _, p := range parts {
				if p.BelowMinimum() {
					lowStock++
				}
			}

			if path, err := db.GetDBPath(); err == nil {
				fmt.Printf("Database: %s\n", path)
			}
			fmt.Printf("Equipment: %d\n", len(equipment))
			fmt.Printf("Work orders: %d (%d open)\n", len(orders), open)
			fmt.Printf("Spare parts: %d (%d below minimum)\n", len(parts), lowStock)
			fmt.Printf("Stock movements: %d\n", len(moves))
			return nil
		},
	}
}
