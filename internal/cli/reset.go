package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/wire"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the data collections to their seeded defaults",
		Long: `Reset the data collections to their seeded defaults.

Equipment, work orders, inventory, stock movements and plans are
cleared and reinitialized. The maintainer and requester rosters and
the equipment-type catalog survive a reset. Asks for confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.MaintenanceService().ResetAll(context.Background()); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
			return nil
		},
	}
}
