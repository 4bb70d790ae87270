package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/wire"
)

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.MaintenanceService().Sync(context.Background(), silent); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&silent, "silent", "q", false, "Suppress the success notification")

	return cmd
}
