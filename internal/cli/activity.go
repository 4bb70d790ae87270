package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/wire"
)

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := wire.ActivityLog().List(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to read activity log: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("No activity recorded.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"When", "Kind", "Entity", "Detail", "User"})
			for _, e := range entries {
				tw.AppendRow(table.Row{e.Date, e.Kind, e.EntityID, e.Detail, e.User})
			}
			tw.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")

	return cmd
}
