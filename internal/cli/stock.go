package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/primary"
	"github.com/example/sgmi/internal/wire"
)

// StockCmd returns the stock command
func StockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Post and inspect stock movements",
	}

	cmd.AddCommand(stockPostCmd())
	cmd.AddCommand(stockLogCmd())

	return cmd
}

func stockPostCmd() *cobra.Command {
	var req primary.PostMovementRequest
	var direction string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a stock movement against a part",
		Long: `Post a stock movement against a part.

Movements are append-only: a mistake is corrected by posting a
compensating movement, never by editing the log. An outbound movement
may not exceed the part's current stock.

Examples:
  sgmi stock post --part P-01 --qty 2 --type Saída --reason "OS-0042"
  sgmi stock post --part P-01 --qty 10 --type Entrada --reason "Compra NF 1234"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req.Type = models.MovementType(direction)
			movement, err := wire.InventoryService().PostMovement(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to post movement: %w", err)
			}

			fmt.Printf("✓ Posted %s of %g for %s\n", movement.Type, movement.Quantity, movement.PartName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.PartID, "part", "p", "", "Part ID (required)")
	cmd.Flags().Float64VarP(&req.Quantity, "qty", "q", 0, "Quantity (required, positive)")
	cmd.Flags().StringVarP(&direction, "type", "t", "", "Direction: Entrada or Saída (required)")
	cmd.Flags().StringVarP(&req.Reason, "reason", "r", "", "Reason for the movement")
	cmd.Flags().StringVar(&req.WorkOrderID, "order", "", "Related work-order ID")
	cmd.MarkFlagRequired("part")
	cmd.MarkFlagRequired("qty")
	cmd.MarkFlagRequired("type")

	return cmd
}

func stockLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the movement log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			moves := wire.InventoryService().Movements(ctx)
			if len(moves) == 0 {
				fmt.Println("No movements posted.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Date", "Part", "Type", "Qty", "Reason", "User"})
			for _, m := range moves {
				tw.AppendRow(table.Row{m.Date, m.PartName, m.Type, m.Quantity, m.Reason, m.User})
			}
			tw.Render()
			return nil
		},
	}
}
