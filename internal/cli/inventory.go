package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/wire"
)

// InventoryCmd returns the inventory command
func InventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage spare parts",
	}

	cmd.AddCommand(inventoryListCmd())
	cmd.AddCommand(inventorySaveCmd())

	return cmd
}

func inventoryListCmd() *cobra.Command {
	var low bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spare parts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			parts := wire.InventoryService().Parts(ctx)
			if low {
				filtered := parts[:0:0]
				for _, p := range parts {
					if p.BelowMinimum() {
						filtered = append(filtered, p)
					}
				}
				parts = filtered
			}
			if len(parts) == 0 {
				fmt.Println("No parts found.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Location", "Unit", "Stock", "Min"})
			for _, p := range parts {
				stock := fmt.Sprintf("%g", p.CurrentStock)
				if p.BelowMinimum() {
					stock = color.RedString(stock)
				}
				tw.AppendRow(table.Row{p.ID, p.Name, p.Location, p.Unit, stock, p.MinStock})
			}
			tw.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&low, "low", false, "Only parts below their minimum stock")

	return cmd
}

func inventorySaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [file.json]",
		Short: "Save a spare part from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			var part models.SparePart
			if err := json.Unmarshal(data, &part); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			if part.ID == "" {
				return fmt.Errorf("%s: part id is required", args[0])
			}

			if err := wire.InventoryService().SavePart(ctx, part); err != nil {
				return fmt.Errorf("failed to save part: %w", err)
			}
			return nil
		},
	}
}
