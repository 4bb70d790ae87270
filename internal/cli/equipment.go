package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/wire"
)

// EquipmentCmd returns the equipment command
func EquipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Manage equipment records",
		Long:  `List, inspect and save equipment records with their embedded maintenance schedules.`,
	}

	cmd.AddCommand(equipmentListCmd())
	cmd.AddCommand(equipmentShowCmd())
	cmd.AddCommand(equipmentSaveCmd())
	cmd.AddCommand(equipmentReprogramCmd())

	return cmd
}

func equipmentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			equipment := wire.MaintenanceService().Equipment(ctx)
			if len(equipment) == 0 {
				fmt.Println("No equipment found.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Location", "Category", "Status", "Critical", "Tasks"})
			for _, eq := range equipment {
				critical := ""
				if eq.IsCritical {
					critical = "sim"
				}
				tw.AppendRow(table.Row{eq.ID, eq.Name, eq.Location, eq.Category, eq.Status, critical, len(eq.Schedule)})
			}
			tw.Render()
			return nil
		},
	}
}

func equipmentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [equipment-id]",
		Short: "Show one equipment record with its schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			for _, eq := range wire.MaintenanceService().Equipment(ctx) {
				if eq.ID != args[0] {
					continue
				}
				fmt.Printf("Equipment: %s\n", eq.ID)
				fmt.Printf("Name: %s\n", eq.Name)
				fmt.Printf("Location: %s\n", eq.Location)
				fmt.Printf("Category: %s\n", eq.Category)
				fmt.Printf("Status: %s\n", eq.Status)

				if len(eq.Schedule) == 0 {
					return nil
				}
				fmt.Println()
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Task", "Month", "Year", "Type", "Status", "OS"})
				for _, t := range eq.Schedule {
					tw.AppendRow(table.Row{t.ID, t.Month, t.Year, t.Type, t.Status, t.OSNumber})
				}
				tw.Render()
				return nil
			}
			return fmt.Errorf("equipment not found: %s", args[0])
		},
	}
}

func equipmentSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [file.json]",
		Short: "Save an equipment record from a JSON file",
		Long: `Save an equipment record from a JSON file.

An existing ID is replaced in place; a new ID is appended. Every save
runs the work-order consistency check afterwards.

Examples:
  sgmi equipment save torno.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			eq, err := decodeEquipment(args[0])
			if err != nil {
				return err
			}
			if err := wire.MaintenanceService().SaveEquipment(ctx, eq); err != nil {
				return fmt.Errorf("failed to save equipment: %w", err)
			}

			fmt.Printf("✓ Saved equipment %s: %s\n", eq.ID, eq.Name)
			return nil
		},
	}
}

func equipmentReprogramCmd() *cobra.Command {
	var month string
	var year int

	cmd := &cobra.Command{
		Use:   "reprogram [equipment-id] [task-id]",
		Short: "Move a scheduled task to another month/year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.MaintenanceService().ReprogramTask(ctx, args[0], args[1], month, year); err != nil {
				return fmt.Errorf("failed to reprogram task: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Target month name")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Target year")
	cmd.MarkFlagRequired("month")
	cmd.MarkFlagRequired("year")

	return cmd
}

func decodeEquipment(path string) (eq models.Equipment, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return eq, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &eq); err != nil {
		return eq, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if eq.ID == "" {
		return eq, fmt.Errorf("%s: equipment id is required", path)
	}
	return eq, nil
}
