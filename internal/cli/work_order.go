package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/primary"
	"github.com/example/sgmi/internal/wire"
)

// WorkOrderCmd returns the order command
func WorkOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order",
		Aliases: []string{"os"},
		Short:   "Manage work orders",
		Long:    `List, inspect and save work orders, and open quick corrective orders for unplanned failures.`,
	}

	cmd.AddCommand(orderListCmd())
	cmd.AddCommand(orderShowCmd())
	cmd.AddCommand(orderSaveCmd())
	cmd.AddCommand(orderQuickCmd())
	cmd.AddCommand(orderNextIDCmd())

	return cmd
}

func orderListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work orders, most recently touched first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orders := wire.MaintenanceService().WorkOrders(ctx)
			if status != "" {
				filtered := orders[:0:0]
				for _, o := range orders {
					if string(o.Status) == status {
						filtered = append(filtered, o)
					}
				}
				orders = filtered
			}
			if len(orders) == 0 {
				fmt.Println("No work orders found.")
				fmt.Println()
				fmt.Println("Open one for an unplanned failure:")
				fmt.Println("  sgmi order quick --equipment EQ-01 --description \"vazamento de óleo\"")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Equipment", "Type", "Status", "Scheduled", "End", "Stopped"})
			for _, o := range orders {
				stopped := ""
				if o.MachineStopped {
					stopped = "sim"
				}
				tw.AppendRow(table.Row{o.ID, o.EquipmentID, o.Type, o.Status, o.ScheduledDate, o.EndDate, stopped})
			}
			tw.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status label (e.g. Programado, Executado)")

	return cmd
}

func orderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [order-id]",
		Short: "Show one work order as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			for _, o := range wire.MaintenanceService().WorkOrders(ctx) {
				if o.ID != args[0] {
					continue
				}
				data, err := json.MarshalIndent(o, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to render order: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}
			return fmt.Errorf("work order not found: %s", args[0])
		},
	}
}

func orderSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [file.json]",
		Short: "Save a work order from a JSON file",
		Long: `Save a work order from a JSON file.

An existing ID is replaced in place; a new ID is inserted at the front
of the collection so listings read newest first.

Examples:
  sgmi order save os-0042.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			var order models.WorkOrder
			if err := json.Unmarshal(data, &order); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			if order.ID == "" {
				return fmt.Errorf("%s: order id is required", args[0])
			}

			if err := wire.MaintenanceService().SaveWorkOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save work order: %w", err)
			}
			return nil
		},
	}
}

func orderQuickCmd() *cobra.Command {
	var req primary.QuickCorrectiveRequest
	var priority, category string

	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Open a quick corrective order for an unplanned failure",
		Long: `Open a quick corrective order for an unplanned failure.

The order ID is generated unless --id is given. Priority Alta marks the
machine as stopped and flags the order as delayed.

Examples:
  sgmi order quick --equipment EQ-01 --description "vazamento de óleo"
  sgmi order quick --equipment EQ-02 --description "ruído no mancal" --priority Alta --category Mecânica`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req.Priority = models.Priority(priority)
			req.Category = models.CorrectiveCategory(category)
			order, err := wire.MaintenanceService().CreateQuickCorrective(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to open corrective order: %w", err)
			}

			fmt.Printf("✓ Opened corrective order %s for %s\n", order.ID, order.EquipmentID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.EquipmentID, "equipment", "e", "", "Equipment ID (required)")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Failure description (required)")
	cmd.Flags().StringVarP(&req.Requester, "requester", "r", "", "Who reported the failure")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(models.PriorityMedium), "Priority (Alta, Média, Baixa)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Failure category (Mecânica, Elétrica, ...)")
	cmd.Flags().StringVar(&req.FailureDateTime, "failure-time", "", "Failure timestamp (defaults to now)")
	cmd.Flags().StringVar(&req.OrderID, "id", "", "Explicit order ID (generated when omitted)")
	cmd.MarkFlagRequired("equipment")
	cmd.MarkFlagRequired("description")

	return cmd
}

func orderNextIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "Preview the next work-order identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(wire.MaintenanceService().NextOrderID(context.Background()))
			return nil
		},
	}
}
