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

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage reference data",
		Long:  `Maintainer and requester rosters, equipment types, plan templates and the standard checklist entries.`,
	}

	cmd.AddCommand(catalogMaintainerCmd())
	cmd.AddCommand(catalogRequesterCmd())
	cmd.AddCommand(catalogTypeCmd())
	cmd.AddCommand(catalogPlanCmd())
	cmd.AddCommand(catalogStandardsCmd())

	return cmd
}

func catalogMaintainerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintainer",
		Short: "Manage the maintainer roster",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List maintainers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range wire.CatalogService().Maintainers(context.Background()) {
				fmt.Println(name)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Add a maintainer (duplicates are ignored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.CatalogService().AddMaintainer(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to add maintainer: %w", err)
			}
			fmt.Printf("✓ Added maintainer %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func catalogRequesterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requester",
		Short: "Manage the requester roster",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List requesters",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range wire.CatalogService().Requesters(context.Background()) {
				fmt.Println(name)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Add a requester (duplicates are ignored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.CatalogService().AddRequester(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to add requester: %w", err)
			}
			fmt.Printf("✓ Added requester %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func catalogTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Manage equipment types",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List equipment types",
		RunE: func(cmd *cobra.Command, args []string) error {
			types := wire.CatalogService().EquipmentTypes(context.Background())
			if len(types) == 0 {
				fmt.Println("No equipment types found.")
				return nil
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Description"})
			for _, et := range types {
				tw.AppendRow(table.Row{et.ID, et.Description})
			}
			tw.Render()
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "save [file.json]",
		Short: "Save an equipment type from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var et models.EquipmentType
			if err := decodeJSONFile(args[0], &et); err != nil {
				return err
			}
			if et.ID == "" {
				return fmt.Errorf("%s: type id is required", args[0])
			}
			if err := wire.CatalogService().SaveEquipmentType(context.Background(), et); err != nil {
				return fmt.Errorf("failed to save equipment type: %w", err)
			}
			fmt.Printf("✓ Saved equipment type %s\n", et.ID)
			return nil
		},
	})

	return cmd
}

func catalogPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage maintenance plan templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plan templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := wire.CatalogService().Plans(context.Background())
			if len(plans) == 0 {
				fmt.Println("No plans found.")
				return nil
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Description", "Type", "Targets"})
			for _, p := range plans {
				tw.AppendRow(table.Row{p.ID, p.Description, p.EquipmentTypeID, len(p.TargetEquipmentIDs)})
			}
			tw.Render()
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "save [file.json]",
		Short: "Save a plan template from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan models.MaintenancePlan
			if err := decodeJSONFile(args[0], &plan); err != nil {
				return err
			}
			if plan.ID == "" {
				return fmt.Errorf("%s: plan id is required", args[0])
			}
			if err := wire.CatalogService().SavePlan(context.Background(), plan); err != nil {
				return fmt.Errorf("failed to save plan: %w", err)
			}
			fmt.Printf("✓ Saved plan %s\n", plan.ID)
			return nil
		},
	})

	return cmd
}

func catalogStandardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standards",
		Short: "Show the standard checklist actions and materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fmt.Println("Actions:")
			for _, a := range wire.CatalogService().StandardTasks(ctx) {
				fmt.Printf("  %s\n", a)
			}
			fmt.Println("Materials:")
			for _, m := range wire.CatalogService().StandardMaterials(ctx) {
				fmt.Printf("  %s\n", m)
			}
			return nil
		},
	}
}

func decodeJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
