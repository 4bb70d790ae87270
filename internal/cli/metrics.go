package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/config"
	"github.com/example/sgmi/internal/wire"
)

// MetricsCmd returns the metrics command
func MetricsCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "metrics [equipment-id]",
		Short: "Show reliability metrics (MTBF, MTTR, availability)",
		Long: `Show reliability metrics computed from the corrective work-order
history of one equipment item, or of the whole fleet when no ID is given.

Only executed corrective orders that stopped the machine count as
failures. MTBF needs at least two failures to be meaningful.

Examples:
  sgmi metrics EQ-01
  sgmi metrics --year 2024`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			equipmentID := ""
			if len(args) == 1 {
				equipmentID = args[0]
			}
			year = resolveMetricsYear(year, loadUserConfig(), time.Now())

			m := wire.MaintenanceService().Metrics(ctx, equipmentID, year)

			scope := "fleet"
			if equipmentID != "" {
				scope = equipmentID
			}
			fmt.Printf("Reliability %s (%d)\n", scope, year)
			fmt.Printf("Failures: %d\n", m.TotalFailures)
			fmt.Printf("Downtime: %.1f h\n", m.TotalCorrectiveHours)
			if m.MTBF != nil {
				fmt.Printf("MTBF: %.1f h\n", *m.MTBF)
			} else {
				fmt.Println("MTBF: n/a (fewer than 2 failures)")
			}
			fmt.Printf("MTTR: %.1f h\n", m.MTTR)
			fmt.Printf("Availability: %.2f%%\n", m.Availability*100)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Calendar year (defaults to default_year from the config, then the current year)")

	return cmd
}

// resolveMetricsYear picks the reporting year: explicit flag, then the
// configured default_year, then the current year.
func resolveMetricsYear(flag int, cfg *config.Config, now time.Time) int {
	if flag != 0 {
		return flag
	}
	if cfg != nil && cfg.DefaultYear != 0 {
		return cfg.DefaultYear
	}
	return now.Year()
}

func loadUserConfig() *config.Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		return nil
	}
	return cfg
}
