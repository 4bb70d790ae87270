package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/sgmi/internal/cli"
	"github.com/example/sgmi/internal/version"
)

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	configureLogging()

	rootCmd := &cobra.Command{
		Use:     "sgmi",
		Short:   "SGMI - Sistema de Gestão de Manutenção Industrial",
		Version: version.String(),
		Long: `SGMI is a CLI tool for managing industrial maintenance: equipment,
work orders, spare parts, stock movements and reliability metrics.
All data lives in a local database under the user's home directory.`,
	}

	rootCmd.AddCommand(cli.EquipmentCmd())
	rootCmd.AddCommand(cli.WorkOrderCmd())
	rootCmd.AddCommand(cli.InventoryCmd())
	rootCmd.AddCommand(cli.StockCmd())
	rootCmd.AddCommand(cli.MetricsCmd())
	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.ActivityCmd())
	rootCmd.AddCommand(cli.SyncCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogging() {
	logrus.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(os.Getenv("SGMI_LOG_LEVEL"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
}
