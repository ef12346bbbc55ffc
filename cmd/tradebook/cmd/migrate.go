package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/internal/app"
	"github.com/rustyeddy/tradebook/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the journal into another backend",
	Long: `Copy every trade from the configured journal into a new, empty journal.
Balances are recomputed on the way in. The source must load cleanly.

Examples:
  tradebook migrate --to trades.db --to-type sqlite
  tradebook migrate -j trades.db --to export.csv --to-type csv`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

var (
	migrateTo     string
	migrateToType string
)

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination journal path (required)")
	migrateCmd.Flags().StringVar(&migrateToType, "to-type", "sqlite", "destination journal type: csv or sqlite")
	migrateCmd.MarkFlagRequired("to")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	src, err := app.OpenStore(cfg.Journal, cfg.Account.InitialBalance)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	dst, err := app.OpenStore(config.JournalConfig{Type: migrateToType, Path: migrateTo}, cfg.Account.InitialBalance)
	if err != nil {
		src.Close()
		return fmt.Errorf("open destination: %w", err)
	}

	n, err := app.Migrate(src, dst, log)
	if cerr := app.CloseAll(src, dst); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Migrated %d trade(s) from %s to %s (%s)\n", n, cfg.Journal.Path, migrateTo, migrateToType)
	return nil
}
