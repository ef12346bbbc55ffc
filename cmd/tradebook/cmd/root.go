package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/internal/app"
	"github.com/rustyeddy/tradebook/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A trade journal that finds which entry criteria win",
	Long: `Tradebook records forex trades together with the entry criteria that were
met, keeps a running account balance, and analyzes which combinations of
criteria have historically won or lost.

It provides tools for:
  - Appending trades to a CSV or SQLite journal
  - Listing and inspecting journaled trades
  - Win-rate analysis over every criteria combination
  - A small HTTP API over the same journal

Complete documentation is available at https://github.com/rustyeddy/tradebook`,
	SilenceUsage: true,
}

var (
	cfgFile     string
	journalPath string
	logLevel    string
	noColor     bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&journalPath, "journal", "j", "", "journal path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// loadConfig merges the config file, environment and command line flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if journalPath != "" {
		cfg.Journal.Path = journalPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openService loads the config and opens the journal. The returned cleanup
// closes the journal and flushes the logger.
func openService() (*app.Service, *config.Config, *zap.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("logger: %w", err)
	}

	svc, err := app.Open(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, nil, err
	}

	cleanup := func() {
		if err := svc.Close(); err != nil {
			log.Warn("close journal", zap.Error(err))
		}
		_ = log.Sync()
	}
	return svc, cfg, log, cleanup, nil
}
