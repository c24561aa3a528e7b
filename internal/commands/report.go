package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/boaparser/internal/config"
	"github.com/cleared-dev/boaparser/internal/importer"
	"github.com/cleared-dev/boaparser/internal/report"
)

type reportFlags struct {
	configPath    string
	path          string
	withdrawals   bool
	deposits      bool
	hideTransfers bool
	json          bool
	verbose       bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", config.FileName, "config file")
	fl.StringVar(&f.path, "path", "stmt.txt", "path to statement txt file")
	fl.BoolVar(&f.withdrawals, "withdrawals", false, "show withdrawals")
	fl.BoolVar(&f.deposits, "deposits", false, "show deposits")
	fl.BoolVar(&f.hideTransfers, "hide_transfers", false, "exclude online banking transfers")
	fl.BoolVar(&f.json, "json", false, "print all transactions as JSON")
	fl.BoolVar(&f.verbose, "verbose", false, "enable debug logging")
}

func runReport(cmd *cobra.Command, f reportFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)

	cfg, err := loadConfig(cmd, f.configPath, logger)
	if err != nil {
		return err
	}
	f.apply(cmd, cfg)

	txns, stats, err := importer.ReadFile(cfg.Statement.Path)
	if err != nil {
		return err
	}
	logger.Debug("extracted statement",
		"path", cfg.Statement.Path,
		"lines", stats.Lines,
		"transactions", stats.Parsed,
		"skipped", stats.Skipped,
	)

	opts := cfg.Report.Options()
	for _, g := range report.Groups(txns, opts) {
		logger.Debug("selected group", "group", g.Name, "count", len(g.Transactions), "hide_transfers", opts.HideTransfers)
	}

	if err := report.Run(cmd.OutOrStdout(), txns, opts); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// loadConfig reads the config file. The default file is optional; a file
// named explicitly with --config must exist.
func loadConfig(cmd *cobra.Command, path string, logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		logger.Debug("loaded config", "path", path)
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return nil, err
}

// apply overrides cfg with every flag given on the command line.
func (f *reportFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("path") {
		cfg.Statement.Path = f.path
	}
	if changed("withdrawals") {
		cfg.Report.Withdrawals = f.withdrawals
	}
	if changed("deposits") {
		cfg.Report.Deposits = f.deposits
	}
	if changed("hide_transfers") {
		cfg.Report.HideTransfers = f.hideTransfers
	}
	if changed("json") {
		cfg.Report.JSON = f.json
	}
}
