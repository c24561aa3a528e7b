package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/boaparser/internal/report"
)

// FileName is the config file looked up in the working directory.
const FileName = "boaparser.yaml"

// Config represents the top-level boaparser.yaml configuration.
type Config struct {
	Statement StatementConfig `yaml:"statement"`
	Report    ReportConfig    `yaml:"report"`
}

// StatementConfig locates the statement export.
type StatementConfig struct {
	Path string `yaml:"path"`
}

// ReportConfig holds the default report selection. Command-line flags win.
type ReportConfig struct {
	Withdrawals   bool `yaml:"withdrawals"`
	Deposits      bool `yaml:"deposits"`
	HideTransfers bool `yaml:"hide_transfers"`
	JSON          bool `yaml:"json"`
}

// Options converts the report section into report.Options.
func (r ReportConfig) Options() report.Options {
	return report.Options{
		ShowWithdrawals: r.Withdrawals,
		ShowDeposits:    r.Deposits,
		HideTransfers:   r.HideTransfers,
		EmitJSON:        r.JSON,
	}
}

// Load reads a boaparser.yaml file from disk. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Statement: StatementConfig{
			Path: "stmt.txt",
		},
	}
}
