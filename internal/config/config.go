// =============================================================================
// SpendLens - Configuration Module
// =============================================================================
//
// Configuration is layered, lowest precedence first:
//   1. Built-in defaults
//   2. The YAML config file (config.yaml by default, optional)
//   3. Environment variables (a local .env file is honored if present)
//
// There is no hidden process-wide path state: loaders always receive their
// input paths explicitly, either from this config or from command flags.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// OrdersPath is the default order-history export to load (.csv or .xlsx).
	OrdersPath string `yaml:"orders_path"`

	// RefundsPath is the default refunds export; the interactive session can
	// also prompt for a path at runtime.
	RefundsPath string `yaml:"refunds_path"`

	// ReportsDir is where exported XLSX reports are written.
	ReportsDir string `yaml:"reports_dir"`

	// ReportNameFormat names exported report files. Placeholders:
	//   {year}      - the reported year
	//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - a random UUID
	ReportNameFormat string `yaml:"report_name_format"`

	// CurrencySymbol prefixes formatted amounts. The tool does no currency
	// conversion; this is presentation only.
	CurrencySymbol string `yaml:"currency_symbol"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the slog handler: "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// Load reads the configuration file at path, applies defaults and
// environment overrides, and validates the result.
//
// A missing config file is not an error: the defaults plus environment are
// enough to run when paths are given on the command line.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fall through to defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = "./reports"
	}
	if cfg.ReportNameFormat == "" {
		cfg.ReportNameFormat = "spend_{year}_{timestamp}_{uuid}.xlsx"
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "$"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}

// applyEnvOverrides lets the environment win over the config file. A .env
// file in the working directory is loaded first; its absence is fine.
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SPENDLENS_ORDERS_PATH"); v != "" {
		cfg.OrdersPath = v
	}
	if v := os.Getenv("SPENDLENS_REFUNDS_PATH"); v != "" {
		cfg.RefundsPath = v
	}
	if v := os.Getenv("SPENDLENS_REPORTS_DIR"); v != "" {
		cfg.ReportsDir = v
	}
	if v := os.Getenv("SPENDLENS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// validate rejects configurations the rest of the program cannot act on.
func validate(cfg *Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", cfg.LogLevel)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be text or json", cfg.LogFormat)
	}

	if !strings.Contains(cfg.ReportNameFormat, "{") {
		// A fully static name would overwrite the previous report on every
		// export; require at least one placeholder.
		return fmt.Errorf("report_name_format %q contains no placeholders", cfg.ReportNameFormat)
	}

	return nil
}
