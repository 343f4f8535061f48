// Package config provides configuration for the catalog commands with support for
// command-line flags, environment variables and .env files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/validation"
)

// Export formats.
const (
	FormatSQL  = "sql"
	FormatJSON = "json"
	FormatBoth = "both"
)

// DefaultBaseURL is the public CDN host images are served from.
const DefaultBaseURL = "https://cdn.kctmenswear.com"

// ErrHelp is returned when -h or -help was requested.
var ErrHelp = flag.ErrHelp

// Config holds the configuration shared by all commands.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Catalog CatalogConfig
	Export  ExportConfig
	IDs     IDConfig
	Watch   WatchConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `env:"ENV" validate:"oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// CatalogConfig describes where images live and how they are published.
type CatalogConfig struct {
	// Roots are scanned in order and merged into one index.
	Roots      []string `env:"CATALOG_ROOT" validate:"min=1,dive,required"`
	BaseURL    string   `env:"CDN_BASE_URL" validate:"required,url"`
	TablesPath string   `env:"TABLES_PATH"`
}

// ExportConfig controls what the exporter reads and writes.
type ExportConfig struct {
	OutputDir  string   `env:"OUTPUT_DIR" validate:"required"`
	IndexFiles []string `env:"INDEX_FILES" validate:"dive,required"`
	Format     string   `env:"EXPORT_FORMAT" validate:"oneof=sql json both"`
	Upsert     bool     `env:"SQL_UPSERT"`
}

// IDConfig selects how product ids are assigned.
type IDConfig struct {
	Strategy   string `env:"ID_STRATEGY" validate:"oneof=stable random ledger"`
	LedgerPath string `env:"LEDGER_PATH" validate:"required_if=Strategy ledger"`
}

// WatchConfig controls filesystem watch mode.
type WatchConfig struct {
	Enabled     bool          `env:"WATCH"`
	SettleDelay time.Duration `env:"WATCH_SETTLE_DELAY" validate:"gte=0"`
}

// WantsSQL reports whether SQL output is requested.
func (c ExportConfig) WantsSQL() bool {
	return c.Format == FormatSQL || c.Format == FormatBoth
}

// WantsJSON reports whether product JSON output is requested.
func (c ExportConfig) WantsJSON() bool {
	return c.Format == FormatJSON || c.Format == FormatBoth
}

// Load builds the configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
//
// name is the command name used in usage output; args excludes the program name.
func Load(name string, args []string, usage io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if usage != nil {
		fs.SetOutput(usage)
	}

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	roots := fs.String("root", "", "Comma-separated catalog image roots")
	baseURL := fs.String("base-url", "", "CDN base URL (default: "+DefaultBaseURL+")")
	tablesPath := fs.String("tables", "", "Path to a YAML tables file overriding the built-in tables")
	outputDir := fs.String("out", "", "Output directory (default: .)")
	indexFiles := fs.String("index", "", "Comma-separated CDN index JSON files to export")
	format := fs.String("format", "", "Export format: sql, json or both (default: sql)")
	upsert := fs.String("upsert", "", "Emit ON CONFLICT upserts (default: false)")
	idStrategy := fs.String("ids", "", "Id strategy: stable, random or ledger (default: stable)")
	ledgerPath := fs.String("ledger", "", "Path to the sqlite id ledger")
	watch := fs.String("watch", "", "Re-run on filesystem changes (default: false)")
	settle := fs.String("settle", "", "Quiet period before a watched change is processed (default: 2s)")
	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid arguments")
	}

	// Load .env file if it exists. Variables already in the environment win.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeValidation, "parse env file %s", *envFile)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getConfigValue(*logLevel, "LOG_LEVEL", "info")),
		},
		Catalog: CatalogConfig{
			Roots:      splitList(getConfigValue(*roots, "CATALOG_ROOT", ".")),
			BaseURL:    strings.TrimRight(getConfigValue(*baseURL, "CDN_BASE_URL", DefaultBaseURL), "/"),
			TablesPath: getConfigValue(*tablesPath, "TABLES_PATH", ""),
		},
		Export: ExportConfig{
			OutputDir:  getConfigValue(*outputDir, "OUTPUT_DIR", "."),
			IndexFiles: splitList(getConfigValue(*indexFiles, "INDEX_FILES", "")),
			Format:     strings.ToLower(getConfigValue(*format, "EXPORT_FORMAT", FormatSQL)),
		},
		IDs: IDConfig{
			Strategy:   strings.ToLower(getConfigValue(*idStrategy, "ID_STRATEGY", "stable")),
			LedgerPath: getConfigValue(*ledgerPath, "LEDGER_PATH", ""),
		},
	}

	var err error
	if cfg.Export.Upsert, err = getBoolConfigValue(*upsert, "SQL_UPSERT", false); err != nil {
		return nil, err
	}
	if cfg.Watch.Enabled, err = getBoolConfigValue(*watch, "WATCH", false); err != nil {
		return nil, err
	}

	settleStr := getConfigValue(*settle, "WATCH_SETTLE_DELAY", "2s")
	cfg.Watch.SettleDelay, err = time.ParseDuration(settleStr)
	if err != nil {
		return nil, domainerrors.Validationf("invalid settle delay %q", settleStr)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	return validation.New().Validate(c)
}

// expandPaths expands ~ and makes every configured path absolute.
func (c *Config) expandPaths() error {
	for i, root := range c.Catalog.Roots {
		expanded, err := expandPath(root)
		if err != nil {
			return err
		}
		c.Catalog.Roots[i] = expanded
	}
	for i, file := range c.Export.IndexFiles {
		expanded, err := expandPath(file)
		if err != nil {
			return err
		}
		c.Export.IndexFiles[i] = expanded
	}

	var err error
	if c.Export.OutputDir, err = expandPath(c.Export.OutputDir); err != nil {
		return err
	}
	if c.Catalog.TablesPath, err = expandPath(c.Catalog.TablesPath); err != nil {
		return err
	}
	if c.IDs.LedgerPath, err = expandPath(c.IDs.LedgerPath); err != nil {
		return err
	}
	return nil
}

// expandPath expands ~ and makes the path absolute. Empty paths stay empty.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts the strconv.ParseBool forms plus yes/no.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) (bool, error) {
	strValue := strings.ToLower(getConfigValue(flagValue, envKey, ""))
	switch strValue {
	case "":
		return defaultValue, nil
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	v, err := strconv.ParseBool(strValue)
	if err != nil {
		return false, domainerrors.Validationf("invalid boolean %q for %s", strValue, envKey)
	}
	return v, nil
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
