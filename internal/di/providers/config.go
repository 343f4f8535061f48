// Package providers contains dependency injection providers for the catalog commands.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/logger"
)

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.Logger.Level == "debug",
		Environment: cfg.App.Environment,
	})

	log.Debug("configuration loaded",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"roots", cfg.Catalog.Roots,
		"base_url", cfg.Catalog.BaseURL,
		"output_dir", cfg.Export.OutputDir,
		"id_strategy", cfg.IDs.Strategy,
	)

	return log, nil
}
