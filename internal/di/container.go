// Package di provides dependency injection configuration for the catalog commands.
package di

import (
	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/di/providers"
)

// NewContainer creates and configures the DI container with all providers.
// Services are built lazily on first invoke.
func NewContainer(cfg *config.Config) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, cfg)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideTables)

	// Identity
	do.Provide(injector, providers.ProvideIDAssigner)

	// Pipeline
	do.Provide(injector, providers.ProvideDiscoverer)
	do.Provide(injector, providers.ProvideBuilder)
	do.Provide(injector, providers.ProvideIndexService)
	do.Provide(injector, providers.ProvideExportService)

	// Watch mode
	do.Provide(injector, providers.ProvideFileWatcher)
	do.Provide(injector, providers.ProvideBatcher)

	return injector
}
