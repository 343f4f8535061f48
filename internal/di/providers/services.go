package providers

import (
	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/catalog"
	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/logger"
	"github.com/kctmenswear/catalog-importer/internal/scanner"
	"github.com/kctmenswear/catalog-importer/internal/service"
)

// ProvideIndexService provides the CDN index service.
func ProvideIndexService(i do.Injector) (*service.IndexService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	discoverer := do.MustInvoke[*scanner.Discoverer](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewIndexService(discoverer, cfg.Catalog, cfg.Export.OutputDir, log.Logger), nil
}

// ProvideExportService provides the catalog export service.
func ProvideExportService(i do.Injector) (*service.ExportService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	builder := do.MustInvoke[*catalog.Builder](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewExportService(builder, cfg.Export, log.Logger), nil
}
