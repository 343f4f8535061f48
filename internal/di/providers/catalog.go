package providers

import (
	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/catalog"
	"github.com/kctmenswear/catalog-importer/internal/config"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/id"
	"github.com/kctmenswear/catalog-importer/internal/ledger"
	"github.com/kctmenswear/catalog-importer/internal/logger"
	"github.com/kctmenswear/catalog-importer/internal/scanner"
	"github.com/kctmenswear/catalog-importer/internal/tables"
)

// ProvideTables provides the lookup tables, from TABLES_PATH when set.
func ProvideTables(i do.Injector) (*tables.Tables, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	t, err := tables.Load(cfg.Catalog.TablesPath)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.TablesPath != "" {
		log.Info("loaded tables", "path", cfg.Catalog.TablesPath, "categories", len(t.CategoryFolders()))
	}
	return t, nil
}

// IDAssignerHandle wraps the configured id strategy with shutdown capability.
type IDAssignerHandle struct {
	id.Assigner
	ledger *ledger.Ledger
}

// Shutdown implements do.Shutdownable.
func (h *IDAssignerHandle) Shutdown() error {
	if h.ledger == nil {
		return nil
	}
	return h.ledger.Close()
}

// ProvideIDAssigner provides the product id strategy selected by ID_STRATEGY.
func ProvideIDAssigner(i do.Injector) (*IDAssignerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	switch cfg.IDs.Strategy {
	case id.StrategyStable:
		return &IDAssignerHandle{Assigner: id.Stable{}}, nil
	case id.StrategyRandom:
		log.Warn("random ids change on every run; re-imports will duplicate products")
		return &IDAssignerHandle{Assigner: id.Random{}}, nil
	case id.StrategyLedger:
		l, err := ledger.Open(cfg.IDs.LedgerPath, id.Stable{}, log.Logger)
		if err != nil {
			return nil, err
		}
		log.Info("id ledger opened", "path", cfg.IDs.LedgerPath)
		return &IDAssignerHandle{Assigner: l, ledger: l}, nil
	default:
		return nil, domainerrors.Validationf("unknown id strategy %q", cfg.IDs.Strategy)
	}
}

// ProvideDiscoverer provides the image discoverer.
func ProvideDiscoverer(i do.Injector) (*scanner.Discoverer, error) {
	t := do.MustInvoke[*tables.Tables](i)
	log := do.MustInvoke[*logger.Logger](i)

	return scanner.NewDiscoverer(t, log.Logger), nil
}

// ProvideBuilder provides the catalog record builder.
func ProvideBuilder(i do.Injector) (*catalog.Builder, error) {
	t := do.MustInvoke[*tables.Tables](i)
	ids := do.MustInvoke[*IDAssignerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return catalog.NewBuilder(t, ids.Assigner, log.Logger), nil
}
