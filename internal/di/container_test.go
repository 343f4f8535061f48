package di

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kctmenswear/catalog-importer/internal/catalog"
	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/di/providers"
	"github.com/kctmenswear/catalog-importer/internal/id"
	"github.com/kctmenswear/catalog-importer/internal/ledger"
	"github.com/kctmenswear/catalog-importer/internal/service"
	"github.com/kctmenswear/catalog-importer/internal/tables"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		App:     config.AppConfig{Environment: "development"},
		Logger:  config.LoggerConfig{Level: "error"},
		Catalog: config.CatalogConfig{Roots: []string{dir}, BaseURL: config.DefaultBaseURL},
		Export:  config.ExportConfig{OutputDir: filepath.Join(dir, "out"), Format: config.FormatSQL},
		IDs:     config.IDConfig{Strategy: id.StrategyStable},
		Watch:   config.WatchConfig{SettleDelay: 10 * time.Millisecond},
	}
}

func TestNewContainer_ResolvesServices(t *testing.T) {
	injector := NewContainer(testConfig(t))
	defer injector.Shutdown() //nolint:errcheck // Test cleanup

	assert.NotNil(t, do.MustInvoke[*tables.Tables](injector))
	assert.NotNil(t, do.MustInvoke[*catalog.Builder](injector))
	assert.NotNil(t, do.MustInvoke[*service.IndexService](injector))
	assert.NotNil(t, do.MustInvoke[*service.ExportService](injector))

	handle := do.MustInvoke[*providers.IDAssignerHandle](injector)
	assert.IsType(t, id.Stable{}, handle.Assigner)
}

func TestNewContainer_LedgerStrategy(t *testing.T) {
	cfg := testConfig(t)
	cfg.IDs.Strategy = id.StrategyLedger
	cfg.IDs.LedgerPath = filepath.Join(t.TempDir(), "ids.db")

	injector := NewContainer(cfg)

	handle := do.MustInvoke[*providers.IDAssignerHandle](injector)
	require.IsType(t, &ledger.Ledger{}, handle.Assigner)

	got, err := handle.Assign(context.Background(), "suits/classic-navy-suit")
	require.NoError(t, err)
	assert.Equal(t, id.StableFor("suits/classic-navy-suit"), got)

	assert.NoError(t, handle.Shutdown())
}

func TestNewContainer_BadTablesPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.TablesPath = filepath.Join(t.TempDir(), "missing.yaml")

	injector := NewContainer(cfg)

	_, err := do.Invoke[*catalog.Builder](injector)
	assert.Error(t, err)
}

func TestNewContainer_FileWatcher(t *testing.T) {
	injector := NewContainer(testConfig(t))

	handle := do.MustInvoke[*providers.FileWatcherHandle](injector)
	require.NotNil(t, handle)
	assert.NotNil(t, do.MustInvoke[*providers.FileWatcherHandle](injector).Events())

	assert.NoError(t, handle.Shutdown())
}
