package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kctmenswear/catalog-importer/internal/catalog"
	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/domain"
	"github.com/kctmenswear/catalog-importer/internal/emit"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/id"
)

// Output file names written by ExportService.
const (
	SQLFile      = "import-all-products-complete.sql"
	ProductsFile = "products.json"
)

// ExportService turns CDN index documents into catalog records and writes
// them as SQL and/or product JSON.
type ExportService struct {
	builder *catalog.Builder
	cfg     config.ExportConfig
	logger  *slog.Logger
}

// ExportResult describes one export run.
type ExportResult struct {
	RunID    string
	Records  []*domain.ProductRecord
	Sections []domain.Section
	Written  []string
	Duration time.Duration
}

// NewExportService creates a new export service.
func NewExportService(builder *catalog.Builder, cfg config.ExportConfig, logger *slog.Logger) *ExportService {
	return &ExportService{
		builder: builder,
		cfg:     cfg,
		logger:  logger,
	}
}

// LoadIndexes reads and merges index documents in order. Products in an
// earlier file win over the same product in a later one.
func (s *ExportService) LoadIndexes(paths []string) (*domain.Index, error) {
	merged := domain.NewIndex("")
	for _, path := range paths {
		idx, err := readIndex(path)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("loaded index", "path", path, "products", idx.ProductCount(), "images", idx.ImageCount())
		merged.Merge(idx)
	}
	return merged, nil
}

func readIndex(path string) (*domain.Index, error) {
	f, err := os.Open(path) //#nosec G304 -- index paths come from the operator
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerrors.NotFoundf("index file %s not found", path)
		}
		return nil, domainerrors.Wrapf(err, domainerrors.CodeIO, "open index %s", path)
	}
	defer f.Close()

	idx, err := emit.ReadIndex(f)
	if err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeValidation, "decode index %s", path)
	}
	return idx, nil
}

// Export builds records from idx and writes the configured outputs.
// An empty index writes nothing.
func (s *ExportService) Export(ctx context.Context, idx *domain.Index) (*ExportResult, error) {
	start := time.Now()
	runID := id.MustGenerate("run")
	log := s.logger.With("run", runID)

	result := &ExportResult{RunID: runID}
	if idx.Empty() {
		log.Warn("index has no products, nothing written")
		result.Duration = time.Since(start)
		return result, nil
	}

	records, err := s.builder.Build(ctx, idx)
	if err != nil {
		return nil, err
	}
	result.Records = records
	result.Sections = s.builder.Sections(records)

	if s.cfg.WantsSQL() {
		path := filepath.Join(s.cfg.OutputDir, SQLFile)
		writer := emit.NewSQLWriter(emit.SQLOptions{Upsert: s.cfg.Upsert, RunID: runID, Verify: true})
		if err := emit.WriteFile(path, func(w io.Writer) error {
			return writer.Write(w, result.Sections)
		}); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, path)
	}

	if s.cfg.WantsJSON() {
		path := filepath.Join(s.cfg.OutputDir, ProductsFile)
		if err := emit.WriteFile(path, func(w io.Writer) error {
			return emit.WriteProducts(w, records)
		}); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, path)
	}

	result.Duration = time.Since(start)
	log.Info("export complete",
		"records", len(records),
		"sections", len(result.Sections),
		"files", result.Written,
		"duration", result.Duration,
	)
	return result, nil
}
