package inventory

import (
	"context"
	"fmt"
	"os"
	"strings"

	"inventory-manager/feature/inventory/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates the inventory core: normalization at the boundary,
// store access, bulk ingestion and export. The store handle is constructed
// explicitly and passed in; there is no process-wide singleton.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Store exposes the underlying record store.
func (s *Service) Store() *Store {
	return s.store
}

// AddItem normalizes the raw field values and inserts the record unless the
// name is already taken. Nothing is persisted when any field fails to parse.
func (s *Service) AddItem(ctx context.Context, name, rawPrice, rawQuantity, rawDate string, format models.DateFormat) (*models.Item, bool, error) {
	priceCents, err := ParsePrice(rawPrice)
	if err != nil {
		return nil, false, err
	}
	quantity, err := ParseQuantity(rawQuantity)
	if err != nil {
		return nil, false, err
	}
	date, err := ParseDate(rawDate, format)
	if err != nil {
		return nil, false, err
	}

	item, inserted, err := s.store.InsertIfAbsent(ctx, strings.TrimSpace(name), priceCents, quantity, date)
	if err != nil {
		return nil, false, err
	}
	if inserted {
		s.logger.Info("item added",
			zap.Int64("id", item.ID),
			zap.String("name", item.Name),
		)
	}
	return item, inserted, nil
}

// ItemByID returns a single record or models.ErrNotFound.
func (s *Service) ItemByID(ctx context.Context, id int64) (*models.Item, error) {
	return s.store.GetByID(ctx, id)
}

// Items returns all records in stable listing order.
func (s *Service) Items(ctx context.Context) ([]models.Item, error) {
	return s.store.ListAll(ctx)
}

// ItemCount returns the number of records in the store.
func (s *Service) ItemCount(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// ImportFile bulk-ingests a csv file, reading dates in the given grammar.
// Each run is tagged with an import id for log correlation.
func (s *Service) ImportFile(ctx context.Context, path string, format models.DateFormat) (models.ImportSummary, error) {
	runID := uuid.NewString()
	l := s.logger.With(zap.String("import_id", runID), zap.String("source", path))

	f, err := os.Open(path)
	if err != nil {
		return models.ImportSummary{}, fmt.Errorf("opening import source: %w", err)
	}
	defer f.Close()

	importer := NewImporter(s.store, l, format)
	summary, err := importer.Import(ctx, f)
	if err != nil {
		return summary, err
	}

	l.Info("import finished",
		zap.Int("inserted", summary.Inserted),
		zap.Int("skipped_duplicate", summary.SkippedDuplicate),
		zap.Int("skipped_malformed", summary.SkippedMalformed),
	)
	return summary, nil
}

// ExportFile writes the full catalog to a csv file and returns the row count.
func (s *Service) ExportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}

	exporter := NewExporter(s.store)
	count, err := exporter.Export(ctx, f)
	if err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing export file: %w", err)
	}

	s.logger.Info("export finished", zap.String("target", path), zap.Int("records", count))
	return count, nil
}
