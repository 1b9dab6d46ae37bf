package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
)

// Importer streams delimited rows into the store, normalizing each field at
// the boundary and deduplicating through Store.InsertIfAbsent.
type Importer struct {
	store  *Store
	logger *zap.Logger
	format models.DateFormat
}

// NewImporter creates an importer reading dates in the given grammar.
func NewImporter(store *Store, logger *zap.Logger, format models.DateFormat) *Importer {
	return &Importer{store: store, logger: logger, format: format}
}

// Import reads csv rows (name, price, quantity, date; no header) from r and
// inserts each well-formed row whose name is not yet in the store.
//
// A malformed row is tallied and skipped; it never aborts the run. A storage
// failure aborts immediately and propagates, with rows already inserted kept.
// Re-running Import on an unchanged source is idempotent: every row comes back
// as a duplicate and the summary's Inserted count is zero.
func (imp *Importer) Import(ctx context.Context, r io.Reader) (models.ImportSummary, error) {
	var summary models.ImportSummary

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	line := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			// Quoting defects are row-level damage, same as a bad field.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				summary.SkippedMalformed++
				imp.logger.Debug("skipping unreadable row", zap.Int("line", line), zap.Error(err))
				continue
			}
			return summary, fmt.Errorf("reading import source: %w", err)
		}

		item, err := imp.normalizeRow(row)
		if err != nil {
			summary.SkippedMalformed++
			imp.logger.Debug("skipping malformed row", zap.Int("line", line), zap.Error(err))
			continue
		}

		_, inserted, err := imp.store.InsertIfAbsent(ctx, item.Name, item.PriceCents, item.Quantity, item.Date)
		if err != nil {
			return summary, fmt.Errorf("row %d: %w", line, err)
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.SkippedDuplicate++
		}
	}

	return summary, nil
}

// normalizeRow converts one raw row into a typed item. Raw text does not
// travel past this point.
func (imp *Importer) normalizeRow(row []string) (*models.Item, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("expected 4 columns, got %d", len(row))
	}

	name := strings.TrimSpace(row[0])
	if name == "" {
		return nil, models.ErrEmptyName
	}

	priceCents, err := ParsePrice(row[1])
	if err != nil {
		return nil, err
	}

	quantity, err := ParseQuantity(row[2])
	if err != nil {
		return nil, err
	}

	date, err := ParseDate(row[3], imp.format)
	if err != nil {
		return nil, err
	}

	return &models.Item{
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
		Date:       date,
	}, nil
}
