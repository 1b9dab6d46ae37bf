package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Exporter streams the full catalog into a delimited sink.
type Exporter struct {
	store *Store
}

// NewExporter creates an exporter over the store.
func NewExporter(store *Store) *Exporter {
	return &Exporter{store: store}
}

// Export writes every record as one csv row in the store's listing order and
// returns the number of rows written. Columns are name, price (human decimal),
// quantity, date (MM/DD/YYYY) with no header, the same layout the importer
// expects, so an exported file re-imports losslessly.
func (e *Exporter) Export(ctx context.Context, w io.Writer) (int, error) {
	items, err := e.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	for _, item := range items {
		record := []string{
			item.Name,
			FormatPrice(item.PriceCents),
			strconv.FormatInt(item.Quantity, 10),
			FormatDate(item.Date),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("writing export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flushing export: %w", err)
	}

	return len(items), nil
}
