package inventory_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExport(t *testing.T) {
	store := setupStore(t, "export_basic")
	ctx := context.Background()

	imp := inventory.NewImporter(store, zap.NewNop(), models.DateFormatSlashMDY)
	_, err := imp.Import(ctx, strings.NewReader(wellFormedSource))
	require.NoError(t, err)

	var buf bytes.Buffer
	count, err := inventory.NewExporter(store).Export(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	want := "Fruitloops,5.00,8,01/01/2022\n" +
		"Milk,3.50,2,01/15/2022\n" +
		"Bread,2.25,12,02/01/2022\n"
	assert.Equal(t, want, buf.String())
}

func TestExport_Empty(t *testing.T) {
	store := setupStore(t, "export_empty")

	var buf bytes.Buffer
	count, err := inventory.NewExporter(store).Export(context.Background(), &buf)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, buf.String())
}

// Exported output feeds back through the importer without price or date drift.
func TestExport_RoundTrip(t *testing.T) {
	source := setupStore(t, "roundtrip_source")
	ctx := context.Background()

	_, _, err := source.InsertIfAbsent(ctx, "Fruitloops", 1234, 8, testDate())
	require.NoError(t, err)
	_, _, err = source.InsertIfAbsent(ctx, "Television", 129999, 1, testDate())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = inventory.NewExporter(source).Export(ctx, &buf)
	require.NoError(t, err)

	// Fresh store: everything re-imports with identical values.
	replica := setupStore(t, "roundtrip_replica")
	imp := inventory.NewImporter(replica, zap.NewNop(), models.DateFormatSlashMDY)
	summary, err := imp.Import(ctx, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, models.ImportSummary{Inserted: 2}, summary)

	originals, err := source.ListAll(ctx)
	require.NoError(t, err)
	replicas, err := replica.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, replicas, len(originals))
	for i := range originals {
		assert.Equal(t, originals[i].Name, replicas[i].Name)
		assert.Equal(t, originals[i].PriceCents, replicas[i].PriceCents)
		assert.Equal(t, originals[i].Quantity, replicas[i].Quantity)
		assert.True(t, originals[i].Date.Equal(replicas[i].Date))
	}

	// Same store: every row dedupes, nothing changes.
	again, err := imp.Import(ctx, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, models.ImportSummary{SkippedDuplicate: 2}, again)
}
