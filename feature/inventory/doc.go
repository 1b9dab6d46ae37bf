// Package inventory implements the catalog core: normalization, the record
// store, bulk ingestion and export.
//
// Raw text is parsed into canonical typed values at the boundary (ParsePrice,
// ParseDate, ParseQuantity); every interface past that point carries only
// typed values. Prices are integer minor currency units (cents), dates are
// calendar dates at UTC midnight.
//
// # Components
//
//   - Store: the durable record collection. InsertIfAbsent relies on the
//     unique index on name as the authoritative deduplication, never on a
//     prior read.
//   - Importer: streams csv rows through the normalizer into the store,
//     tallying malformed and duplicate rows without aborting the run.
//   - Exporter: streams the catalog back out in the store's listing order,
//     in a layout the Importer can re-read losslessly.
//   - Service: wires the above together for the command surface.
//   - Handler: read-only HTTP endpoints (list, get by id).
package inventory
