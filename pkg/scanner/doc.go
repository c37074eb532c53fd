// Package scanner retrieves the level of every pixel in a canvas sector.
//
// The Place API only answers single-pixel queries, so a full sector scan
// means one request per pixel. The scanner fans requests out concurrently
// inside column-bounded batches and runs the batches strictly one after
// another, which is the sole admission control keeping the number of
// outstanding requests below the configured budget.
//
// Example usage:
//
//	sc, err := scanner.New(placeClient, scanner.DefaultConfig())
//	grid, err := sc.FetchFullSector(ctx, canvas.NewSector(217, 231, 259, 273))
//
// The scanner:
//   - Validates the sector against the canvas before any network call
//   - Splits the sector width into batches of ColumnsPerBatch columns
//   - Fetches every pixel of a batch concurrently, one goroutine each
//   - Scatters results into the grid by coordinate, so completion order
//     is irrelevant
//   - Logs total request count up front and progress per batch
package scanner
