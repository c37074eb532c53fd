package scanner

import "github.com/eliegoudout/zevent-place-client/pkg/canvas"

// BatchPlan describes how a sector scan is split into sequential batches.
// A batch covers every row of the sector across a bounded range of columns,
// so its request count is Height * ColumnsPerBatch and stays within the
// concurrency budget.
type BatchPlan struct {
	// Sector is the full sector being scanned.
	Sector canvas.Sector

	// ColumnsPerBatch is the number of columns fetched per batch.
	ColumnsPerBatch int

	// NumBatches is the total number of sequential batches.
	NumBatches int

	// TotalRequests is the total pixel count of the scan.
	TotalRequests int
}

// PlanBatches computes the batch layout for a sector under a concurrency
// budget. Columns per batch is budget / height; when the sector is taller
// than the budget that division reaches zero, and the plan degrades to
// single-column batches instead. In that degenerate case a batch exceeds the
// budget by necessity (a column is the smallest schedulable unit).
func PlanBatches(sector canvas.Sector, maxConcurrentRequests int) BatchPlan {
	height := sector.Height()
	width := sector.Width()

	columnsPerBatch := 0
	if height > 0 {
		columnsPerBatch = maxConcurrentRequests / height
	}
	if columnsPerBatch < 1 {
		columnsPerBatch = 1
	}

	numBatches := 0
	if width > 0 {
		numBatches = (width + columnsPerBatch - 1) / columnsPerBatch
	}

	return BatchPlan{
		Sector:          sector,
		ColumnsPerBatch: columnsPerBatch,
		NumBatches:      numBatches,
		TotalRequests:   sector.Size(),
	}
}

// Batch returns the sub-sector covered by batch index i (0-based). The last
// batch may span fewer columns than ColumnsPerBatch.
func (p BatchPlan) Batch(i int) canvas.Sector {
	return p.Sector.ColumnSlice(i*p.ColumnsPerBatch, p.ColumnsPerBatch)
}
