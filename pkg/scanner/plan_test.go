package scanner

import (
	"testing"

	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
)

func TestPlanBatches(t *testing.T) {
	tests := []struct {
		name        string
		sector      canvas.Sector
		budget      int
		wantColumns int
		wantBatches int
		wantTotal   int
	}{
		{
			name:        "budget spans whole sector",
			sector:      canvas.NewSector(0, 0, 10, 10),
			budget:      10000,
			wantColumns: 1000, // clipped by width at batch construction
			wantBatches: 1,
			wantTotal:   100,
		},
		{
			name:        "even split",
			sector:      canvas.NewSector(0, 0, 100, 40), // height 100, width 40
			budget:      1000,
			wantColumns: 10,
			wantBatches: 4,
			wantTotal:   4000,
		},
		{
			name:        "remainder batch",
			sector:      canvas.NewSector(0, 0, 100, 45), // width 45, 10 cols per batch
			budget:      1000,
			wantColumns: 10,
			wantBatches: 5,
			wantTotal:   4500,
		},
		{
			name:        "height exceeds budget degrades to single columns",
			sector:      canvas.NewSector(0, 0, 700, 3),
			budget:      500,
			wantColumns: 1,
			wantBatches: 3,
			wantTotal:   2100,
		},
		{
			name:        "empty sector",
			sector:      canvas.NewSector(5, 5, 5, 5),
			budget:      100,
			wantColumns: 1,
			wantBatches: 0,
			wantTotal:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanBatches(tt.sector, tt.budget)

			if plan.ColumnsPerBatch != tt.wantColumns {
				t.Errorf("ColumnsPerBatch = %d, want %d", plan.ColumnsPerBatch, tt.wantColumns)
			}
			if plan.NumBatches != tt.wantBatches {
				t.Errorf("NumBatches = %d, want %d", plan.NumBatches, tt.wantBatches)
			}
			if plan.TotalRequests != tt.wantTotal {
				t.Errorf("TotalRequests = %d, want %d", plan.TotalRequests, tt.wantTotal)
			}
		})
	}
}

func TestPlanBatchesCoverageAndBudget(t *testing.T) {
	// Batches must tile the sector's columns exactly, in order, and stay
	// within the budget except in the forced single-column case.
	sector := canvas.NewSector(0, 10, 60, 117) // height 60, width 107
	budget := 1000
	plan := PlanBatches(sector, budget)

	wantBatches := (sector.Width() + plan.ColumnsPerBatch - 1) / plan.ColumnsPerBatch
	if plan.NumBatches != wantBatches {
		t.Fatalf("NumBatches = %d, want ceil(W/k) = %d", plan.NumBatches, wantBatches)
	}

	nextY := sector.Y1
	for i := 0; i < plan.NumBatches; i++ {
		batch := plan.Batch(i)

		if batch.Y1 != nextY {
			t.Errorf("batch %d starts at column %d, want %d", i, batch.Y1, nextY)
		}
		if batch.X1 != sector.X1 || batch.X2 != sector.X2 {
			t.Errorf("batch %d rows = [%d,%d), want [%d,%d)", i, batch.X1, batch.X2, sector.X1, sector.X2)
		}
		if batch.Size() > budget {
			t.Errorf("batch %d has %d requests, exceeds budget %d", i, batch.Size(), budget)
		}
		nextY = batch.Y2
	}
	if nextY != sector.Y2 {
		t.Errorf("batches end at column %d, want %d", nextY, sector.Y2)
	}
}

func TestPlanBatchesLastBatchRemainder(t *testing.T) {
	sector := canvas.NewSector(0, 0, 10, 25) // width 25
	plan := PlanBatches(sector, 100)         // 10 columns per batch

	if plan.NumBatches != 3 {
		t.Fatalf("NumBatches = %d, want 3", plan.NumBatches)
	}
	last := plan.Batch(2)
	if last.Width() != 5 {
		t.Errorf("last batch width = %d, want remainder 5", last.Width())
	}
}
