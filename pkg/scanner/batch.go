package scanner

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
)

// Prometheus metrics for batch scanning.
var (
	placeBatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "place_batches_total",
		Help: "Total completed scan batches",
	})

	placePixelsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "place_pixels_fetched_total",
		Help: "Total pixels fetched and placed into a grid",
	})

	placeAssemblyAnomaliesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "place_assembly_anomalies_total",
		Help: "Total fetch results that did not map into the expected grid",
	})
)

// pixelResult is the outcome of fetching one pixel.
type pixelResult struct {
	Coord canvas.Coordinate
	Level int
	Err   error
}

// FetchSector fetches every pixel of a sector concurrently and assembles the
// results into a grid.
//
// The sector must be small enough for the concurrency budget; this is the
// batch coordinator FetchFullSector iterates over. One goroutine is started
// per coordinate, all sharing the client's pooled connections. The call does
// not return until every pixel has a level: with the default unbounded retry
// policy the only early exit is context cancellation.
func (s *Scanner) FetchSector(ctx context.Context, sector canvas.Sector) (*canvas.Grid, error) {
	grid := canvas.NewGrid(sector)
	coords := sector.Coordinates()
	if len(coords) == 0 {
		return grid, nil
	}

	results := make(chan pixelResult, len(coords))

	var wg sync.WaitGroup
	for _, coord := range coords {
		wg.Add(1)
		go func(coord canvas.Coordinate) {
			defer wg.Done()
			level, err := s.fetcher.FetchPixelLevel(ctx, coord)
			results <- pixelResult{Coord: coord, Level: level, Err: err}
		}(coord)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	fetched := 0
	for result := range results {
		if result.Err != nil {
			// Transient failures never escape the fetcher; an error here is
			// cancellation or an exhausted bounded retry budget.
			if firstErr == nil {
				firstErr = result.Err
			}
			continue
		}
		if s.scatter(grid, result) {
			fetched++
		}
	}

	if firstErr != nil {
		return grid, firstErr
	}

	placePixelsFetchedTotal.Add(float64(fetched))
	return grid, nil
}

// scatter places one result into the grid cell addressed by its coordinate.
// A result outside the grid bounds is reported and skipped rather than
// aborting the batch.
func (s *Scanner) scatter(grid *canvas.Grid, result pixelResult) bool {
	if err := grid.Set(result.Coord, result.Level); err != nil {
		placeAssemblyAnomaliesTotal.Inc()
		s.logger.Warn().
			Stringer("pixel", result.Coord).
			Int("level", result.Level).
			Err(err).
			Msg("Pixel result outside batch grid, skipping")
		return false
	}
	return true
}
