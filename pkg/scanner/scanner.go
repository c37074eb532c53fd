package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
)

// PixelFetcher is the interface the scanner needs for single-pixel fetching.
// *client.Client implements it.
type PixelFetcher interface {
	// FetchPixelLevel fetches the level of one canvas pixel.
	FetchPixelLevel(ctx context.Context, coord canvas.Coordinate) (int, error)
}

// Config holds scanner configuration.
type Config struct {
	// MaxConcurrentRequests is the concurrency budget per batch: the number
	// of pixel requests allowed in flight at once.
	MaxConcurrentRequests int
}

// DefaultConfig returns the scanner configuration used during the event.
func DefaultConfig() Config {
	return Config{
		MaxConcurrentRequests: 10000,
	}
}

// Scanner drives full-sector scans through sequential column batches.
type Scanner struct {
	fetcher PixelFetcher
	config  Config
	logger  zerolog.Logger
}

// New creates a scanner on top of a pixel fetcher.
func New(fetcher PixelFetcher, cfg Config) (*Scanner, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("pixel fetcher is required")
	}
	if cfg.MaxConcurrentRequests <= 0 {
		return nil, fmt.Errorf("max_concurrent_requests must be positive (got %d)", cfg.MaxConcurrentRequests)
	}

	return &Scanner{
		fetcher: fetcher,
		config:  cfg,
		logger:  log.With().Str("component", "scanner").Logger(),
	}, nil
}

// FetchFullSector scans a sector of unbounded size and returns the assembled
// grid.
//
// The sector is validated before any network call: an invalid one yields an
// empty grid, a diagnostic log and ErrInvalidSector. Valid sectors are split
// into column batches sized by the concurrency budget, fetched strictly one
// batch after another, each batch copied into its column range of the full
// grid. Against a deterministic server the result is idempotent.
func (s *Scanner) FetchFullSector(ctx context.Context, sector canvas.Sector) (*canvas.Grid, error) {
	if err := sector.Validate(); err != nil {
		s.logger.Error().
			Stringer("sector", sector).
			Err(err).
			Msg("Refusing to scan invalid sector")
		return canvas.NewGrid(canvas.Sector{}), err
	}

	grid := canvas.NewGrid(sector)
	plan := PlanBatches(sector, s.config.MaxConcurrentRequests)
	if plan.TotalRequests == 0 {
		return grid, nil
	}

	s.logger.Info().
		Stringer("sector", sector).
		Int("requests", plan.TotalRequests).
		Int("batches", plan.NumBatches).
		Int("columns_per_batch", plan.ColumnsPerBatch).
		Msg("Starting sector scan")

	start := time.Now()
	for i := 0; i < plan.NumBatches; i++ {
		batch := plan.Batch(i)

		sub, err := s.FetchSector(ctx, batch)
		if err != nil {
			return grid, fmt.Errorf("batch %d/%d %s: %w", i+1, plan.NumBatches, batch, err)
		}
		if err := sub.CopyInto(grid); err != nil {
			return grid, fmt.Errorf("assemble batch %d/%d: %w", i+1, plan.NumBatches, err)
		}

		placeBatchesTotal.Inc()
		s.logger.Info().
			Int("batch", i+1).
			Int("total", plan.NumBatches).
			Stringer("batch_sector", batch).
			Msg("Batch complete")
	}

	s.logger.Info().
		Stringer("sector", sector).
		Dur("duration", time.Since(start)).
		Msg("Sector scan complete")

	return grid, nil
}
