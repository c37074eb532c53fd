// Command place-heatmap scans a sector of the Zevent Place canvas and writes
// the level heat map as a PNG.
//
// Usage:
//
//	PLACE_AUTH_TOKEN=... place-heatmap -sector 217,231,259,273 -out levels.png
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/eliegoudout/zevent-place-client/internal/config"
	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
	"github.com/eliegoudout/zevent-place-client/pkg/client"
	"github.com/eliegoudout/zevent-place-client/pkg/logging"
	"github.com/eliegoudout/zevent-place-client/pkg/render"
	"github.com/eliegoudout/zevent-place-client/pkg/scanner"
)

func main() {
	sectorFlag := flag.String("sector", "0,0,700,700", "sector to scan as x1,y1,x2,y2 (half-open)")
	outFlag := flag.String("out", "heatmap.png", "output PNG path")
	scaleFlag := flag.Int("scale", 4, "image pixels per canvas pixel")
	metricsFlag := flag.String("metrics-addr", "", "optional address to serve Prometheus metrics on (e.g. :9090)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	sector, err := parseSector(*sectorFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid -sector flag")
	}

	placeClient, err := client.New(client.Config{
		BaseURL:   cfg.BaseURL,
		Path:      cfg.Path,
		Host:      cfg.Host,
		AuthToken: cfg.AuthToken,
		Timeout:   client.DefaultConfig().Timeout,
		Retry:     client.DefaultRetryPolicy(),
	})
	if err != nil {
		// Missing token lands here: a configuration error, reported before
		// any network activity.
		logger.Fatal().Err(err).Msg("Cannot create Place client")
	}

	sc, err := scanner.New(placeClient, scanner.Config{
		MaxConcurrentRequests: cfg.MaxConcurrentRequests,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot create scanner")
	}

	if *metricsFlag != "" {
		go serveMetrics(*metricsFlag)
	}

	// Ctrl-C cancels the scan; the unbounded retry policy has no other exit
	// against a dead server.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	grid, err := sc.FetchFullSector(ctx, sector)
	if err != nil {
		logger.Fatal().Err(err).Msg("Sector scan failed")
	}

	img, err := render.Heatmap(grid, render.Options{Scale: *scaleFlag})
	if err != nil {
		logger.Fatal().Err(err).Msg("Nothing rendered")
	}

	if err := render.WritePNG(img, *outFlag); err != nil {
		logger.Fatal().Err(err).Msg("Cannot write output")
	}

	logger.Info().
		Str("out", *outFlag).
		Stringer("sector", sector).
		Int("max_level", grid.MaxLevel()).
		Msg("Heat map written")
}

// parseSector parses "x1,y1,x2,y2" into a sector.
func parseSector(s string) (canvas.Sector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return canvas.Sector{}, fmt.Errorf("expected x1,y1,x2,y2, got %q", s)
	}

	vals := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return canvas.Sector{}, fmt.Errorf("bad sector component %q: %w", part, err)
		}
		vals[i] = v
	}

	return canvas.NewSector(vals[0], vals[1], vals[2], vals[3]), nil
}

// serveMetrics exposes the Prometheus registry over HTTP.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Str("addr", addr).Msg("Metrics server stopped")
	}
}
