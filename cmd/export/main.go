// Command export renders a tracker snapshot into a tabular CSV or a
// paginated report workbook. It plays the caller role around the
// export engine: it loads the collections, invokes the pipeline and
// writes the resulting document to disk.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	"fintrack/internal/exporter"
	"fintrack/internal/infrastructure"
	"fintrack/internal/snapshot"
	"fintrack/pkg/contracts/domain"
)

func main() {
	input := flag.String("input", "snapshot.json", "path to the tracker snapshot JSON")
	outDir := flag.String("out", ".", "directory to write the rendered document(s) into")
	format := flag.String("format", "tabular", "tabular | report | all")
	from := flag.String("from", "", "range start, YYYY-MM-DD (inclusive; defaults to 1970-01-01)")
	to := flag.String("to", "", "range end, YYYY-MM-DD (inclusive; defaults to 9999-12-31)")
	configPath := flag.String("config", "fintrack.yml", "optional configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.NewLogger(cfg.Logging)

	formats, err := selectFormats(*format)
	if err != nil {
		logger.Error("Invalid -format flag", slog.String("error", err.Error()))
		os.Exit(2)
	}

	rng, err := parseRange(*from, *to)
	if err != nil {
		logger.Error("Invalid date range flags", slog.String("error", err.Error()))
		os.Exit(2)
	}

	snap, err := snapshot.Load(*input)
	if err != nil {
		logger.Error("Failed to load snapshot",
			slog.String("path", *input),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Snapshot loaded",
		slog.String("path", *input),
		slog.Int("transactions", len(snap.Transactions)),
		slog.Int("accounts", len(snap.Accounts)),
		slog.Int("categories", len(snap.Categories)))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("Cannot create output directory",
			slog.String("path", *outDir),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	service := exporter.NewService(logger, exporter.Options{
		Delimiter:   cfg.Export.DelimiterRune(),
		RowsPerPage: cfg.Export.RowsPerPage,
		ReportTitle: cfg.Export.ReportTitle,
	})

	// Each export is an independent pipeline invocation, so rendering
	// both formats can run concurrently.
	g, ctx := errgroup.WithContext(context.Background())
	for _, f := range formats {
		g.Go(func() error {
			req := domain.ExportRequest{Format: f, Range: rng}
			doc, err := service.Export(ctx, req, snap.Transactions, snap.Accounts, snap.Categories)
			if err != nil {
				return err
			}
			path := filepath.Join(*outDir, doc.Filename)
			if err := os.WriteFile(path, doc.Data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			logger.Info("Document written",
				slog.String("path", path),
				slog.String("media_type", doc.MediaType),
				slog.Int("bytes", len(doc.Data)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, exporter.ErrNoData) {
			logger.Warn("Nothing to export in the requested range")
			os.Exit(3)
		}
		logger.Error("Export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// parseRange builds the inclusive range from the flag values; an unset
// bound falls back to covering all time on that side.
func parseRange(from, to string) (domain.DateRange, error) {
	parse := func(value string, fallback time.Time) (time.Time, error) {
		if value == "" {
			return fallback, nil
		}
		return time.Parse("2006-01-02", value)
	}

	f, err := parse(from, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid -from date: %w", err)
	}
	t, err := parse(to, time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid -to date: %w", err)
	}
	return domain.DateRange{From: f, To: t}, nil
}

func selectFormats(value string) ([]domain.ExportFormat, error) {
	if value == "all" {
		return []domain.ExportFormat{domain.FormatTabular, domain.FormatReport}, nil
	}
	f := domain.ExportFormat(value)
	if !f.Valid() {
		return nil, fmt.Errorf("unknown format %q (want tabular, report or all)", value)
	}
	return []domain.ExportFormat{f}, nil
}
