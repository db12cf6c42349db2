package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"fintrack/pkg/contracts/domain"
)

// Options tunes the renderers. The zero value uses the defaults
// documented on each field.
type Options struct {
	// Delimiter for the tabular document. Zero means comma.
	Delimiter rune
	// RowsPerPage caps body rows per report page. Zero means 40.
	RowsPerPage int
	// ReportTitle overrides the report document heading.
	ReportTitle string
}

// Service orchestrates the export pipeline: validate, filter, resolve,
// render. It holds no mutable state between calls, so a single Service
// may serve concurrent exports without locking.
type Service struct {
	logger   *slog.Logger
	validate *validator.Validate
	tracer   *exportTracer
	opts     Options
}

// NewService creates an export service.
func NewService(logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:   logger.With(slog.String("component", "exporter")),
		validate: validator.New(),
		tracer:   newExportTracer(),
		opts:     opts,
	}
}

// Export filters the supplied snapshot to the requested range and
// renders the selected document. The collections are borrowed
// read-only and never mutated; no file, network or store writes happen
// here. The caller gets either a complete document or a typed
// ExportError, never a truncated document.
func (s *Service) Export(ctx context.Context, req domain.ExportRequest, transactions []domain.Transaction, accounts []domain.Account, categories []domain.Category) (*domain.Document, error) {
	start := time.Now()
	ctx, span := s.tracer.start(ctx, req)
	defer span.End()

	// Request shape is validated by the caller's boundary already;
	// re-check the format enum and range ordering here as a second
	// line of defense. An inverted range is handled by the filter.
	if err := s.validate.Struct(req); err != nil {
		expErr := NewUnsupportedFormat(string(req.Format))
		s.tracer.recordFailure(ctx, span, req, expErr)
		return nil, expErr
	}

	filtered := FilterByRange(transactions, req.Range)
	if len(filtered) == 0 {
		s.logger.InfoContext(ctx, "nothing to export in range",
			slog.String("format", string(req.Format)),
			slog.String("from", formatDate(req.Range.From)),
			slog.String("to", formatDate(req.Range.To)))
		s.tracer.recordFailure(ctx, span, req, ErrNoData)
		return nil, ErrNoData
	}

	resolved := Resolve(filtered, accounts, categories)

	var (
		data      []byte
		mediaType string
		err       error
	)
	switch req.Format {
	case domain.FormatTabular:
		data, err = renderTabular(resolved, TabularOptions{Delimiter: s.opts.Delimiter})
		mediaType = domain.MediaTypeCSV
	case domain.FormatReport:
		data, err = renderReport(resolved, req.Range, ReportOptions{
			Title:       s.opts.ReportTitle,
			RowsPerPage: s.opts.RowsPerPage,
		})
		mediaType = domain.MediaTypeXLSX
	default:
		// Unreachable after validation; kept so a future format value
		// cannot silently fall through.
		expErr := NewUnsupportedFormat(string(req.Format))
		s.tracer.recordFailure(ctx, span, req, expErr)
		return nil, expErr
	}
	if err != nil {
		expErr := NewRenderFailure(err)
		s.logger.ErrorContext(ctx, "export failed",
			slog.String("format", string(req.Format)),
			slog.String("error", err.Error()))
		s.tracer.recordFailure(ctx, span, req, expErr)
		return nil, expErr
	}

	s.tracer.recordSuccess(ctx, span, req, len(resolved), len(data), time.Since(start))
	s.logger.InfoContext(ctx, "export complete",
		slog.String("format", string(req.Format)),
		slog.Int("transaction_count", len(resolved)),
		slog.Int("document_bytes", len(data)),
		slog.Duration("duration", time.Since(start)))

	return &domain.Document{
		Data:      data,
		MediaType: mediaType,
		Filename:  exportFilename(req),
	}, nil
}

// exportFilename derives a deterministic file name from the request;
// it embeds the range, never a wall-clock timestamp.
func exportFilename(req domain.ExportRequest) string {
	ext := "csv"
	if req.Format == domain.FormatReport {
		ext = "xlsx"
	}
	return fmt.Sprintf("transactions_%s_%s.%s", formatDate(req.Range.From), formatDate(req.Range.To), ext)
}
