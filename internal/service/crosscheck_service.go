package service

import (
	"context"
	"fmt"
	"io"

	"vergos/internal/crosscheck"
	"vergos/internal/domain"
	"vergos/internal/export"
)

// ExportFormat selects a report serialization.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns the attachment filename for the format.
func (f ExportFormat) Filename() string {
	return "crosscheck-report." + string(f)
}

// CrossCheckService defines the reconciliation contract exposed to handlers.
type CrossCheckService interface {
	Run(ctx context.Context, input *domain.CrossCheckInput) *domain.Report
	Export(ctx context.Context, input *domain.CrossCheckInput, format ExportFormat, w io.Writer) error
}

type crossCheckService struct {
	engine *crosscheck.Engine
}

// NewCrossCheckService creates a new CrossCheckService implementation.
func NewCrossCheckService(engine *crosscheck.Engine) CrossCheckService {
	return &crossCheckService{engine: engine}
}

// Run executes the engine over one period's documents. The engine never
// fails for domain reasons, so no error is returned.
func (s *crossCheckService) Run(_ context.Context, input *domain.CrossCheckInput) *domain.Report {
	return s.engine.Run(input)
}

// Export runs the engine and serializes the resulting report as given.
func (s *crossCheckService) Export(ctx context.Context, input *domain.CrossCheckInput, format ExportFormat, w io.Writer) error {
	report := s.Run(ctx, input)
	var err error
	switch format {
	case FormatCSV:
		err = export.WriteReportCSV(w, report)
	case FormatXLSX:
		err = export.WriteReportXLSX(w, report)
	default:
		return domain.ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return nil
}
