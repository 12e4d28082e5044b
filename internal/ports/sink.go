package ports

import (
	"context"

	"propmeta/internal/types"
)

// DiagnosticSinkPort receives finished diagnostics one at a time.
// Aggregation and formatting policy belong to the implementation.
type DiagnosticSinkPort interface {
	Collect(ctx context.Context, typeName string, diagnostic types.Diagnostic) error
}

// ReportWriterPort persists the extraction report for a run.
type ReportWriterPort interface {
	WriteReport(report types.ExtractionReport) error
}

// ReportReaderPort loads a previously written extraction report.
type ReportReaderPort interface {
	ReadReport(dir string) (types.ExtractionReport, error)
}
