package tmpname

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/safetmp/pkg/logger"
)

// Reporter receives one diagnostic per failed Generate call.
// Implementations must be safe for concurrent use.
type Reporter interface {
	Report(message string, code Code)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(message string, code Code)

func (f ReporterFunc) Report(message string, code Code) {
	f(message, code)
}

// Violation carries the details of one failed call.
type Violation struct {
	Message string
	Code    Code

	// Capacity is the capacity the caller declared.
	Capacity int

	// Used is the budget consumption after the call, 0 if the call failed
	// before reaching the budget.
	Used uint64

	// Name is the rejected candidate, if the source produced one.
	Name string
}

// ContextReporter is a Reporter that also accepts the call context and the
// violation details. The generator prefers ReportContext when available.
type ContextReporter interface {
	Reporter
	ReportContext(ctx context.Context, v Violation)
}

type logReporter struct {
	log *slog.Logger
}

// LogReporter reports constraint violations as warnings on log, with the
// call context passed through to the handler. A nil logger falls back to
// slog.Default at report time.
func LogReporter(log *slog.Logger) ContextReporter {
	return &logReporter{log: log}
}

func (r *logReporter) Report(message string, code Code) {
	r.ReportContext(context.Background(), Violation{Message: message, Code: code})
}

func (r *logReporter) ReportContext(ctx context.Context, v Violation) {
	log := r.log
	if log == nil {
		log = slog.Default()
	}

	attrs := []slog.Attr{
		logger.Component("tmpname"),
		logger.Reason(v.Code.String()),
		logger.Code(int(v.Code)),
	}
	if v.Capacity != 0 {
		attrs = append(attrs, logger.Capacity(v.Capacity))
	}
	if v.Used > 0 {
		attrs = append(attrs, logger.Count(v.Used))
	}
	if v.Name != "" {
		attrs = append(attrs, logger.Path(v.Name))
	}
	log.LogAttrs(ctx, slog.LevelWarn, v.Message, attrs...)
}
