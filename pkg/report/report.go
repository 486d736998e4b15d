package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/dmitrymomot/safetmp/pkg/tmpname"
)

type ignore struct{}

// Ignore returns a reporter that discards every report.
func Ignore() tmpname.Reporter {
	return ignore{}
}

func (ignore) Report(string, tmpname.Code) {}

type zapReporter struct {
	log *zap.Logger
}

// Zap reports constraint violations as warnings on log. A nil logger
// reports through zap.L() at report time.
func Zap(log *zap.Logger) tmpname.ContextReporter {
	return &zapReporter{log: log}
}

func (r *zapReporter) Report(message string, code tmpname.Code) {
	r.ReportContext(context.Background(), tmpname.Violation{Message: message, Code: code})
}

// ReportContext adds the violation details as fields. zap does not read ctx.
func (r *zapReporter) ReportContext(_ context.Context, v tmpname.Violation) {
	log := r.log
	if log == nil {
		log = zap.L()
	}

	fields := []zap.Field{
		zap.String("component", "tmpname"),
		zap.String("reason", v.Code.String()),
		zap.Int("code", int(v.Code)),
	}
	if v.Capacity != 0 {
		fields = append(fields, zap.Int("capacity", v.Capacity))
	}
	if v.Used > 0 {
		fields = append(fields, zap.Uint64("count", v.Used))
	}
	if v.Name != "" {
		fields = append(fields, zap.String("path", v.Name))
	}
	log.Warn(v.Message, fields...)
}

type multi []tmpname.Reporter

// Multi forwards each report to every non-nil reporter, in order. Reporters
// that accept a context get the full violation.
func Multi(reporters ...tmpname.Reporter) tmpname.ContextReporter {
	out := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (m multi) Report(message string, code tmpname.Code) {
	for _, r := range m {
		r.Report(message, code)
	}
}

func (m multi) ReportContext(ctx context.Context, v tmpname.Violation) {
	for _, r := range m {
		if cr, ok := r.(tmpname.ContextReporter); ok {
			cr.ReportContext(ctx, v)
			continue
		}
		r.Report(v.Message, v.Code)
	}
}
