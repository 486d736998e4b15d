package tmpname

import (
	"context"
	"log/slog"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLimits overrides the default limits. Zero fields keep their defaults,
// except ZeroTail which is taken as given.
func WithLimits(l Limits) Option {
	return func(g *Generator) {
		g.limits = l.merge(DefaultLimits())
	}
}

// WithSource sets the candidate source. Nil sources are ignored.
func WithSource(src CandidateSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithReporter sets the constraint-violation reporter. Nil reporters are ignored.
func WithReporter(r Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithLogger reports violations through the given logger.
func WithLogger(log *slog.Logger) Option {
	return WithReporter(LogReporter(log))
}

// Generator writes unique temporary file names into caller-owned buffers.
// It owns the call budget, so every Generator is an independent naming
// domain; the package-level functions share one process-wide Generator.
// A Generator is safe for concurrent use. The zero value is not usable:
// build one with NewGenerator.
type Generator struct {
	limits   Limits
	budget   *Budget
	source   CandidateSource
	reporter Reporter
}

// NewGenerator returns a Generator using DefaultLimits, an FSSource and a
// LogReporter on slog.Default unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		limits:   DefaultLimits(),
		source:   NewFSSource(),
		reporter: LogReporter(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.budget = NewBudget(g.limits.MaxNames)
	return g
}

// Limits returns the limits the generator validates against.
func (g *Generator) Limits() Limits {
	return g.limits
}

// Budget exposes the call budget.
func (g *Generator) Budget() *Budget {
	return g.budget
}

// Generate writes a unique name followed by a Terminator into buf, using at
// most capacity bytes (terminator included). It returns nil on success and
// an *Error otherwise.
//
// Checks run in a fixed order and the first failure wins: nil buffer,
// zero capacity, capacity over the limits (or over len(buf)), exhausted
// budget, then the candidate itself. Except for the first two checks, every
// failure leaves buf[0] == Terminator. The buffer is not retained.
func (g *Generator) Generate(buf []byte, capacity int) error {
	return g.GenerateContext(context.Background(), buf, capacity)
}

// GenerateContext is Generate with a context forwarded to the candidate
// source and to a ContextReporter. The validation pipeline itself does not
// observe ctx.
func (g *Generator) GenerateContext(ctx context.Context, buf []byte, capacity int) error {
	v := Violation{Capacity: capacity}
	if buf == nil {
		return g.fail(ctx, nil, v, NullArgument, msgNullBuffer, nil)
	}
	if capacity <= 0 {
		return g.fail(ctx, nil, v, ZeroLength, msgZeroCapacity, nil)
	}
	if capacity > g.limits.MaxStringSize || capacity > g.limits.MaxNameLen {
		return g.fail(ctx, buf, v, CapacityExceeded, msgCapacityMax, nil)
	}
	if capacity > len(buf) {
		return g.fail(ctx, buf, v, CapacityExceeded, msgCapacityBuffer, nil)
	}

	used, ok := g.budget.Take()
	v.Used = used
	if !ok {
		return g.fail(ctx, buf, v, ResourceExhausted, msgExhausted, nil)
	}

	c := g.source.Candidate(ctx)
	if !c.OK {
		return g.fail(ctx, buf, v, GeneratorFailed, msgSourceFailed, c.Errno)
	}

	v.Name = c.Name
	n := len(c.Name)
	switch {
	case n >= capacity:
		return g.fail(ctx, buf, v, BufferTooSmall, msgLengthSize, nil)
	case n > g.limits.MaxNameLen:
		return g.fail(ctx, buf, v, CapacityExceeded, msgLengthMax, nil)
	case n == 0:
		return g.fail(ctx, buf, v, GeneratorFailed, msgEmptyCandidate, nil)
	}

	copy(buf, c.Name)
	buf[n] = Terminator
	if g.limits.ZeroTail {
		clear(buf[n:capacity])
	}
	return nil
}

// fail clears the caller's buffer, reports once and builds the error.
// A nil buf means nothing may be written.
func (g *Generator) fail(ctx context.Context, buf []byte, v Violation, code Code, msg string, cause error) error {
	if len(buf) > 0 {
		buf[0] = Terminator
	}
	v.Code, v.Message = code, msg
	if cr, ok := g.reporter.(ContextReporter); ok {
		cr.ReportContext(ctx, v)
	} else {
		g.reporter.Report(msg, code)
	}
	return &Error{Code: code, Message: msg, Cause: cause}
}
