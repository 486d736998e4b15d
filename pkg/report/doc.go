// Package report provides tmpname.Reporter implementations: a zap-backed
// reporter, a discarding reporter, a fan-out combinator and a Recorder that
// captures reports for assertions in tests.
//
// The slog reporter used by default lives in package tmpname itself
// (tmpname.LogReporter).
package report
