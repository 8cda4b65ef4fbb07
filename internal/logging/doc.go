// Package logging assembles structured slog loggers for storyfinder.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every line emitted during one
// discovery run carries the same correlation_id. Logs go to stderr by default
// so the CLI can stream JSON results on stdout. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
