// Package logging provides a minimal logging interface and adapters for the
// search engine.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the search driver uses for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (the driver's default)
//
// The design intentionally keeps the interface minimal so callers can plug in
// any structured logger.
package logging
