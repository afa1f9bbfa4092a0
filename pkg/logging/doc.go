// Package logging provides structured logging utilities for the fatsecret
// crawler binaries.
//
// # Overview
//
// This package wraps the standard library slog package with crawler-specific
// defaults so that the CLI and the API server log the same way. It supports
// environment-based log level configuration, module/version context injection,
// and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: dropped measurements, per-row parse detail, with source location
//   - INFO: crawl progress (default)
//   - WARN/WARNING: skipped ingredients, failed detail pages
//   - ERROR: failed searches and server errors
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("fatsecretd", "v1.0.0")
//	    slog.Info("crawling", "term", "beans", "hits", 10)
//	}
//
// Explicit level (used by the CLI --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("fatsecret", version, "debug")
//
// # Environment Configuration
//
//	LOG_LEVEL=debug fatsecret search --term beans
//	LOG_LEVEL=error fatsecretd
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "page crawled",
//	    "module": "fatsecret",
//	    "version": "v1.0.0",
//	    "page": 1
//	}
package logging
