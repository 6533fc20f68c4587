// Package logging provides structured logging utilities shared across the
// application.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON output to stderr, environment-based log level configuration,
// module/version context injection, and source location tracking for debug
// logs. Stdout stays reserved for the report document itself.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cpuinfo", version)
//
//	    slog.Debug("collection finished", "unknown_fields", n)
//	    slog.Error("write failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("cpuinfo", "v1.0.0", "debug")
//	logger.Debug("probe unavailable", "probe", "cpu.cache")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug cpuinfo --json
//
// If LOG_LEVEL is not set, defaults to INFO level. The CLI overrides this
// through its --log-level flag.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "msg": "probe unavailable",
//	    "module": "cpuinfo",
//	    "version": "v1.0.0",
//	    "probe": "cpu.cache"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/cli - command logging
//   - pkg/probe - probe failure diagnostics
//   - pkg/snapshot - collection run logging
//   - pkg/serializer - output sink warnings
package logging
