// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to read cache topology",
//	    readErr,
//	    map[string]any{
//	        "path": cacheDir,
//	    },
//	)
package errors
