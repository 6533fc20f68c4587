// Package probe isolates best-effort system queries. Every query runs
// through Try or Run so that no single failing source can abort collection
// of any other field; failures degrade to a fallback and surface only as
// debug logs and metrics.
package probe

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avelev99/cpuinfo-app/pkg/errors"
)

// Try executes a single best-effort probe. It returns the probe's value and
// true on success, or the zero value and false when the probe returns an
// error or panics. Failures are ordinary: they are logged at debug level and
// counted, never propagated.
func Try[T any](name string, fn func() (T, error)) (value T, ok bool) {
	start := time.Now()
	defer func() {
		probeDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			probeFailures.WithLabelValues(name).Inc()
			slog.Debug("probe panicked", slog.String("probe", name), slog.String("panic", fmt.Sprintf("%v", r)))
			ok = false
		}
	}()

	v, err := fn()
	if err != nil {
		probeFailures.WithLabelValues(name).Inc()
		slog.Debug("probe unavailable", slog.String("probe", name), slog.String("error", err.Error()))
		return value, false
	}
	return v, true
}

// Run executes a probe like Try, substituting fallback on failure.
func Run[T any](name string, fn func() (T, error), fallback T) T {
	if v, ok := Try(name, fn); ok {
		return v
	}
	return fallback
}

// First evaluates sources in order and returns the first successful result,
// short-circuiting the rest. When every source fails, the first error is
// returned; callers wrap First in Try so the chain as a whole still degrades
// to the sentinel.
func First[T any](sources ...func() (T, error)) (T, error) {
	var zero T
	var firstErr error
	for _, src := range sources {
		v, err := src()
		if err == nil {
			return v, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = errors.New(errors.ErrCodeUnavailable, "no source available")
	}
	return zero, firstErr
}
