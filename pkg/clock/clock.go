// Package clock abstracts the wall clock so time-dependent computations
// (uptime) can be pinned in tests.
package clock

import "time"

// Clock supplies the current time. Collectors take a Clock instead of
// calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// Real returns a Clock backed by the system time.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Fake returns a Clock pinned to t.
func Fake(t time.Time) Clock { return fakeClock{t: t} }

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }
