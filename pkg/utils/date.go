package utils

import (
	"time"
)

// Clock abstracts the wall clock so cache expiry and recency can be tested.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return TimeNowUTC() }

// FixedClock always returns T. Tests move T forward by hand.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

func TimeNowUTC() time.Time {
	return time.Now().UTC()
}

// PrettyDate formats t for notifications, e.g. "17 Oct 2026 14:05 UTC".
func PrettyDate(t time.Time) string {
	return t.UTC().Format("02 Jan 2006 15:04 MST")
}
