package clock

import "time"

// Clock supplies the current time. Every engine reads "now" exactly once
// per computation through this interface so a single evaluation never
// straddles a day boundary, and so tests can freeze time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall-clock backed Clock used in production.
func System() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// Fixed returns a Clock pinned to t (for tests).
func Fixed(t time.Time) Clock { return fixedClock{t} }
