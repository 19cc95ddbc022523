package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// Offset reports base shifted by whatever elapsed returns, so simulated
// sessions can stamp entries from virtual time.
func Offset(base time.Time, elapsed func() time.Duration) Clock {
	return Func(func() time.Time {
		return base.Add(elapsed())
	})
}
