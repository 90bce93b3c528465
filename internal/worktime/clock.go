package worktime

import "time"

// Clock supplies the current local time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the machine clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
