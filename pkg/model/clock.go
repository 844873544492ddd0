package model

import "time"

// Clock is the time source polled by the search loop
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Time returned by time.Now carries a monotonic reading, so differences are immune to wall clock changes
func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the process clock
func SystemClock() Clock {
	return systemClock{}
}
