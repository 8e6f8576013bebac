// Package date provides the pure time-window value types used to window
// portfolio statistics: a Range of instants and a symbolic Period that
// resolves to a Range anchored on a reference instant.
package date

import (
	"fmt"
	"time"
)

// Range represents a window of time between two instants.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange returns the range [start, end].
func NewRange(start, end time.Time) Range {
	return Range{Start: start, End: end}
}

// Since returns the range from start up to now.
func Since(start time.Time) Range {
	return Range{Start: start, End: time.Now()}
}

// Contains reports whether t falls within the range, boundaries included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Duration returns the length of the range. A custom range with Start == End
// has a zero duration, which callers must tolerate.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Range) String() string {
	const f = "2006-01-02 15:04"
	return fmt.Sprintf("%s .. %s", r.Start.Format(f), r.End.Format(f))
}
