package clock

import "time"

// Manual is a clock advanced explicitly. Tests use it to simulate the
// passage of time without sleeping.
type Manual struct {
	t time.Time
}

// NewManual creates a Manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{t: start}
}

// Now returns the clock's current time.
func (m *Manual) Now() time.Time {
	return m.t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.t = m.t.Add(d)
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.t = t
}
