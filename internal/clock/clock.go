//go:build !js

// Package clock provides the time source for toast expiry and the
// countdown bar. Only differences between readings matter, so each
// platform backend is free to pick its own epoch.
package clock

import "time"

// Now returns the current time from the platform clock.
func Now() time.Time {
	return time.Now()
}
