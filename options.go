package toast

import "time"

// Options controls the lifetime and decoration of a single toast.
type Options struct {
	// ShowIcon shows or hides the kind icon in the default renderer.
	ShowIcon bool

	// CreatedAt is when the toast was created. If zero, it is stamped when
	// the toast is added to a Toasts value. Needed for the progress bar.
	CreatedAt time.Time

	// ExpiresAt removes the toast once it passes. Zero means the toast
	// never expires and must be dismissed explicitly.
	ExpiresAt time.Time
}

// WithDuration returns Options for a toast that expires d from now.
// A zero or negative d expires immediately, on the next frame.
func WithDuration(d time.Duration) Options {
	return withDurationAt(time.Now(), d)
}

func withDurationAt(now time.Time, d time.Duration) Options {
	return Options{
		ShowIcon:  true,
		CreatedAt: now,
		ExpiresAt: now.Add(d),
	}
}

// Expired reports whether the toast should be pruned at time now.
// Toasts without an expiry never expire.
func (o Options) Expired(now time.Time) bool {
	return !o.ExpiresAt.IsZero() && !o.ExpiresAt.After(now)
}

// Progress returns the remaining-lifetime fraction at time now, in [0, 1].
// It reports false when either timestamp is missing, in which case no
// countdown can be drawn.
func (o Options) Progress(now time.Time) (float64, bool) {
	if o.ExpiresAt.IsZero() || o.CreatedAt.IsZero() {
		return 0, false
	}
	total := o.ExpiresAt.Sub(o.CreatedAt)
	if total <= 0 {
		return 0, true
	}
	frac := float64(o.ExpiresAt.Sub(now)) / float64(total)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return frac, true
}
