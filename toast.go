package toast

import "time"

// Toast is a single notification message.
type Toast struct {
	Kind    Kind
	Text    string
	Options Options

	// seq identifies the toast across frames, for mouse dismissal.
	// Assigned by Toasts.Add.
	seq uint64
}

// Close marks the toast for removal by setting its expiry to now.
// It takes effect on the next prune pass, not immediately.
func (t *Toast) Close() {
	t.CloseAt(time.Now())
}

// CloseAt marks the toast for removal at the given time.
func (t *Toast) CloseAt(now time.Time) {
	t.Options.ExpiresAt = now
}
