package toast

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// renderProgressBar renders the countdown bar for a toast, sized by the
// remaining-lifetime fraction. It returns "" when the bar is disabled,
// the toast never expires, or the creation timestamp is missing.
func (ts *Toasts) renderProgressBar(t *Toast, now time.Time, width int) string {
	if ts.progressBarWidth <= 0 || width <= 0 {
		return ""
	}
	if t.Options.ExpiresAt.IsZero() {
		return ""
	}
	frac, ok := t.Options.Progress(now)
	if !ok {
		return ""
	}

	bar := progress.New(
		progress.WithWidth(width),
		progress.WithSolidFill(string(ts.progressBarColor)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(ts.progressBarOutlineColor)

	row := bar.ViewAs(frac)
	if ts.progressBarWidth == 1 {
		return row
	}
	rows := make([]string, ts.progressBarWidth)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
