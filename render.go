package toast

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Renderer draws a toast and returns its rendered block. Custom renderers
// may mutate the toast, e.g. call Close to dismiss it.
type Renderer func(t *Toast) string

const dismissGlyph = "✕"

// contents dispatches to the custom renderer registered for the toast's
// kind, falling back to the default renderer.
func (ts *Toasts) contents(t *Toast, now time.Time) string {
	if render, ok := ts.custom[t.Kind]; ok {
		return render(t)
	}
	return ts.defaultContents(t, now)
}

// defaultContents renders the stock toast: icon, message and dismiss
// control inside a window frame, with a countdown bar when the toast has
// an expiry. The contents are drawn in reverse order on right-to-left
// stacks to keep the same look.
func (ts *Toasts) defaultContents(t *Toast, now time.Time) string {
	icon, iconStyle := ts.styles.Icon(t.Kind)

	parts := make([]string, 0, 3)
	if t.Options.ShowIcon {
		parts = append(parts, iconStyle.Render(icon))
	}
	parts = append(parts, ts.styles.Text.Render(t.Text))
	parts = append(parts, ts.styles.Dismiss.Render(dismissGlyph))

	if ts.direction == RightToLeft {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}

	row := strings.Join(parts, " ")
	body := row
	if bar := ts.renderProgressBar(t, now, lipgloss.Width(row)); bar != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, row, bar)
	}

	return ts.styles.Frame.Render(body)
}
