package toast

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Composite splices the placed toast blocks over a background view at
// their absolute positions. The background is padded to the viewport
// height so toasts can render below its last line. Splicing is
// ANSI-aware: styled background content is cut around each block without
// corrupting escape sequences.
func Composite(background string, placed []Placed, viewport Rect) string {
	if len(placed) == 0 {
		return background
	}

	lines := strings.Split(background, "\n")
	for len(lines) < viewport.Height {
		lines = append(lines, "")
	}

	for _, p := range placed {
		block := strings.Split(p.View, "\n")
		for j, row := range block {
			y := p.Rect.Y + j
			if y < 0 || y >= len(lines) {
				continue
			}
			lines[y] = overlayLine(lines[y], row, p.Rect.X, viewport.Width)
		}
	}

	return strings.Join(lines, "\n")
}

// overlayLine splices block into base starting at cell x, keeping the
// base content on either side. The result is clipped to width cells.
func overlayLine(base, block string, x, width int) string {
	if x < 0 {
		block = ansi.TruncateLeft(block, -x, "")
		x = 0
	}
	if width > 0 {
		block = ansi.Truncate(block, width-x, "")
	}
	blockWidth := ansi.StringWidth(block)
	if blockWidth == 0 {
		return base
	}

	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+blockWidth, "")

	return left + block + right
}
