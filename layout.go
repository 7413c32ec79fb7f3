package toast

// Direction is the axis and sense along which successive toasts stack.
type Direction int

const (
	TopDown Direction = iota
	BottomUp
	LeftToRight
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	default:
		return "unknown"
	}
}

// stackGap is the spacing between stacked toasts, in cells.
const stackGap = 1

// stackRect returns the sub-rectangle of the viewport that toasts stack
// inside. Each (direction, alignToEnd) combination selects the half of the
// viewport on one side of the anchor. The mapping is deliberately
// asymmetric between the align-to-end and align-to-start cases; do not
// try to unify the arms.
func stackRect(anchor Position, dir Direction, alignToEnd bool, viewport Rect) Rect {
	switch {
	case (dir == LeftToRight || dir == TopDown) && !alignToEnd:
		return Rect{
			X:      anchor.X,
			Y:      anchor.Y,
			Width:  viewport.Width - anchor.X,
			Height: viewport.Height - anchor.Y,
		}
	case (dir == RightToLeft || dir == BottomUp) && alignToEnd:
		return Rect{X: 0, Y: 0, Width: anchor.X, Height: anchor.Y}
	case (dir == BottomUp && !alignToEnd) || (dir == LeftToRight && alignToEnd):
		return Rect{
			X:      anchor.X,
			Y:      0,
			Width:  viewport.Width - anchor.X,
			Height: anchor.Y,
		}
	default: // (RightToLeft, start) and (TopDown, end)
		return Rect{
			X:      0,
			Y:      anchor.Y,
			Width:  anchor.X,
			Height: viewport.Height - anchor.Y,
		}
	}
}

// blockSize is the measured size of a rendered toast block.
type blockSize struct {
	width  int
	height int
}

// placeBlocks lays blocks out sequentially along dir inside area,
// cross-aligned to the far edge when alignToEnd is set. Blocks are not
// clipped against the area; an overfull stack simply runs past it.
func placeBlocks(area Rect, dir Direction, alignToEnd bool, sizes []blockSize) []Rect {
	rects := make([]Rect, len(sizes))

	switch dir {
	case TopDown:
		y := area.Y
		for i, s := range sizes {
			rects[i] = Rect{X: crossX(area, alignToEnd, s.width), Y: y, Width: s.width, Height: s.height}
			y += s.height + stackGap
		}
	case BottomUp:
		y := area.MaxY()
		for i, s := range sizes {
			rects[i] = Rect{X: crossX(area, alignToEnd, s.width), Y: y - s.height, Width: s.width, Height: s.height}
			y -= s.height + stackGap
		}
	case LeftToRight:
		x := area.X
		for i, s := range sizes {
			rects[i] = Rect{X: x, Y: crossY(area, alignToEnd, s.height), Width: s.width, Height: s.height}
			x += s.width + stackGap
		}
	case RightToLeft:
		x := area.MaxX()
		for i, s := range sizes {
			rects[i] = Rect{X: x - s.width, Y: crossY(area, alignToEnd, s.height), Width: s.width, Height: s.height}
			x -= s.width + stackGap
		}
	}

	return rects
}

func crossX(area Rect, alignToEnd bool, width int) int {
	if alignToEnd {
		return area.MaxX() - width
	}
	return area.X
}

func crossY(area Rect, alignToEnd bool, height int) int {
	if alignToEnd {
		return area.MaxY() - height
	}
	return area.Y
}
