package toast

// Position is a cell coordinate in the terminal, origin at the top-left.
type Position struct {
	X int
	Y int
}

// Min returns the component-wise minimum of p and o.
func (p Position) Min(o Position) Position {
	if o.X < p.X {
		p.X = o.X
	}
	if o.Y < p.Y {
		p.Y = o.Y
	}
	return p
}

// Rect is a rectangle of terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MaxX returns the x coordinate one past the right edge.
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the y coordinate one past the bottom edge.
func (r Rect) MaxY() int { return r.Y + r.Height }

// Min returns the top-left corner.
func (r Rect) Min() Position { return Position{X: r.X, Y: r.Y} }

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}
