package toast

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ultrajackstr/tea-toast/internal/clock"
)

// Toasts is the toast registry. It holds newly added toasts until the
// next frame, and drives the per-frame layout, render and prune pass.
// The zero value is not usable; call New.
type Toasts struct {
	id         string
	anchor     Position
	direction  Direction
	alignToEnd bool
	custom     map[Kind]Renderer
	styles     *Styles

	progressBarColor        lipgloss.Color
	progressBarWidth        int
	progressBarOutlineColor lipgloss.Color

	now func() time.Time

	pending []Toast
	seq     uint64
}

// New creates a Toasts value with the default configuration: anchored at
// the top-left corner, stacking top-down, progress bar disabled.
func New() *Toasts {
	return &Toasts{
		id:                      "toasts",
		direction:               TopDown,
		custom:                  make(map[Kind]Renderer),
		styles:                  DefaultStyles(),
		progressBarColor:        DefaultProgressColor,
		progressBarOutlineColor: DefaultProgressOutlineColor,
		now:                     clock.Now,
	}
}

// ID sets the key prefix used for this registry's state in the scratch
// store. Only needed when several registries share one Context.
func (ts *Toasts) ID(id string) *Toasts {
	ts.id = id
	return ts
}

// Anchor sets the screen position the stack originates from.
func (ts *Toasts) Anchor(x, y int) *Toasts {
	ts.anchor = Position{X: x, Y: y}
	return ts
}

// Direction sets where the toasts stack up.
func (ts *Toasts) Direction(d Direction) *Toasts {
	ts.direction = d
	return ts
}

// AlignToEnd cross-aligns toasts to the right/bottom edge of the stacking
// area instead of the left/top edge.
func (ts *Toasts) AlignToEnd(align bool) *Toasts {
	ts.alignToEnd = align
	return ts
}

// ProgressBar configures the countdown bar. Width is its thickness in
// rows; zero disables the bar. The outline color fills the elapsed part.
func (ts *Toasts) ProgressBar(color lipgloss.Color, width int, outline lipgloss.Color) *Toasts {
	ts.progressBarColor = color
	ts.progressBarWidth = width
	ts.progressBarOutlineColor = outline
	return ts
}

// CustomContents registers a rendering function for toasts of the given
// kind, replacing the default renderer for that kind.
func (ts *Toasts) CustomContents(kind Kind, render Renderer) *Toasts {
	ts.custom[kind] = render
	return ts
}

// Styles replaces the styles used by the default renderer.
func (ts *Toasts) Styles(s *Styles) *Toasts {
	ts.styles = s
	return ts
}

// Now replaces the time source. Tests use this to drive expiry and the
// countdown deterministically.
func (ts *Toasts) Now(now func() time.Time) *Toasts {
	ts.now = now
	return ts
}

// Add appends a toast to the pending list. It shows up on the next Show.
func (ts *Toasts) Add(t Toast) *Toasts {
	ts.seq++
	t.seq = ts.seq
	if t.Options.CreatedAt.IsZero() {
		t.Options.CreatedAt = ts.now()
	}
	ts.pending = append(ts.pending, t)
	return ts
}

// Info adds an info toast that expires d from now.
func (ts *Toasts) Info(text string, d time.Duration) *Toasts {
	return ts.add(KindInfo, text, d)
}

// Warning adds a warning toast that expires d from now.
func (ts *Toasts) Warning(text string, d time.Duration) *Toasts {
	return ts.add(KindWarning, text, d)
}

// Error adds an error toast that expires d from now.
func (ts *Toasts) Error(text string, d time.Duration) *Toasts {
	return ts.add(KindError, text, d)
}

// Success adds a success toast that expires d from now.
func (ts *Toasts) Success(text string, d time.Duration) *Toasts {
	return ts.add(KindSuccess, text, d)
}

func (ts *Toasts) add(kind Kind, text string, d time.Duration) *Toasts {
	return ts.Add(Toast{
		Kind:    kind,
		Text:    text,
		Options: withDurationAt(ts.now(), d),
	})
}

// Placed is a toast rendered this frame together with its placement.
type Placed struct {
	Toast Toast
	Rect  Rect
	View  string
}

// hitRegion maps a screen rectangle back to a live toast.
type hitRegion struct {
	seq  uint64
	rect Rect
}

// Show runs one frame: it merges the persisted toasts with the pending
// ones, lays them out from the anchor, renders each toast, prunes the
// expired ones and persists the survivors. It requests a repaint while
// any toast remains. The returned slice holds everything rendered this
// frame, in stacking order.
func (ts *Toasts) Show(ctx *Context) []Placed {
	now := ts.now()
	store := ctx.Store()

	live := append(ts.stored(store), ts.pending...)
	ts.pending = nil

	area := stackRect(ts.anchor, ts.direction, ts.alignToEnd, ctx.Viewport())

	views := make([]string, len(live))
	sizes := make([]blockSize, len(live))
	for i := range live {
		v := ts.contents(&live[i], now)
		views[i] = v
		sizes[i] = blockSize{width: lipgloss.Width(v), height: lipgloss.Height(v)}
	}
	rects := placeBlocks(area, ts.direction, ts.alignToEnd, sizes)

	placed := make([]Placed, len(live))
	hits := make([]hitRegion, len(live))
	origin := Position{X: math.MaxInt, Y: math.MaxInt}
	for i := range live {
		placed[i] = Placed{Toast: live[i], Rect: rects[i], View: views[i]}
		hits[i] = hitRegion{seq: live[i].seq, rect: rects[i]}
		origin = origin.Min(rects[i].Min())
	}
	if len(live) == 0 {
		origin = ts.anchor
	}
	store.Set(ts.key("pos"), origin)
	store.Set(ts.key("hits"), hits)

	survivors := make([]Toast, 0, len(live))
	for _, t := range live {
		if !t.Options.Expired(now) {
			survivors = append(survivors, t)
		}
	}
	store.Set(ts.key("toasts"), survivors)

	if len(survivors) > 0 {
		ctx.RequestRepaint()
	}

	return placed
}

// Origin returns the stack origin remembered from the last frame: the
// component-wise minimum of all rendered toast rectangles, or the
// configured anchor when nothing was rendered.
func (ts *Toasts) Origin(ctx *Context) Position {
	if v, ok := ctx.Store().Get(ts.key("pos")); ok {
		if pos, ok := v.(Position); ok {
			return pos
		}
	}
	return ts.anchor
}

// Active returns the number of toasts that will render on the next frame.
func (ts *Toasts) Active(ctx *Context) int {
	return len(ts.stored(ctx.Store())) + len(ts.pending)
}

// DismissAt closes the toast covering the cell at (x, y), using the hit
// regions recorded by the last Show. The toast disappears on the next
// prune pass. It reports whether a toast was hit.
func (ts *Toasts) DismissAt(ctx *Context, x, y int) bool {
	store := ctx.Store()
	v, ok := store.Get(ts.key("hits"))
	if !ok {
		return false
	}
	hits, ok := v.([]hitRegion)
	if !ok {
		return false
	}

	for _, h := range hits {
		if !h.rect.Contains(x, y) {
			continue
		}
		live := ts.stored(store)
		for i := range live {
			if live[i].seq == h.seq {
				live[i].CloseAt(ts.now())
				store.Set(ts.key("toasts"), live)
				return true
			}
		}
	}
	return false
}

func (ts *Toasts) stored(store *Store) []Toast {
	if v, ok := store.Get(ts.key("toasts")); ok {
		if list, ok := v.([]Toast); ok {
			return list
		}
	}
	return nil
}

func (ts *Toasts) key(suffix string) string {
	return ts.id + "/" + suffix
}
