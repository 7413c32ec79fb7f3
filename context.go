package toast

// Store is keyed scratch storage that survives across frames. It is the
// terminal equivalent of the temporary per-frame data a GUI framework
// would hand out: single-owner, in-memory, never persisted.
type Store struct {
	values map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value under key, replacing any previous value.
func (s *Store) Set(key string, v any) {
	s.values[key] = v
}

// Delete removes the value stored under key.
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// Context is the per-frame boundary between the host program and the
// toast widget. The host keeps one Context alive for the lifetime of the
// program; the widget reads the viewport from it, round-trips its state
// through the store, and raises the repaint flag when it needs another
// frame to animate.
type Context struct {
	viewport Rect
	store    *Store
	repaint  bool
}

// NewContext creates a Context for a viewport of the given size.
func NewContext(width, height int) *Context {
	return &Context{
		viewport: Rect{Width: width, Height: height},
		store:    NewStore(),
	}
}

// SetViewport updates the viewport size, typically from a window resize.
func (c *Context) SetViewport(width, height int) {
	c.viewport = Rect{Width: width, Height: height}
}

// Viewport returns the current viewport rectangle.
func (c *Context) Viewport() Rect {
	return c.viewport
}

// Store returns the cross-frame scratch store.
func (c *Context) Store() *Store {
	return c.store
}

// RequestRepaint asks the host to schedule another frame promptly, so
// time-based expiry and the countdown animate without external input.
func (c *Context) RequestRepaint() {
	c.repaint = true
}

// TakeRepaint reports whether a repaint was requested and clears the flag.
func (c *Context) TakeRepaint() bool {
	r := c.repaint
	c.repaint = false
	return r
}
