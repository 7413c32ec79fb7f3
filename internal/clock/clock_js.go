//go:build js && wasm

package clock

import (
	"syscall/js"
	"time"
)

// Now reads the browser performance clock. performance.now() reports
// milliseconds since page load with sub-millisecond resolution and,
// unlike Date.now(), is monotonic.
func Now() time.Time {
	ms := js.Global().Get("performance").Call("now").Float()
	return time.Unix(0, int64(ms*float64(time.Millisecond)))
}
