// Package toast provides stacking toast notifications for Bubble Tea
// terminal applications.
//
// Create a Toasts value in your program, pick the anchor position and the
// direction the notifications stack in, and add toasts with the per-kind
// helpers. Once per frame, Show lays the toasts out, renders them and
// prunes the expired ones. The Model wrapper does the per-frame plumbing
// for you inside a Bubble Tea program:
//
//	toasts := toast.New().
//		Anchor(2, 1).
//		Direction(toast.TopDown).
//		ProgressBar(lipgloss.Color("#006400"), 1, lipgloss.Color("#d3d3d3"))
//
//	m := toast.NewModel(toasts)
//	m, cmd := m.Info("Hello, World!", 5*time.Second)
//
//	// In your View:
//	view = m.Overlay(view)
//
// The look of a toast kind can be replaced entirely with CustomContents.
// Kinds at or above KindCustom are free for application use:
//
//	const kindUpload = toast.KindCustom + 1
//
//	toasts.CustomContents(kindUpload, func(t *toast.Toast) string {
//		return myStyle.Render(t.Text)
//	})
package toast
