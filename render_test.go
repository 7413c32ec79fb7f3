package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var renderNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDefaultContentsShowsIconAndDismiss(t *testing.T) {
	ts := New()
	toast := Toast{Kind: KindSuccess, Text: "done", Options: Options{ShowIcon: true}}

	view := ts.defaultContents(&toast, renderNow)

	if !strings.Contains(view, "✔") {
		t.Error("expected success icon in rendered toast")
	}
	if !strings.Contains(view, "done") {
		t.Error("expected message text in rendered toast")
	}
	if !strings.Contains(view, dismissGlyph) {
		t.Error("expected dismiss control in rendered toast")
	}
}

func TestDefaultContentsHidesIcon(t *testing.T) {
	ts := New()
	toast := Toast{Kind: KindSuccess, Text: "done"}

	view := ts.defaultContents(&toast, renderNow)

	if strings.Contains(view, "✔") {
		t.Error("icon should be hidden when ShowIcon is false")
	}
}

func TestDefaultContentsReversedForRightToLeft(t *testing.T) {
	ts := New().Direction(RightToLeft)
	toast := Toast{Kind: KindInfo, Text: "msg", Options: Options{ShowIcon: true}}

	view := ts.defaultContents(&toast, renderNow)

	dismiss := strings.Index(view, dismissGlyph)
	text := strings.Index(view, "msg")
	icon := strings.Index(view, "ℹ")
	if dismiss == -1 || text == -1 || icon == -1 {
		t.Fatal("missing toast parts")
	}
	if !(dismiss < text && text < icon) {
		t.Errorf("right-to-left toast should render dismiss, text, icon; got offsets %d %d %d",
			dismiss, text, icon)
	}
}

func TestUnknownKindFallsBackToInfoIcon(t *testing.T) {
	ts := New()
	toast := Toast{Kind: KindCustom + 9, Text: "custom", Options: Options{ShowIcon: true}}

	view := ts.defaultContents(&toast, renderNow)
	if !strings.Contains(view, "ℹ") {
		t.Error("custom kinds without a renderer should use the info icon")
	}
}

func TestProgressBarRenderedForExpiringToast(t *testing.T) {
	ts := New().ProgressBar(DefaultProgressColor, 1, DefaultProgressOutlineColor)
	expiring := Toast{Kind: KindInfo, Text: "going", Options: withDurationAt(renderNow, 10*time.Second)}
	sticky := Toast{Kind: KindInfo, Text: "going", Options: Options{ShowIcon: true}}

	withBar := ts.defaultContents(&expiring, renderNow)
	withoutBar := ts.defaultContents(&sticky, renderNow)

	if lipgloss.Height(withBar) != lipgloss.Height(withoutBar)+1 {
		t.Errorf("expiring toast should gain one bar row: %d vs %d",
			lipgloss.Height(withBar), lipgloss.Height(withoutBar))
	}
	if !strings.Contains(withBar, "█") {
		t.Error("expected a filled countdown bar at creation time")
	}
}

func TestProgressBarDisabledByDefault(t *testing.T) {
	ts := New()
	expiring := Toast{Kind: KindInfo, Text: "going", Options: withDurationAt(renderNow, 10*time.Second)}

	if bar := ts.renderProgressBar(&expiring, renderNow, 20); bar != "" {
		t.Error("progress bar should be disabled when its width is zero")
	}
}

func TestProgressBarSkippedWithoutCreationTimestamp(t *testing.T) {
	ts := New().ProgressBar(DefaultProgressColor, 1, DefaultProgressOutlineColor)
	toast := Toast{Kind: KindInfo, Text: "going", Options: Options{ExpiresAt: renderNow.Add(time.Minute)}}

	if bar := ts.renderProgressBar(&toast, renderNow, 20); bar != "" {
		t.Error("progress bar needs a creation timestamp")
	}
}

func TestProgressBarThickness(t *testing.T) {
	ts := New().ProgressBar(DefaultProgressColor, 2, DefaultProgressOutlineColor)
	toast := Toast{Kind: KindInfo, Text: "going", Options: withDurationAt(renderNow, 10*time.Second)}

	bar := ts.renderProgressBar(&toast, renderNow, 20)
	if lipgloss.Height(bar) != 2 {
		t.Errorf("bar height = %d, want 2", lipgloss.Height(bar))
	}
}
