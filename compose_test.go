package toast

import (
	"strings"
	"testing"
)

func TestCompositeSplicesBlock(t *testing.T) {
	viewport := Rect{Width: 10, Height: 4}
	background := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	placed := []Placed{{
		Rect: Rect{X: 2, Y: 1, Width: 2, Height: 2},
		View: "XX\nXX",
	}}

	got := Composite(background, placed, viewport)
	want := strings.Join([]string{
		"..........",
		"..XX......",
		"..XX......",
		"..........",
	}, "\n")
	if got != want {
		t.Errorf("Composite =\n%s\nwant\n%s", got, want)
	}
}

func TestCompositePadsShortBackground(t *testing.T) {
	viewport := Rect{Width: 10, Height: 4}

	placed := []Placed{{
		Rect: Rect{X: 0, Y: 3, Width: 2, Height: 1},
		View: "XX",
	}}

	got := Composite("top", placed, viewport)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[3] != "XX" {
		t.Errorf("last line = %q, want %q", lines[3], "XX")
	}
}

func TestCompositeClipsAtViewportEdge(t *testing.T) {
	viewport := Rect{Width: 6, Height: 1}

	placed := []Placed{{
		Rect: Rect{X: 4, Y: 0, Width: 4, Height: 1},
		View: "XXXX",
	}}

	got := Composite("......", placed, viewport)
	if got != "....XX" {
		t.Errorf("Composite = %q, want %q", got, "....XX")
	}
}

func TestCompositeIgnoresRowsOutsideViewport(t *testing.T) {
	viewport := Rect{Width: 6, Height: 2}

	placed := []Placed{{
		Rect: Rect{X: 0, Y: -1, Width: 2, Height: 3},
		View: "AA\nBB\nCC",
	}}

	got := Composite("......\n......", placed, viewport)
	want := "BB....\nCC...."
	if got != want {
		t.Errorf("Composite = %q, want %q", got, want)
	}
}

func TestCompositeNoToastsReturnsBackground(t *testing.T) {
	if got := Composite("hi", nil, Rect{Width: 10, Height: 5}); got != "hi" {
		t.Errorf("Composite = %q, want unchanged background", got)
	}
}

func TestOverlayLineClipsNegativeX(t *testing.T) {
	got := overlayLine("......", "ABCD", -2, 6)
	if got != "CD...." {
		t.Errorf("overlayLine = %q, want %q", got, "CD....")
	}
}
