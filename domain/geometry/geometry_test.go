package geometry

import (
	"math"
	"testing"
)

func TestFitScale(t *testing.T) {
	cases := []struct {
		name                   string
		fw, fh, sw, sh         int
		scale                  float64
		offsetX, offsetY       int
	}{
		{"wider surface letterboxes sides", 800, 600, 1000, 600, 1.0, 100, 0},
		{"taller surface letterboxes top", 800, 600, 800, 800, 1.0, 0, 100},
		{"downscale 16:9 into half", 1920, 1080, 960, 540, 0.5, 0, 0},
		{"upscale small frame", 100, 100, 400, 200, 2.0, 100, 0},
		{"exact fit", 640, 480, 640, 480, 1.0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scale, ox, oy := FitScale(c.fw, c.fh, c.sw, c.sh)
			if math.Abs(scale-c.scale) > 1e-9 || ox != c.offsetX || oy != c.offsetY {
				t.Fatalf("FitScale(%d,%d,%d,%d) = (%v,%d,%d), want (%v,%d,%d)",
					c.fw, c.fh, c.sw, c.sh, scale, ox, oy, c.scale, c.offsetX, c.offsetY)
			}
		})
	}
}

func TestFitScale_DegenerateDims(t *testing.T) {
	scale, _, _ := FitScale(0, 0, 640, 480)
	if scale <= 0 {
		t.Fatalf("degenerate frame dims must not yield non-positive scale, got %v", scale)
	}
}

func TestToFrameSpace_ClampsLetterboxMargin(t *testing.T) {
	// 800x600 frame on a 1000x600 surface: 100px side bars.
	scale, ox, oy := FitScale(800, 600, 1000, 600)
	fx, fy := ToFrameSpace(20, 10, scale, ox, oy, 800, 600)
	if fx != 0 {
		t.Fatalf("point inside left letterbox should clamp to 0, got fx=%d", fx)
	}
	if fy != 10 {
		t.Fatalf("fy = %d, want 10", fy)
	}
	// Far corner clamps to frame extents.
	fx, fy = ToFrameSpace(5000, 5000, scale, ox, oy, 800, 600)
	if fx != 800 || fy != 600 {
		t.Fatalf("overshoot should clamp to (800,600), got (%d,%d)", fx, fy)
	}
}

// Round-trip property: toSurfaceSpace(toFrameSpace(p)) is within 1 pixel of p
// for any point inside the letterboxed region.
func TestRoundTrip_WithinOnePixel(t *testing.T) {
	dims := []struct{ fw, fh, sw, sh int }{
		{1920, 1080, 800, 450},
		{800, 600, 1024, 768},
		{1366, 768, 400, 400},
	}
	for _, d := range dims {
		scale, ox, oy := FitScale(d.fw, d.fh, d.sw, d.sh)
		maxX, maxY := ToSurfaceSpace(d.fw, d.fh, scale, ox, oy)
		for py := oy; py <= maxY; py += 7 {
			for px := ox; px <= maxX; px += 7 {
				fx, fy := ToFrameSpace(px, py, scale, ox, oy, d.fw, d.fh)
				bx, by := ToSurfaceSpace(fx, fy, scale, ox, oy)
				if abs(bx-px) > 1 || abs(by-py) > 1 {
					t.Fatalf("round trip (%d,%d) -> (%d,%d) -> (%d,%d) drifted more than 1px (frame %dx%d surface %dx%d)",
						px, py, fx, fy, bx, by, d.fw, d.fh, d.sw, d.sh)
				}
			}
		}
	}
}

func TestRectContains_InclusiveBounds(t *testing.T) {
	cases := []struct {
		px, py int
		want   bool
	}{
		{0, 0, true},     // top-left corner
		{400, 600, true}, // bottom-right corner, inclusive
		{400, 0, true},
		{200, 300, true},
		{401, 300, false},
		{200, 601, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		if got := RectContains(0, 0, 400, 600, c.px, c.py); got != c.want {
			t.Errorf("RectContains(0,0,400,600, %d,%d) = %v, want %v", c.px, c.py, got, c.want)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
