package geometry

import "math"

// Coordinate transforms between a captured frame's pixel space and a display
// surface's pixel space. The surface shows the frame scaled to fit and
// centered (letterboxed); all functions here are pure and deterministic.

// FitScale returns the largest uniform scale that fits a frameW x frameH
// image inside a surfaceW x surfaceH surface, plus the centering offsets of
// the letterboxed image on the surface. Non-positive dimensions are treated
// as 1.
func FitScale(frameW, frameH, surfaceW, surfaceH int) (scale float64, offsetX, offsetY int) {
	if frameW < 1 {
		frameW = 1
	}
	if frameH < 1 {
		frameH = 1
	}
	if surfaceW < 1 {
		surfaceW = 1
	}
	if surfaceH < 1 {
		surfaceH = 1
	}
	scaleW := float64(surfaceW) / float64(frameW)
	scaleH := float64(surfaceH) / float64(frameH)
	scale = scaleW
	if scaleH < scale {
		scale = scaleH
	}
	scaledW := int(math.Round(float64(frameW) * scale))
	scaledH := int(math.Round(float64(frameH) * scale))
	offsetX = (surfaceW - scaledW) / 2
	offsetY = (surfaceH - scaledH) / 2
	return scale, offsetX, offsetY
}

// ToFrameSpace inverts a surface-space point into frame space. Points left
// of or above the letterbox map to 0; the result is clamped to
// [0, frameW] x [0, frameH].
func ToFrameSpace(px, py int, scale float64, offsetX, offsetY, frameW, frameH int) (fx, fy int) {
	if scale <= 0 {
		scale = 1
	}
	if px >= offsetX {
		fx = int(math.Round(float64(px-offsetX) / scale))
	}
	if py >= offsetY {
		fy = int(math.Round(float64(py-offsetY) / scale))
	}
	fx = clamp(fx, 0, frameW)
	fy = clamp(fy, 0, frameH)
	return fx, fy
}

// ToSurfaceSpace is the forward transform from frame space onto the surface.
func ToSurfaceSpace(fx, fy int, scale float64, offsetX, offsetY int) (px, py int) {
	px = int(math.Round(float64(fx)*scale)) + offsetX
	py = int(math.Round(float64(fy)*scale)) + offsetY
	return px, py
}

// RectContains reports whether (px, py) lies within the rectangle
// (x1,y1)-(x2,y2) using inclusive bounds on all four edges. The rectangle
// must be canonical (x1 <= x2, y1 <= y2).
func RectContains(x1, y1, x2, y2, px, py int) bool {
	return px >= x1 && px <= x2 && py >= y1 && py <= y2
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
