package images

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"
)

// Overlay colors. Actionable boxes draw green, suppressed boxes gray; zones
// use their stored color.
var (
	colorActionable = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	colorSuppressed = color.RGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
)

// Annotate clones the frame and draws detection boxes and zone outlines on
// the copy. The source frame is never written to because alert records may
// retain it.
func Annotate(frame *image.RGBA, classified []detect.ClassifiedDetection, zs []zones.Zone) *image.RGBA {
	if frame == nil {
		return nil
	}
	out := image.NewRGBA(frame.Bounds())
	draw.Draw(out, out.Bounds(), frame, frame.Bounds().Min, draw.Src)
	for _, z := range zs {
		drawRect(out, image.Rect(z.X1, z.Y1, z.X2, z.Y2), ParseHexColor(z.Color), 2)
	}
	for _, c := range classified {
		col := colorActionable
		if c.InExclusionZone {
			col = colorSuppressed
		}
		drawRect(out, c.Box, col, 3)
	}
	return out
}

// drawRect outlines r on img with the given stroke thickness, clipped to the
// image bounds.
func drawRect(img *image.RGBA, r image.Rectangle, col color.RGBA, thickness int) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < thickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setClipped(img, x, r.Min.Y+t, col)
			setClipped(img, x, r.Max.Y-1-t, col)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setClipped(img, r.Min.X+t, y, col)
			setClipped(img, r.Max.X-1-t, y, col)
		}
	}
}

func setClipped(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

// ParseHexColor converts "#rrggbb" to an RGBA color. Malformed strings fall
// back to red, matching the stored zone color default.
func ParseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{R: 0xff, A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 0xff, A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
