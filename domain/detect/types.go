package detect

import (
	"fmt"
	"image"
)

// RawDetection is one candidate box returned by the detection capability.
// Box coordinates are in frame pixel space.
type RawDetection struct {
	ClassID    int
	Confidence float64
	Box        image.Rectangle
}

// Center returns the box center point, the reference used for zone tests.
func (d RawDetection) Center() (int, int) {
	return (d.Box.Min.X + d.Box.Max.X) / 2, (d.Box.Min.Y + d.Box.Max.Y) / 2
}

// ClassifiedDetection is a RawDetection tagged with its exclusion-zone
// verdict. Recomputed every cycle, never persisted.
type ClassifiedDetection struct {
	RawDetection
	InExclusionZone bool
}

// Outcome is the filter's per-cycle output. ActionableDetected is true iff
// at least one surviving detection lies outside every exclusion zone;
// MaxConfidence covers all surviving detections, excluded or not.
type Outcome struct {
	AnyDetected        bool
	ActionableDetected bool
	Classified         []ClassifiedDetection
	MaxConfidence      float64
}

// Detector is the external detection capability: given an image and a
// confidence cutoff it returns candidate boxes. Synchronous and blocking;
// its latency bounds the achievable capture rate.
type Detector interface {
	Infer(img *image.RGBA, confidenceThreshold float64) ([]RawDetection, error)
}

// PositionLabel describes where a box sits on a frameW x frameH frame using
// screen thirds, e.g. "left-top (120,80)". The box top-left corner anchors
// the label.
func PositionLabel(frameW, frameH int, box image.Rectangle) string {
	x, y := box.Min.X, box.Min.Y
	xPos := "left"
	switch {
	case x >= 2*frameW/3:
		xPos = "right"
	case x >= frameW/3:
		xPos = "center"
	}
	yPos := "top"
	switch {
	case y >= 2*frameH/3:
		yPos = "bottom"
	case y >= frameH/3:
		yPos = "middle"
	}
	return fmt.Sprintf("%s-%s (%d,%d)", xPos, yPos, x, y)
}
