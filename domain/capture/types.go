package capture

import (
	"image"
	"time"
)

// Frame is one captured screen image plus metadata. Frames are immutable
// once produced; downstream consumers that need to draw on one must copy it.
type Frame struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Grabber acquires one full-screen frame. Implementations may fail
// transiently; the scheduler retries after a fixed delay.
type Grabber interface {
	GrabFullScreen() (*image.RGBA, error)
}

// GrabberFunc adapts a plain function to the Grabber interface.
type GrabberFunc func() (*image.RGBA, error)

func (f GrabberFunc) GrabFullScreen() (*image.RGBA, error) { return f() }

// Stats summarises scheduler behaviour for instrumentation.
type Stats struct {
	Captures    uint64
	Failures    uint64
	LastCapture time.Time
	Sequence    uint64
}
