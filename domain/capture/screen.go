package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// GrabFullScreen captures the whole primary screen as an RGBA image.
// Failures are transient (display locked, session switching) and retry-safe.
func GrabFullScreen() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture: grab full screen: %w", err)
	}
	return img, nil
}

// ScreenGrabber returns the platform screen-capture primitive as a Grabber.
func ScreenGrabber() Grabber { return GrabberFunc(GrabFullScreen) }
