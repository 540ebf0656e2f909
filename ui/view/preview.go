package view

import (
	"image"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// MonitorPreview shows the annotated capture frame. It owns one LabelWidget
// and provides methods to update or reset it.
type MonitorPreview interface {
	UpdatePreview(img image.Image)
	Reset()
}

type monitorPreview struct {
	previewLabel *LabelWidget
	prevPhoto    *Img // last Tk photo image instance
}

// Old photos are disposed before replacement so off-screen image data does
// not accumulate in the Tk interpreter.

const (
	maxPreviewW = 640
	maxPreviewH = 360
)

// NewMonitorPreview creates the preview label, grids it and returns the view.
// The preview spans columns 0-4 of the provided row.
func NewMonitorPreview(row int) MonitorPreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, 320, 180))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &monitorPreview{previewLabel: label, prevPhoto: photo}
}

func (v *monitorPreview) UpdatePreview(img image.Image) {
	if v.previewLabel == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, maxPreviewW, maxPreviewH)
	pngBytes := images.EncodePNG(scaled)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.previewLabel.Configure(Image(newPhoto))
}

func (v *monitorPreview) Reset() {
	if v.previewLabel == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 320, 180))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.previewLabel.Configure(Image(v.prevPhoto))
}
