package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/capture"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/images"
)

// CycleSource supplies completed detection cycles without blocking the UI
// thread. Poll returns ok=false when no cycle is pending.
type CycleSource interface {
	Poll() (capture.Frame, detect.Outcome, []zones.Zone, bool)
}

// PipelineView is the UI surface updated with each detection cycle.
type PipelineView interface {
	UpdatePreview(img image.Image)
	SetStatus(text string)
}

// PipelinePresenter drains cycle events on the UI tick, annotates the frame
// with detection boxes and zone outlines, and pushes a status line.
type PipelinePresenter struct {
	Enabled func() bool
	Source  CycleSource
	View    PipelineView
	logger  *slog.Logger
}

// NewPipelinePresenter constructs a pipeline presenter.
func NewPipelinePresenter(enabled func() bool, source CycleSource, view PipelineView, logger *slog.Logger) *PipelinePresenter {
	return &PipelinePresenter{Enabled: enabled, Source: source, View: view, logger: logger}
}

// ProcessCycle handles at most one pending cycle per tick.
func (p *PipelinePresenter) ProcessCycle() {
	if p == nil || p.Enabled == nil || p.Source == nil || p.View == nil {
		return
	}
	if !p.Enabled() {
		return
	}
	frame, out, zs, ok := p.Source.Poll()
	if !ok || frame.Image == nil {
		return
	}
	p.View.UpdatePreview(images.Annotate(frame.Image, out.Classified, zs))
	p.View.SetStatus(statusText(out))
	if out.AnyDetected && p.logger != nil {
		p.logger.Info("detection cycle",
			"sequence", frame.Sequence,
			"actionable", out.ActionableDetected,
			"max_confidence", out.MaxConfidence,
			"detections", len(out.Classified),
		)
	}
}

func statusText(out detect.Outcome) string {
	switch {
	case out.ActionableDetected:
		return fmt.Sprintf("Phone detected (%.2f)", out.MaxConfidence)
	case out.AnyDetected:
		return fmt.Sprintf("Phone in excluded area (%.2f)", out.MaxConfidence)
	default:
		return "Monitoring..."
	}
}
