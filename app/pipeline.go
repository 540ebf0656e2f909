package app

import (
	"log/slog"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/alert"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/capture"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"
)

// CycleEvent carries one completed detection cycle from the capture goroutine
// to the UI tick loop. Zones holds the snapshot the cycle classified against
// so the preview overlay matches what was evaluated.
type CycleEvent struct {
	Frame   capture.Frame
	Outcome detect.Outcome
	Zones   []zones.Zone
}

// Pipeline runs one detection cycle per captured frame: infer, classify
// against the current zone snapshot, feed the alert session. It executes on
// the capture goroutine, so at most one cycle is in flight at a time.
type Pipeline struct {
	detector detect.Detector
	filter   *detect.Filter
	zones    *zones.Set
	session  *alert.SessionManager
	logger   *slog.Logger
	events   chan CycleEvent
}

// NewPipeline wires the cycle stages together.
func NewPipeline(detector detect.Detector, filter *detect.Filter, zs *zones.Set, session *alert.SessionManager, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		detector: detector,
		filter:   filter,
		zones:    zs,
		session:  session,
		logger:   logger,
		events:   make(chan CycleEvent, 1),
	}
}

// OnFrame processes one captured frame. Inference errors skip the cycle; the
// next frame retries naturally.
func (p *Pipeline) OnFrame(frame capture.Frame) {
	raw, err := p.detector.Infer(frame.Image, p.filter.ConfidenceThreshold())
	if err != nil {
		if p.logger != nil {
			p.logger.Error("inference failed, skipping cycle", "sequence", frame.Sequence, "error", err)
		}
		return
	}
	snapshot := p.zones.Snapshot()
	out := p.filter.Classify(raw, snapshot)
	p.session.OnOutcome(out, frame.CapturedAt, frame.Image)
	p.publish(CycleEvent{Frame: frame, Outcome: out, Zones: snapshot})
}

// publish hands the event to the UI without blocking the capture goroutine.
// When the UI lags, the stale event is replaced by the fresh one.
func (p *Pipeline) publish(ev CycleEvent) {
	select {
	case p.events <- ev:
	default:
		select {
		case <-p.events:
		default:
		}
		select {
		case p.events <- ev:
		default:
		}
	}
}

// Events is the consumer side; the UI tick loop drains it on its own schedule.
func (p *Pipeline) Events() <-chan CycleEvent {
	return p.events
}

// Poll performs a non-blocking receive of the pending cycle, if any.
func (p *Pipeline) Poll() (capture.Frame, detect.Outcome, []zones.Zone, bool) {
	select {
	case ev := <-p.events:
		return ev.Frame, ev.Outcome, ev.Zones, true
	default:
		return capture.Frame{}, detect.Outcome{}, nil, false
	}
}
