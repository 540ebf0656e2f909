package app

import (
	"errors"
	"image"
	"log/slog"
	"testing"
	"time"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/alert"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/capture"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"
)

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type fakeDetector struct {
	detections []detect.RawDetection
	err        error
	calls      int
}

func (d *fakeDetector) Infer(img *image.RGBA, conf float64) ([]detect.RawDetection, error) {
	d.calls++
	return d.detections, d.err
}

func testFrame(seq uint64) capture.Frame {
	return capture.Frame{
		Image:      image.NewRGBA(image.Rect(0, 0, 800, 600)),
		CapturedAt: time.Now(),
		Sequence:   seq,
	}
}

func newTestPipeline(d detect.Detector) (*Pipeline, *alert.SessionManager) {
	session := alert.NewSessionManager(alert.Callbacks{}, discardLogger())
	filter := detect.NewFilter(0.5, discardLogger())
	return NewPipeline(d, filter, zones.NewSet(nil), session, discardLogger()), session
}

func TestPipeline_ActionableCycleOpensRecordAndPublishes(t *testing.T) {
	d := &fakeDetector{detections: []detect.RawDetection{
		{Confidence: 0.9, Box: image.Rect(50, 50, 150, 150)},
	}}
	p, session := newTestPipeline(d)

	p.OnFrame(testFrame(1))

	if session.State() != alert.StateAlerting || session.OpenCount() != 1 {
		t.Fatalf("session state=%v open=%d", session.State(), session.OpenCount())
	}
	select {
	case ev := <-p.Events():
		if !ev.Outcome.ActionableDetected || ev.Frame.Sequence != 1 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("cycle event not published")
	}
}

func TestPipeline_InferenceErrorSkipsCycle(t *testing.T) {
	d := &fakeDetector{err: errors.New("backend down")}
	p, session := newTestPipeline(d)

	p.OnFrame(testFrame(1))

	if session.State() != alert.StateIdle || session.OpenCount() != 0 {
		t.Fatal("failed cycle must not touch the alert session")
	}
	select {
	case <-p.Events():
		t.Fatal("failed cycle must not publish an event")
	default:
	}
}

func TestPipeline_LaggingConsumerGetsLatestEvent(t *testing.T) {
	d := &fakeDetector{}
	p, _ := newTestPipeline(d)

	p.OnFrame(testFrame(1))
	p.OnFrame(testFrame(2))

	select {
	case ev := <-p.Events():
		if ev.Frame.Sequence != 2 {
			t.Fatalf("stale event survived: sequence=%d", ev.Frame.Sequence)
		}
	default:
		t.Fatal("no event available")
	}
}
