package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/capture"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"
)

type mockModel struct{ enabled bool }

func (m *mockModel) Enabled() bool     { return m.enabled }
func (m *mockModel) SetEnabled(b bool) { m.enabled = b }

type mockScheduler struct{ started, stopped int }

func (s *mockScheduler) Start(onFrame func(capture.Frame)) bool { s.started++; return true }
func (s *mockScheduler) Stop()                                  { s.stopped++ }

type mockSession struct{ resets int }

func (s *mockSession) Reset() { s.resets++ }

type mockView struct {
	reset, editableCalls int
	lastEditable         bool
}

func (v *mockView) PreviewReset()           { v.reset++ }
func (v *mockView) SettingsEditable(b bool) { v.editableCalls++; v.lastEditable = b }

func TestMonitorPresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockModel{}
	sched := &mockScheduler{}
	sess := &mockSession{}
	view := &mockView{}
	p := NewMonitorPresenter(m, sched, sess, func(capture.Frame) {}, view)

	// Enable
	p.Enable()
	if !m.Enabled() || sched.started != 1 || view.lastEditable || view.editableCalls != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d editableCalls=%d lastEditable=%v", m.Enabled(), sched.started, view.editableCalls, view.lastEditable)
	}
	// Enable again idempotent
	p.Enable()
	if sched.started != 1 {
		t.Fatalf("enable not idempotent: started=%d", sched.started)
	}

	// Disable
	p.Disable()
	if m.Enabled() || sched.stopped != 1 || sess.resets != 1 || view.reset != 1 || !view.lastEditable || view.editableCalls != 2 {
		t.Fatalf("disable failed: enabled=%v stopped=%d resets=%d reset=%d editableCalls=%d lastEditable=%v", m.Enabled(), sched.stopped, sess.resets, view.reset, view.editableCalls, view.lastEditable)
	}
	// Disable again idempotent
	p.Disable()
	if sched.stopped != 1 || sess.resets != 1 || view.reset != 1 {
		t.Fatalf("disable not idempotent: stopped=%d resets=%d reset=%d", sched.stopped, sess.resets, view.reset)
	}
}

func TestMonitorPresenter_Toggle(t *testing.T) {
	m := &mockModel{}
	sched := &mockScheduler{}
	sess := &mockSession{}
	view := &mockView{}
	p := NewMonitorPresenter(m, sched, sess, func(capture.Frame) {}, view)
	p.Toggle() // enable path
	if !m.Enabled() || sched.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	p.Toggle() // disable path
	if m.Enabled() || sched.stopped != 1 || sess.resets != 1 || view.reset != 1 {
		t.Fatalf("toggle disable failed")
	}
}

type mockCycleSource struct {
	frame capture.Frame
	out   detect.Outcome
	zs    []zones.Zone
	has   bool
}

func (s *mockCycleSource) Poll() (capture.Frame, detect.Outcome, []zones.Zone, bool) {
	if !s.has {
		return capture.Frame{}, detect.Outcome{}, nil, false
	}
	s.has = false
	return s.frame, s.out, s.zs, true
}

type mockPipelineView struct {
	previews int
	status   string
}

func (v *mockPipelineView) UpdatePreview(img image.Image) { v.previews++ }
func (v *mockPipelineView) SetStatus(text string)         { v.status = text }

func TestPipelinePresenter_ProcessCycle(t *testing.T) {
	src := &mockCycleSource{
		frame: capture.Frame{Image: image.NewRGBA(image.Rect(0, 0, 100, 100)), CapturedAt: time.Now(), Sequence: 1},
		out: detect.Outcome{
			AnyDetected:        true,
			ActionableDetected: true,
			MaxConfidence:      0.92,
		},
		has: true,
	}
	view := &mockPipelineView{}
	p := NewPipelinePresenter(func() bool { return true }, src, view, nil)

	p.ProcessCycle()
	if view.previews != 1 || view.status != "Phone detected (0.92)" {
		t.Fatalf("previews=%d status=%q", view.previews, view.status)
	}

	// No pending cycle: nothing changes.
	p.ProcessCycle()
	if view.previews != 1 {
		t.Fatalf("empty poll must not redraw: previews=%d", view.previews)
	}
}

func TestPipelinePresenter_DisabledSkipsPoll(t *testing.T) {
	src := &mockCycleSource{has: true}
	view := &mockPipelineView{}
	p := NewPipelinePresenter(func() bool { return false }, src, view, nil)
	p.ProcessCycle()
	if view.previews != 0 || !src.has {
		t.Fatal("disabled presenter must not consume cycles")
	}
}

func TestStatusText(t *testing.T) {
	if got := statusText(detect.Outcome{}); got != "Monitoring..." {
		t.Fatalf("idle status = %q", got)
	}
	if got := statusText(detect.Outcome{AnyDetected: true, MaxConfidence: 0.8}); got != "Phone in excluded area (0.80)" {
		t.Fatalf("excluded status = %q", got)
	}
}
