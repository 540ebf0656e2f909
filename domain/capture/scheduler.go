package capture

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// MinInterval is the lower clamp for the capture interval.
	MinInterval = 100 * time.Millisecond
	// DefaultInterval matches the historical default capture cadence.
	DefaultInterval = 1500 * time.Millisecond

	failureRetryDelay = time.Second
	stopTimeout       = 2 * time.Second
)

// Scheduler runs a single background goroutine that grabs one frame per
// interval and hands it to the frame callback. One frame is in flight at a
// time: the next grab does not begin until the callback returns, so frames
// arrive strictly in capture order.
type Scheduler struct {
	grab   Grabber
	logger *slog.Logger

	interval atomic.Int64 // time.Duration, read once per cycle
	running  atomic.Bool
	latest   atomic.Pointer[Frame]

	sequence atomic.Uint64
	captures atomic.Uint64
	failures atomic.Uint64

	mu     sync.Mutex // guards done/exited across Start/Stop
	done   chan struct{}
	exited chan struct{}
}

// NewScheduler constructs a stopped scheduler. intervalSeconds is clamped to
// MinInterval.
func NewScheduler(grab Grabber, intervalSeconds float64, logger *slog.Logger) *Scheduler {
	s := &Scheduler{grab: grab, logger: logger}
	s.SetInterval(intervalSeconds)
	return s
}

// Start begins the capture loop, invoking onFrame on the background
// goroutine once per successful cycle. A second Start while running is a
// no-op and returns false. The interval clock restarts from zero.
func (s *Scheduler) Start(onFrame func(Frame)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return false
	}
	s.done = make(chan struct{})
	s.exited = make(chan struct{})
	s.running.Store(true)
	go s.loop(onFrame, s.done, s.exited)
	return true
}

// Stop signals the loop to exit and blocks until it has, bounded by
// stopTimeout. A wedged grab must not hang the caller indefinitely; after
// the timeout Stop proceeds regardless. Safe to call while the loop is
// mid-sleep or mid-grab, and a no-op when not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return
	}
	close(s.done)
	select {
	case <-s.exited:
	case <-time.After(stopTimeout):
		if s.logger != nil {
			s.logger.Warn("capture loop did not exit within stop timeout")
		}
	}
	s.running.Store(false)
}

// SetInterval updates the capture interval, clamped to MinInterval,
// effective from the next cycle.
func (s *Scheduler) SetInterval(seconds float64) {
	d := time.Duration(seconds * float64(time.Second))
	if d < MinInterval {
		d = MinInterval
	}
	s.interval.Store(int64(d))
}

// Interval returns the current capture interval.
func (s *Scheduler) Interval() time.Duration { return time.Duration(s.interval.Load()) }

// Running reports whether the capture loop is active.
func (s *Scheduler) Running() bool { return s.running.Load() }

// LatestFrame returns the most recently captured frame, or the zero Frame.
func (s *Scheduler) LatestFrame() Frame {
	if f := s.latest.Load(); f != nil {
		return *f
	}
	return Frame{}
}

// Stats returns capture counters for instrumentation.
func (s *Scheduler) Stats() Stats {
	f := s.LatestFrame()
	return Stats{
		Captures:    s.captures.Load(),
		Failures:    s.failures.Load(),
		LastCapture: f.CapturedAt,
		Sequence:    f.Sequence,
	}
}

func (s *Scheduler) loop(onFrame func(Frame), done, exited chan struct{}) {
	defer close(exited)
	for {
		select {
		case <-done:
			return
		default:
		}

		start := time.Now()
		img, err := s.grab.GrabFullScreen()
		if err != nil {
			// A single bad cycle must never terminate the loop.
			s.failures.Add(1)
			if s.logger != nil {
				s.logger.Error("screen capture failed", "error", err)
			}
			if !s.sleep(done, failureRetryDelay) {
				return
			}
			continue
		}

		frame := Frame{Image: img, CapturedAt: time.Now(), Sequence: s.sequence.Add(1)}
		s.latest.Store(&frame)
		s.captures.Add(1)
		if onFrame != nil {
			onFrame(frame)
		}

		if wait := time.Duration(s.interval.Load()) - time.Since(start); wait > 0 {
			if !s.sleep(done, wait) {
				return
			}
		}
	}
}

// sleep waits for d, returning false when the stop signal arrives first.
func (s *Scheduler) sleep(done chan struct{}, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-done:
		return false
	case <-t.C:
		return true
	}
}
