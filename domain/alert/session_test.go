package alert

import (
	"image"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
)

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type callbackLog struct {
	mu        sync.Mutex
	opened    []Record
	dismissed []uint64
}

func (c *callbackLog) callbacks() Callbacks {
	return Callbacks{
		Opened: func(r Record) {
			c.mu.Lock()
			c.opened = append(c.opened, r)
			c.mu.Unlock()
		},
		Dismissed: func(id uint64) {
			c.mu.Lock()
			c.dismissed = append(c.dismissed, id)
			c.mu.Unlock()
		},
	}
}

func actionableOutcome(conf float64) detect.Outcome {
	return detect.Outcome{
		AnyDetected:        true,
		ActionableDetected: true,
		MaxConfidence:      conf,
		Classified: []detect.ClassifiedDetection{
			{RawDetection: detect.RawDetection{Confidence: conf, Box: image.Rect(50, 50, 150, 150)}},
		},
	}
}

func testSnapshot() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 800, 600))
}

func TestSessionManager_ActionableOutcomeOpensRecord(t *testing.T) {
	cb := &callbackLog{}
	m := NewSessionManager(cb.callbacks(), discardLogger())

	at := time.Now()
	m.OnOutcome(actionableOutcome(0.9), at, testSnapshot())

	if m.State() != StateAlerting {
		t.Fatalf("state = %v, want alerting", m.State())
	}
	recs := m.Records()
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].ID != 1 || recs[0].Confidence != 0.9 || !recs[0].OpenedAt.Equal(at) {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
	if recs[0].Position != "left-top (50,50)" {
		t.Fatalf("position = %q", recs[0].Position)
	}
	if len(cb.opened) != 1 || cb.opened[0].ID != 1 {
		t.Fatalf("opened callback log: %+v", cb.opened)
	}
}

// Latch persistence: a detection-free cycle after an actionable one must not
// close the session or touch the open records.
func TestSessionManager_LatchSurvivesQuietCycles(t *testing.T) {
	m := NewSessionManager(Callbacks{}, discardLogger())

	m.OnOutcome(actionableOutcome(0.8), time.Now(), testSnapshot())
	m.OnOutcome(detect.Outcome{}, time.Now(), testSnapshot())
	m.OnOutcome(detect.Outcome{}, time.Now(), testSnapshot())

	if m.State() != StateAlerting {
		t.Fatal("quiet cycles must not clear the latch")
	}
	if m.OpenCount() != 1 {
		t.Fatalf("open records = %d, want 1", m.OpenCount())
	}
}

// Every actionable cycle opens a fresh record, no deduplication.
func TestSessionManager_RecordPerActionableCycle(t *testing.T) {
	m := NewSessionManager(Callbacks{}, discardLogger())

	for i := 0; i < 3; i++ {
		m.OnOutcome(actionableOutcome(0.7), time.Now(), testSnapshot())
	}

	recs := m.Records()
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	for i, r := range recs {
		if r.ID != uint64(i+1) {
			t.Fatalf("record %d has id %d, ids must be sequential", i, r.ID)
		}
	}
}

func TestSessionManager_DismissLastRecordClearsLatch(t *testing.T) {
	cb := &callbackLog{}
	m := NewSessionManager(cb.callbacks(), discardLogger())

	m.OnOutcome(actionableOutcome(0.9), time.Now(), testSnapshot())
	m.OnOutcome(actionableOutcome(0.6), time.Now(), testSnapshot())

	m.Dismiss(1)
	if m.State() != StateAlerting {
		t.Fatal("one record still open, latch must hold")
	}
	m.Dismiss(2)
	if m.State() != StateIdle {
		t.Fatal("dismissing the last record must clear the latch")
	}
	if got := cb.dismissed; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("dismissed callback log: %v", got)
	}
}

func TestSessionManager_DismissUnknownIDIsNoOp(t *testing.T) {
	cb := &callbackLog{}
	m := NewSessionManager(cb.callbacks(), discardLogger())

	m.OnOutcome(actionableOutcome(0.9), time.Now(), testSnapshot())
	m.Dismiss(42)

	if m.State() != StateAlerting || m.OpenCount() != 1 {
		t.Fatal("unknown id must not change anything")
	}
	if len(cb.dismissed) != 0 {
		t.Fatalf("unknown id fired dismissed callback: %v", cb.dismissed)
	}
}

// Idempotence: dismissing all alerts twice leaves the same state as once.
func TestSessionManager_DismissAllIsIdempotent(t *testing.T) {
	m := NewSessionManager(Callbacks{}, discardLogger())

	m.OnOutcome(actionableOutcome(0.9), time.Now(), testSnapshot())
	m.OnOutcome(actionableOutcome(0.8), time.Now(), testSnapshot())

	m.DismissAll()
	if m.State() != StateIdle || m.OpenCount() != 0 {
		t.Fatalf("after DismissAll: state=%v open=%d", m.State(), m.OpenCount())
	}
	m.DismissAll()
	if m.State() != StateIdle || m.OpenCount() != 0 {
		t.Fatal("repeated DismissAll must be a no-op")
	}
}

// Stopping the monitor clears the latch but never discards alert history.
func TestSessionManager_ResetKeepsOpenRecords(t *testing.T) {
	m := NewSessionManager(Callbacks{}, discardLogger())

	m.OnOutcome(actionableOutcome(0.9), time.Now(), testSnapshot())
	m.Reset()

	if m.OpenCount() != 1 {
		t.Fatal("reset must not discard open records")
	}
	if m.State() != StateIdle {
		t.Fatal("reset must clear the latch")
	}

	// The next actionable cycle re-latches and continues the id sequence.
	m.OnOutcome(actionableOutcome(0.6), time.Now(), testSnapshot())
	if m.State() != StateAlerting || m.OpenCount() != 2 {
		t.Fatalf("after re-latch: state=%v open=%d", m.State(), m.OpenCount())
	}
}

func TestSessionManager_NewIDsContinueAfterDismissAll(t *testing.T) {
	m := NewSessionManager(Callbacks{}, discardLogger())

	m.OnOutcome(actionableOutcome(0.9), time.Now(), testSnapshot())
	m.DismissAll()
	m.OnOutcome(actionableOutcome(0.9), time.Now(), testSnapshot())

	recs := m.Records()
	if len(recs) != 1 || recs[0].ID != 2 {
		t.Fatalf("ids must not be reused: %+v", recs)
	}
}
