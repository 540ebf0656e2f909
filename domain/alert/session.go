// Package alert holds the debounced alert-session state machine. Once an
// actionable detection flips the session to Alerting it stays latched there
// through detection-free cycles; only explicit dismissal returns it to Idle.
package alert

import (
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
)

// State enumerates the two session states.
type State int

const (
	StateIdle State = iota
	StateAlerting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAlerting:
		return "alerting"
	default:
		return "unknown"
	}
}

// Record is one open, user-dismissible notification of an actionable
// detection. Records are never auto-closed.
type Record struct {
	ID         uint64
	OpenedAt   time.Time
	Confidence float64
	Position   string
	Snapshot   *image.RGBA
}

// Callbacks let the presentation layer react to session changes. Opened runs
// on whatever goroutine delivered the outcome; Dismissed runs on the
// dismissing caller's goroutine.
type Callbacks struct {
	Opened    func(Record)
	Dismissed func(id uint64)
}

// SessionManager tracks the Idle/Alerting latch and the ordered collection
// of open records. Written by the capture-side pipeline (OnOutcome) and the
// UI (Dismiss/DismissAll/Reset) concurrently.
type SessionManager struct {
	mu      sync.Mutex
	state   State
	records []Record
	nextID  uint64
	cb      Callbacks
	logger  *slog.Logger
}

// NewSessionManager returns an Idle session with no open records.
func NewSessionManager(cb Callbacks, logger *slog.Logger) *SessionManager {
	return &SessionManager{state: StateIdle, nextID: 1, cb: cb, logger: logger}
}

// OnOutcome applies one filter cycle. An actionable outcome always opens a
// fresh record (one per actionable cycle, no deduplication) and sets the
// latch. A non-actionable outcome while latched is a quiescent tick: no new
// record, no reset.
func (m *SessionManager) OnOutcome(out detect.Outcome, frameAt time.Time, snapshot *image.RGBA) {
	if !out.ActionableDetected {
		return
	}
	rec := m.openRecord(out, frameAt, snapshot)
	if m.logger != nil {
		m.logger.Info("alert opened", "id", rec.ID, "confidence", rec.Confidence, "position", rec.Position)
	}
	if m.cb.Opened != nil {
		m.cb.Opened(rec)
	}
}

func (m *SessionManager) openRecord(out detect.Outcome, frameAt time.Time, snapshot *image.RGBA) Record {
	position := "unknown"
	if snapshot != nil {
		b := snapshot.Bounds()
		for _, c := range out.Classified {
			if !c.InExclusionZone {
				position = detect.PositionLabel(b.Dx(), b.Dy(), c.Box)
				break
			}
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := Record{
		ID:         m.nextID,
		OpenedAt:   frameAt,
		Confidence: out.MaxConfidence,
		Position:   position,
		Snapshot:   snapshot,
	}
	m.nextID++
	m.records = append(m.records, rec)
	m.state = StateAlerting
	return rec
}

// Dismiss removes one record by id; unknown ids are no-ops. Dismissing the
// last record clears the latch.
func (m *SessionManager) Dismiss(id uint64) {
	m.mu.Lock()
	found := false
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			found = true
			break
		}
	}
	if found && len(m.records) == 0 {
		m.state = StateIdle
	}
	m.mu.Unlock()
	if found && m.cb.Dismissed != nil {
		m.cb.Dismissed(id)
	}
}

// DismissAll clears the collection and the latch unconditionally. Safe to
// call repeatedly.
func (m *SessionManager) DismissAll() {
	m.mu.Lock()
	dismissed := make([]uint64, 0, len(m.records))
	for _, r := range m.records {
		dismissed = append(dismissed, r.ID)
	}
	m.records = nil
	m.state = StateIdle
	m.mu.Unlock()
	if m.cb.Dismissed != nil {
		for _, id := range dismissed {
			m.cb.Dismissed(id)
		}
	}
}

// Reset is invoked when monitoring stops. It clears the latch but leaves the
// open records intact on purpose: stopping capture must not discard alert
// history, only dismissal does.
func (m *SessionManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateIdle
}

// State returns the current latch state.
func (m *SessionManager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Records returns a copy of the open records in open order.
func (m *SessionManager) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// OpenCount reports the number of open records.
func (m *SessionManager) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
