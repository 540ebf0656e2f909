package model

import (
	"sync/atomic"
)

// MonitorModel tracks whether monitoring is enabled. The zero value is disabled and usable.
// Concurrency-safe via atomic Bool because UI callbacks and presenter ticks may race.
type MonitorModel struct{ enabled atomic.Bool }

// Enabled reports whether monitoring is currently enabled.
func (m *MonitorModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag.
func (m *MonitorModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	prev := m.enabled.Load()
	if prev == b { // no change
		return
	}
	m.enabled.Store(b)
}
