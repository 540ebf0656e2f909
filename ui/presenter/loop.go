package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick/ProcessCycle on the sub-presenters and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Pipeline *PipelinePresenter
	Alerts   *AlertPresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, pipeline *PipelinePresenter, alerts *AlertPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Pipeline: pipeline, Alerts: alerts, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Pipeline != nil {
		l.Pipeline.ProcessCycle()
	}
	if l.Alerts != nil {
		l.Alerts.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
