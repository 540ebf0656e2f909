package presenter

import (
	"time"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/model"
)

// MonitorEnabledModel reports whether monitoring is enabled.
type MonitorEnabledModel interface{ Enabled() bool }

// SessionView displays formatted session and total durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter formats session and total durations from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	mon  MonitorEnabledModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, mon MonitorEnabledModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, mon: mon, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.mon == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.mon.Enabled(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
