package presenter

import (
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/alert"
)

// AlertSessionSource reads the alert session on the UI tick. Tk widgets must
// only be touched from the Tk event loop, so the alert window is synced by
// polling here rather than from the session callbacks.
type AlertSessionSource interface {
	State() alert.State
	Records() []alert.Record
}

// AlertView mirrors the open alert records into the alert window.
type AlertView interface {
	SyncRecords(records []alert.Record)
	SetAlerting(alerting bool)
}

// AlertPresenter polls the session and keeps the alert window in step.
type AlertPresenter struct {
	session AlertSessionSource
	view    AlertView
}

// NewAlertPresenter returns a new AlertPresenter.
func NewAlertPresenter(session AlertSessionSource, view AlertView) *AlertPresenter {
	return &AlertPresenter{session: session, view: view}
}

// Tick pushes the current session state into the view.
func (p *AlertPresenter) Tick() {
	if p == nil || p.session == nil || p.view == nil {
		return
	}
	p.view.SyncRecords(p.session.Records())
	p.view.SetAlerting(p.session.State() == alert.StateAlerting)
}
