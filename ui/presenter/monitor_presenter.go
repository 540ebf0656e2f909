package presenter

import (
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/capture"
)

// MonitorModel provides enabled state access.
type MonitorModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// SchedulerContract narrows what the presenter needs from the capture layer.
type SchedulerContract interface {
	Start(onFrame func(capture.Frame)) bool
	Stop()
}

// AlertSessionContract exposes the stop-time transition of the alert session.
type AlertSessionContract interface {
	Reset()
}

// MonitorView updates UI elements affected by monitor toggling.
type MonitorView interface {
	PreviewReset()
	SettingsEditable(bool)
}

// MonitorPresenter owns presentation logic for starting and stopping the
// capture-detect loop.
type MonitorPresenter struct {
	model     MonitorModel
	scheduler SchedulerContract
	session   AlertSessionContract
	onFrame   func(capture.Frame)
	view      MonitorView
}

func NewMonitorPresenter(model MonitorModel, scheduler SchedulerContract, session AlertSessionContract, onFrame func(capture.Frame), view MonitorView) *MonitorPresenter {
	return &MonitorPresenter{model: model, scheduler: scheduler, session: session, onFrame: onFrame, view: view}
}

// Enable starts the capture scheduler with the pipeline callback. Idempotent.
func (c *MonitorPresenter) Enable() {
	if c == nil || c.model == nil || c.scheduler == nil || c.view == nil || c.session == nil {
		return
	}
	if c.model.Enabled() { // already enabled
		return
	}
	c.scheduler.Start(c.onFrame)
	c.model.SetEnabled(true)
	c.view.SettingsEditable(false)
}

// Disable stops the scheduler and clears the alert latch, resetting the
// preview. Open alert records stay; only dismissal removes them. Idempotent.
func (c *MonitorPresenter) Disable() {
	if c == nil || c.model == nil || c.scheduler == nil || c.view == nil || c.session == nil {
		return
	}
	if !c.model.Enabled() { // already disabled
		return
	}
	c.scheduler.Stop()
	c.model.SetEnabled(false)
	c.session.Reset()
	c.view.PreviewReset()
	c.view.SettingsEditable(true)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *MonitorPresenter) Toggle() {
	if c == nil || c.model == nil {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}
