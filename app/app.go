package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/config"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/presenter"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/theme"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/view"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	c       *AppContainer
	afterID string

	zoneOverlay view.ZoneOverlay
}

// NewApp sets up the main window. The container carries everything else.
func NewApp(title string, width, height int, c *AppContainer) *app {
	a := &app{cfg: c.Config, logger: c.Logger, c: c}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI, arms the tick loop and blocks in the Tk event loop.
func (a *app) Start() {
	theme.InitStyles()

	a.zoneOverlay = view.NewZoneOverlay(a.c.Zones, a.cfg.ZonesPath, a.logger)

	sink := view.SettingsSink{
		ApplyThreshold: a.c.Filter.SetConfidenceThreshold,
		ApplyInterval:  a.c.Scheduler.SetInterval,
	}
	a.c.RootView.Build(sink, view.Handlers{
		OnToggleMonitor: a.c.MonitorPresenter.Toggle,
		OnMarkZone:      a.zoneOverlay.OpenOrFocus,
		OnClearZones:    a.zoneOverlay.ClearAll,
		OnDismiss:       a.c.Alerts.Dismiss,
		OnDismissAll:    a.c.Alerts.DismissAll,
		OnExit:          a.exitHandler,
	})

	a.c.Loop = presenter.NewLoop(a.c.SessionPresenter, a.c.PipelinePresenter, a.c.AlertPresenter, a.scheduleUpdate)

	a.scheduleUpdate()

	App.Wait()
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	// Stop the capture goroutine before tearing down the interpreter.
	a.c.MonitorPresenter.Disable()
	Destroy(App)
}
