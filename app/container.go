package app

import (
	"log/slog"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/config"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/action"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/alert"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/capture"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/model"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/presenter"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Monitor   *model.MonitorModel
	Session   *model.SessionModel
	Zones     *zones.Set
	Filter    *detect.Filter
	Scheduler *capture.Scheduler
	Alerts    *alert.SessionManager
	Pipeline  *Pipeline
	RootView  *view.RootView

	// Presenters
	MonitorPresenter  *presenter.MonitorPresenter
	SessionPresenter  *presenter.SessionPresenter
	PipelinePresenter *presenter.PipelinePresenter
	AlertPresenter    *presenter.AlertPresenter
	Loop              *presenter.Loop
}

// BuildContainer constructs all components. Side-effects limited to loading
// the persisted zone file.
func BuildContainer(cfg *config.Config, logger *slog.Logger, detector detect.Detector, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Monitor = &model.MonitorModel{}
	c.Session = model.NewSessionModel()

	loaded, err := zones.Load(cfg.ZonesPath)
	if err != nil {
		logger.Error("zone file load failed, starting with no zones", "path", cfg.ZonesPath, "error", err)
	}
	c.Zones = zones.NewSet(loaded)

	c.Filter = detect.NewFilter(cfg.ConfidenceThreshold, logger)
	c.Alerts = alert.NewSessionManager(alert.Callbacks{
		Opened: func(alert.Record) { action.Beep() },
	}, logger)
	c.Scheduler = capture.NewScheduler(capture.ScreenGrabber(), cfg.CaptureIntervalSeconds, logger)
	c.Pipeline = NewPipeline(detector, c.Filter, c.Zones, c.Alerts, logger)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)

	// Presenters (the view methods are nil-safe before Build runs)
	c.MonitorPresenter = presenter.NewMonitorPresenter(c.Monitor, c.Scheduler, c.Alerts, c.Pipeline.OnFrame, c.RootView)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Monitor, c.RootView)
	c.PipelinePresenter = presenter.NewPipelinePresenter(c.Monitor.Enabled, c.Pipeline, c.RootView, logger)
	c.AlertPresenter = presenter.NewAlertPresenter(c.Alerts, c.RootView)
	return c
}
