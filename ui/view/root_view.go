package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/config"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/alert"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session  SessionStats
	Settings SettingsPanel
	Preview  MonitorPreview
	Alerts   AlertWindow

	// Widgets
	StatusLabel *LabelWidget
	previewRow  int
}

// Handlers groups the user-action callbacks wired into the layout.
type Handlers struct {
	OnToggleMonitor func()
	OnMarkZone      func()
	OnClearZones    func()
	OnDismiss       func(id uint64)
	OnDismissAll    func()
	OnExit          func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. The settings sink pushes accepted values into
// the running components.
func (rv *RootView) Build(sink SettingsSink, h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: session stats, status label, buttons frame
	rv.Session = NewSessionStats(0, 0)
	rv.StatusLabel = Label(Txt("Stopped"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	monitorBtn := Button(Txt("Toggle Monitoring"), Command(h.OnToggleMonitor))
	Grid(monitorBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	zoneBtn := Button(Txt("Mark Excluded Area"), Command(h.OnMarkZone))
	Grid(zoneBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clearBtn := Button(Txt("Clear Excluded Areas"), Command(h.OnClearZones))
	Grid(clearBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	dismissBtn := Button(Txt("Dismiss All Alerts"), Command(h.OnDismissAll))
	Grid(dismissBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(4), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Settings panel rows
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, sink, rv.logger)
	endRow := rv.Settings.Build(1)
	rv.previewRow = endRow

	// Preview placement
	rv.Preview = NewMonitorPreview(rv.previewRow)

	// Alert window manager (nothing shown until records arrive)
	rv.Alerts = NewAlertWindow(h.OnDismiss, h.OnDismissAll, rv.logger)
}

// SetStatus updates the status label text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetSettingsEditable toggles settings panel editability.
func (rv *RootView) SetSettingsEditable(enabled bool) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetEditable(enabled)
	}
}

// UpdatePreview proxies to the underlying preview view.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(img)
	}
}

// SetSession updates both session and total monitoring durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

// SyncRecords proxies to the alert window.
func (rv *RootView) SyncRecords(records []alert.Record) {
	if rv != nil && rv.Alerts != nil {
		rv.Alerts.SyncRecords(records)
	}
}

// SetAlerting proxies to the alert window.
func (rv *RootView) SetAlerting(alerting bool) {
	if rv != nil && rv.Alerts != nil {
		rv.Alerts.SetAlerting(alerting)
	}
}

// --- MonitorPresenter view contract methods ---
// PreviewReset clears the monitor preview and the status line.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
	rv.SetStatus("Stopped")
}

// SettingsEditable redirects to SetSettingsEditable to satisfy MonitorView.
func (rv *RootView) SettingsEditable(b bool) { rv.SetSettingsEditable(b) }
