package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the tuning form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges,
// pushing accepted values into the running filter and scheduler.
type SettingsPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges()  // parses widget text, applies to live components, persists
	ResetDefaults() // restores stock threshold/interval and applies them
}

// SettingsSink receives validated values from the panel. Threshold apply may
// be rejected; the rejected value must leave the running state untouched.
type SettingsSink struct {
	ApplyThreshold func(v float64) error
	ApplyInterval  func(seconds float64)
}

type settingsPanel struct {
	cfg      *config.Config
	cfgPath  string
	sink     SettingsSink
	logger   *slog.Logger
	applyBtn *ButtonWidget
	resetBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewSettingsPanel creates the view bound to cfg.
func NewSettingsPanel(cfg *config.Config, cfgPath string, sink SettingsSink, logger *slog.Logger) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, sink: sink, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("threshold", "Confidence Threshold (0-1)", fmt.Sprintf("%.2f", c.ConfidenceThreshold))
	makeRow("interval", "Capture Interval Seconds", fmt.Sprintf("%.1f", c.CaptureIntervalSeconds))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	v.resetBtn = Button(Txt("Reset Defaults"), Command(func() { v.ResetDefaults() }))
	Grid(v.resetBtn, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

// ResetDefaults rewrites both fields with the stock values and applies them.
func (v *settingsPanel) ResetDefaults() {
	def := config.DefaultConfig()
	setField := func(id, value string) {
		if w := v.widgets[id]; w != nil {
			w.Delete("1.0", END)
			w.Insert("1.0", value)
		}
	}
	setField("threshold", fmt.Sprintf("%.2f", def.ConfidenceThreshold))
	setField("interval", fmt.Sprintf("%.1f", def.CaptureIntervalSeconds))
	v.ApplyChanges()
}

func (v *settingsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
	if v.resetBtn != nil {
		v.resetBtn.Configure(State(state))
	}
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	if w := v.widgets["threshold"]; w != nil {
		if f, ok := parseFloatField(v.text(w)); ok {
			if v.sink.ApplyThreshold != nil {
				if err := v.sink.ApplyThreshold(f); err != nil {
					if v.logger != nil {
						v.logger.Error("threshold rejected", "value", f, "error", err)
					}
					return
				}
			}
			cfg.ConfidenceThreshold = f
		}
	}
	if w := v.widgets["interval"]; w != nil {
		if f, ok := parseFloatField(v.text(w)); ok {
			if v.sink.ApplyInterval != nil {
				v.sink.ApplyInterval(f)
			}
			cfg.CaptureIntervalSeconds = f
		}
	}
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else {
		if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
}

// parsing helper (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
