package view

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/geometry"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/zones"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// ZoneOverlay manages the borderless window the user drags over a screen
// region to mark it as an exclusion zone. Confirming reads the window
// geometry in screen coordinates, which match frame coordinates for a
// full-screen capture.
type ZoneOverlay interface {
	OpenOrFocus()
	ClearAll()
}

// zonePalette cycles outline colors for successive zones.
var zonePalette = []string{"#ff0000", "#00ff00", "#0000ff", "#ff9900", "#9900ff"}

type zoneOverlay struct {
	logger    *slog.Logger
	zoneSet   *zones.Set
	zonesPath string
	win       *ToplevelWidget
}

// NewZoneOverlay creates a new overlay manager bound to the shared zone set.
func NewZoneOverlay(zoneSet *zones.Set, zonesPath string, logger *slog.Logger) ZoneOverlay {
	return &zoneOverlay{logger: logger, zoneSet: zoneSet, zonesPath: zonesPath}
}

func (v *zoneOverlay) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background("#008080"))
	win.WmTitle("Mark Excluded Area")
	v.win = win
	screenW, screenH := screenDimensions()
	initW, initH := screenW/3, screenH/3
	if initW < 1 {
		initW = 1
	}
	if initH < 1 {
		initH = 1
	}
	x, y := (screenW-initW)/2, (screenH-initH)/2
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", initW, initH, x, y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-transparentcolor", "#008080")
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background("#008080"))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Confirm [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.cancel))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

// ClearAll empties the zone set and rewrites the zone file.
func (v *zoneOverlay) ClearAll() {
	if v.zoneSet == nil {
		return
	}
	v.zoneSet.Clear()
	v.persist()
}

// minZonePx is the smallest accepted zone edge; anything smaller is a slip.
const minZonePx = 20

func (v *zoneOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	if rect, ok := parseZoneGeometry(geom); ok && v.zoneSet != nil {
		screenW, screenH := screenDimensions()
		// The window may hang partially off-screen; clamp both corners into
		// frame space (full-screen capture, so scale 1 and no letterbox).
		x1, y1 := geometry.ToFrameSpace(rect.Min.X, rect.Min.Y, 1, 0, 0, screenW, screenH)
		x2, y2 := geometry.ToFrameSpace(rect.Max.X, rect.Max.Y, 1, 0, 0, screenW, screenH)
		if x2-x1 < minZonePx || y2-y1 < minZonePx {
			if v.logger != nil {
				v.logger.Warn("exclusion zone too small, ignored", "zone", rect.String())
			}
			v.destroy()
			return
		}
		color := zonePalette[v.zoneSet.Len()%len(zonePalette)]
		v.zoneSet.Add(zones.New(x1, y1, x2, y2, color))
		v.persist()
		if v.logger != nil {
			v.logger.Info("exclusion zone added", "zone", rect.String(), "count", v.zoneSet.Len())
		}
	}
	v.destroy()
}

func (v *zoneOverlay) cancel() { v.destroy() }

func (v *zoneOverlay) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

func (v *zoneOverlay) persist() {
	if v.zonesPath == "" {
		return
	}
	if err := zones.Save(v.zonesPath, v.zoneSet.Snapshot()); err != nil && v.logger != nil {
		v.logger.Error("zone save failed", "path", v.zonesPath, "error", err)
	}
}

// screenDimensions returns the primary screen size.
// Currently returns static values; should be replaced with proper Tk winfo queries.
func screenDimensions() (int, int) {
	return 1920, 1080
}

// zoneGeomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y"
var zoneGeomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseZoneGeometry parses a Tk geometry string and returns the corresponding rectangle.
func parseZoneGeometry(g string) (image.Rectangle, bool) {
	g = strings.TrimSpace(g)
	m := zoneGeomRe.FindStringSubmatch(g)
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
