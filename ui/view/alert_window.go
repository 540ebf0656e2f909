package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/alert"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// AlertWindow mirrors the open alert records into a topmost toplevel. One row
// per record with a snapshot thumbnail and a dismiss button; the window
// closes itself when the last record goes.
type AlertWindow interface {
	SyncRecords(records []alert.Record)
	SetAlerting(alerting bool)
}

const (
	thumbW = 160
	thumbH = 90
)

type alertWindow struct {
	logger       *slog.Logger
	onDismiss    func(id uint64)
	onDismissAll func()

	win     *ToplevelWidget
	lastSig string
	photos  []*Img
}

// NewAlertWindow returns the window manager; nothing is shown until records
// arrive.
func NewAlertWindow(onDismiss func(id uint64), onDismissAll func(), logger *slog.Logger) AlertWindow {
	return &alertWindow{logger: logger, onDismiss: onDismiss, onDismissAll: onDismissAll}
}

// SyncRecords rebuilds the window when the record set changed. Called every
// UI tick, so an unchanged set must be cheap.
func (v *alertWindow) SyncRecords(records []alert.Record) {
	sig := recordSignature(records)
	if sig == v.lastSig {
		return
	}
	v.lastSig = sig
	v.destroy()
	if len(records) == 0 {
		return
	}
	v.build(records)
}

// SetAlerting keeps the window topmost while the latch is set.
func (v *alertWindow) SetAlerting(alerting bool) {
	if v.win == nil {
		return
	}
	topmost := 0
	if alerting {
		topmost = 1
	}
	WmAttributes(v.win.Window, "-topmost", topmost)
}

func (v *alertWindow) build(records []alert.Record) {
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle(fmt.Sprintf("Alerts (%d)", len(records)))
	WmAttributes(win.Window, "-topmost", 1)
	v.win = win
	for i, rec := range records {
		rowFrame := win.Frame(Borderwidth(1), Relief("ridge"))
		Grid(rowFrame, Row(i), Column(0), Sticky("we"), Padx("0.3m"), Pady("0.2m"))
		if rec.Snapshot != nil {
			thumb := images.ScaleToFit(rec.Snapshot, thumbW, thumbH)
			photo := NewPhoto(Data(images.EncodePNG(thumb)))
			v.photos = append(v.photos, photo)
			img := win.Label(Image(photo), Borderwidth(1), Relief("sunken"))
			Grid(img, In(rowFrame), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
		}
		text := fmt.Sprintf("Phone detected %s, confidence %.2f at %s",
			rec.Position, rec.Confidence, rec.OpenedAt.Format("15:04:05"))
		lbl := win.Label(Txt(text), Anchor("w"))
		Grid(lbl, In(rowFrame), Row(0), Column(1), Sticky("we"), Padx("0.3m"))
		id := rec.ID
		dismiss := win.Button(Txt("Dismiss"), Command(func() {
			if v.onDismiss != nil {
				v.onDismiss(id)
			}
		}))
		Grid(dismiss, In(rowFrame), Row(0), Column(2), Sticky("e"), Padx("0.2m"), Pady("0.2m"))
	}
	all := win.Button(Txt("Dismiss All"), Command(func() {
		if v.onDismissAll != nil {
			v.onDismissAll()
		}
	}))
	Grid(all, Row(len(records)), Column(0), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
}

func (v *alertWindow) destroy() {
	for _, p := range v.photos {
		if p != nil {
			p.Delete()
		}
	}
	v.photos = nil
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// recordSignature folds the record ids into a comparable string.
func recordSignature(records []alert.Record) string {
	if len(records) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%d,", r.ID)
	}
	return b.String()
}
