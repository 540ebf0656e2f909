package theme

// Centralized theming and styling initialization for the monitor UI.
// Provides palette constants and InitStyles to activate a base theme and
// configure semantic widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, cards
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, accents
	ColorDanger    = "#dc2626" // alerting state
	ColorAccent    = "#10b981" // actionable detection boxes
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleAlertLabel    = "alert.TLabel"
	StyleStatusLabel   = "status.TLabel"
)

// InitStyles applies the baseline theme and the semantic widget styles.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	// Alert rows in the alert window
	StyleConfigure(StyleAlertLabel,
		Foreground("white"),
		Background(ColorDanger),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	// Status line in the main window
	StyleConfigure(StyleStatusLabel,
		Foreground(ColorText),
		Background(ColorSurface),
		Padding("2p 1p"),
	)
}
