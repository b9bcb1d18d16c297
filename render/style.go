package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/charazer/kana-game-sub000/engine"
)

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	styleEcho    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(30, 30, 40))
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)

	styleToken     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTokenNear = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleHit       = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleMiss      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleDanger    = tcell.StyleDefault.Background(tcell.NewRGBColor(60, 0, 0))
)

// floatStyle colors feedback text by what it reports
func floatStyle(kind engine.FloatKind) tcell.Style {
	switch kind {
	case engine.FloatPoints:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case engine.FloatCombo:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case engine.FloatLife:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case engine.FloatSpeed:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	default:
		return styleDefault
	}
}
