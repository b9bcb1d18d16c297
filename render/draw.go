package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/charazer/kana-game-sub000/constants"
)

// Draw renders one frame and shows it
func (r *Renderer) Draw() {
	now := r.clock.Now()
	r.expire(now)

	r.screen.Clear()
	w, h := r.screen.Size()
	pf := r.Playfield()
	top := constants.HeaderRows

	// Danger zone band
	dangerTop := top + int(pf.DangerLine())
	for y := dangerTop; y < top+int(pf.Height); y++ {
		r.fill(0, y, w, styleDanger)
	}

	nearLine := pf.DangerLine() - constants.DangerZoneHeight
	for _, handle := range r.sortedHandles() {
		s := r.tokens[handle]
		style := styleToken
		if s.y >= nearLine {
			style = styleTokenNear
		}
		r.drawText(cell(s.x), top+cell(s.y), s.glyph, style)
	}

	for _, f := range r.flashes {
		style := styleMiss
		if f.success {
			style = styleHit
		}
		r.drawText(cell(f.x), top+cell(f.y), f.glyph, style)
	}

	for _, f := range r.floats {
		progress := float64(now.Sub(f.born)) / float64(constants.FloatTextDuration)
		y := f.y - constants.FloatTextRise*progress
		x := f.x - float64(runewidth.StringWidth(f.text))/2
		if x < 0 {
			x = 0
		}
		row := top + cell(y)
		if row < top {
			row = top
		}
		r.drawText(cell(x), row, f.text, floatStyle(f.kind))
	}

	// Header
	r.fill(0, 0, w, styleHUD)
	r.drawText(0, 0, r.hud.Line(), styleHUD)

	// Footer echo line
	footer := h - constants.FooterRows
	r.fill(0, footer, w, styleEcho)
	x := r.drawText(0, footer, " > "+r.echo, styleEcho)
	r.screen.SetContent(x, footer, ' ', nil, styleCursor)

	if len(r.overlay) > 0 {
		r.drawOverlay(w, h)
	}

	r.screen.Show()
}

func (r *Renderer) drawOverlay(w, h int) {
	width := 0
	for _, line := range r.overlay {
		width = max(width, runewidth.StringWidth(line))
	}
	width += 4

	left := max((w-width)/2, 0)
	top := max((h-len(r.overlay))/2-1, 0)

	for y := top; y < top+len(r.overlay)+2; y++ {
		r.fill(left, y, width, styleOverlay)
	}
	for i, line := range r.overlay {
		x := left + (width-runewidth.StringWidth(line))/2
		r.drawText(x, top+1+i, line, styleOverlay)
	}
}

// drawText writes s starting at column x and returns the column after it.
// Wide runes advance two columns; text past the right edge is clipped.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, c := range s {
		cw := runewidth.RuneWidth(c)
		if cw == 0 {
			continue
		}
		if x+cw > w {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, c, nil, style)
		}
		x += cw
	}
	return x
}

func (r *Renderer) fill(x, y, n int, style tcell.Style) {
	for i := 0; i < n; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func cell(v float64) int {
	return int(math.Floor(v))
}
