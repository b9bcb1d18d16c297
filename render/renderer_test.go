package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/engine"
)

func newTestRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen, *engine.ManualScheduler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	clock := engine.NewManualScheduler(time.Unix(1700000000, 0))
	return NewRenderer(screen, clock), screen, clock
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c, _, _, _ := screen.GetContent(x, y)
		if c == 0 {
			c = ' '
		}
		b.WriteRune(c)
	}
	return b.String()
}

// TestPlayfieldExcludesChrome verifies header and footer rows are reserved
func TestPlayfieldExcludesChrome(t *testing.T) {
	r, _, _ := newTestRenderer(t, 80, 24)
	pf := r.Playfield()

	if pf.Width != 80 {
		t.Errorf("width = %v, want 80", pf.Width)
	}
	if want := float64(24 - constants.HeaderRows - constants.FooterRows); pf.Height != want {
		t.Errorf("height = %v, want %v", pf.Height, want)
	}
	if pf.DangerZone != constants.DangerZoneHeight {
		t.Errorf("danger zone = %v, want %v", pf.DangerZone, constants.DangerZoneHeight)
	}
}

// TestPlayfieldTinyScreen verifies the height never drops below one row
func TestPlayfieldTinyScreen(t *testing.T) {
	r, _, _ := newTestRenderer(t, 10, 1)
	if pf := r.Playfield(); pf.Height != 1 {
		t.Errorf("height = %v, want 1", pf.Height)
	}
}

// TestTokenDrawnAtPosition verifies glyph placement below the header
func TestTokenDrawnAtPosition(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 80, 24)
	h := r.CreateToken("ka", "か")
	r.MoveToken(h, 10.7, 5.2)
	r.Draw()

	c, _, _, _ := screen.GetContent(10, 5+constants.HeaderRows)
	if c != 'か' {
		t.Errorf("cell (10,%d) = %q, want か", 5+constants.HeaderRows, c)
	}

	r.DestroyToken(h)
	r.Draw()
	c, _, _, _ = screen.GetContent(10, 5+constants.HeaderRows)
	if c == 'か' {
		t.Error("destroyed token still drawn")
	}
}

// TestFlashExpires verifies a flashed token lingers then disappears
func TestFlashExpires(t *testing.T) {
	r, screen, clock := newTestRenderer(t, 80, 24)
	h := r.CreateToken("shi", "し")
	r.MoveToken(h, 4, 3)
	r.FlashToken(h, true)

	if r.ActiveTokens() != 0 {
		t.Fatalf("flashed token should leave the live set")
	}

	r.Draw()
	if c, _, _, _ := screen.GetContent(4, 3+constants.HeaderRows); c != 'し' {
		t.Errorf("flash cell = %q, want し", c)
	}
	if len(r.flashes) != 1 || !r.flashes[0].success {
		t.Errorf("expected one success flash, got %+v", r.flashes)
	}

	clock.Advance(constants.FlashDuration + time.Millisecond)
	r.Draw()
	if c, _, _, _ := screen.GetContent(4, 3+constants.HeaderRows); c == 'し' {
		t.Error("flash should have expired")
	}

	// flashing an unknown handle is ignored
	r.FlashToken(h, false)
	if len(r.flashes) != 0 {
		t.Error("unknown handle produced a flash")
	}
}

// TestFloatTextRisesAndExpires verifies floating feedback lifetime
func TestFloatTextRisesAndExpires(t *testing.T) {
	r, screen, clock := newTestRenderer(t, 80, 24)
	r.FloatText(40, 10, "+12", engine.FloatPoints)

	r.Draw()
	if !strings.Contains(rowText(screen, 10+constants.HeaderRows), "+12") {
		t.Errorf("float not drawn at spawn row: %q", rowText(screen, 10+constants.HeaderRows))
	}

	clock.Advance(constants.FloatTextDuration / 2)
	r.Draw()
	if !strings.Contains(rowText(screen, 9+constants.HeaderRows), "+12") {
		t.Errorf("float should have risen one row")
	}

	clock.Advance(constants.FloatTextDuration)
	r.Draw()
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(screen, y), "+12") {
			t.Fatalf("expired float still drawn on row %d", y)
		}
	}
}

// TestHeaderAndFooter verifies HUD and echo text
func TestHeaderAndFooter(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 80, 24)
	r.UpdateHUD(func(h *HUD) {
		h.Score = 42
		h.Combo = 3
		h.Mode = "challenge"
		h.Set = "hiragana"
		h.LosesLives = true
		h.Lives = 2
	})
	r.SetEcho("shi")
	r.Draw()

	header := rowText(screen, 0)
	for _, want := range []string{"score 42", "combo 3", "challenge hiragana", "lives"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q missing %q", header, want)
		}
	}
	if footer := rowText(screen, 23); !strings.Contains(footer, "> shi") {
		t.Errorf("footer %q missing echo", footer)
	}
}

// TestOverlayCentered verifies the overlay box is drawn mid-screen
func TestOverlayCentered(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 80, 24)
	r.SetOverlay("PAUSED")
	r.Draw()

	found := false
	for y := 8; y < 16; y++ {
		if strings.Contains(rowText(screen, y), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Error("overlay text not drawn near the middle")
	}

	r.SetOverlay()
	r.Draw()
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(screen, y), "PAUSED") {
			t.Fatal("cleared overlay still drawn")
		}
	}
}

// TestHUDLine covers the header formatting variants
func TestHUDLine(t *testing.T) {
	tests := []struct {
		name    string
		hud     HUD
		want    []string
		wantNot []string
	}{
		{
			name:    "practice hides lives",
			hud:     HUD{Score: 5, Mode: "practice", Set: "katakana"},
			want:    []string{"score 5", "practice katakana"},
			wantNot: []string{"lives"},
		},
		{
			name: "tiers and player",
			hud:  HUD{Mode: "challenge", Set: "mixed", Dakuten: true, Yoon: true, Player: "aki", Speed: 1.08},
			want: []string{"mixed +dakuten +yoon", "aki", "speed x1.08"},
		},
		{
			name: "life gauge",
			hud:  HUD{LosesLives: true, Lives: 1, MaxLives: 3},
			want: []string{"lives ♥··"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := tt.hud.Line()
			for _, w := range tt.want {
				if !strings.Contains(line, w) {
					t.Errorf("%q missing %q", line, w)
				}
			}
			for _, w := range tt.wantNot {
				if strings.Contains(line, w) {
					t.Errorf("%q should not contain %q", line, w)
				}
			}
		})
	}
}

// TestDrawClipsWideGlyphAtEdge verifies wide runes never straddle the edge
func TestDrawClipsWideGlyphAtEdge(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 10, 5)
	end := r.drawText(9, 1, "か", styleToken)
	if end != 9 {
		t.Errorf("end column = %d, want 9 (clipped)", end)
	}
	if c, _, _, _ := screen.GetContent(9, 1); c == 'か' {
		t.Error("wide glyph drawn past the edge")
	}
}
