package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/charazer/kana-game-sub000/audio"
	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/engine"
	"github.com/charazer/kana-game-sub000/input"
	"github.com/charazer/kana-game-sub000/render"
	"github.com/charazer/kana-game-sub000/store"
	"github.com/charazer/kana-game-sub000/vmath"
)

type fakeDisplay struct {
	hud     render.HUD
	overlay []string
}

func (d *fakeDisplay) UpdateHUD(fn func(h *render.HUD)) { fn(&d.hud) }
func (d *fakeDisplay) SetOverlay(lines ...string)       { d.overlay = lines }

type fakeSounds struct{ played []audio.Cue }

func (f *fakeSounds) Play(c audio.Cue) error {
	f.played = append(f.played, c)
	return nil
}

func (f *fakeSounds) count(c audio.Cue) int {
	n := 0
	for _, p := range f.played {
		if p == c {
			n++
		}
	}
	return n
}

type fakeStore struct {
	saved []store.Record
	err   error
}

func (f *fakeStore) Save(_ context.Context, r store.Record) error {
	f.saved = append(f.saved, r)
	return f.err
}
func (f *fakeStore) Top(context.Context, string, int) ([]store.Record, error) { return f.saved, nil }
func (f *fakeStore) Close() error                                             { return nil }

var (
	kaEntry  = content.Entry{ID: "ka", Kana: "か", Romaji: []string{"ka"}, Type: content.Hiragana}
	gaEntry  = content.Entry{ID: "ga", Kana: "が", Romaji: []string{"ga"}, Type: content.Hiragana}
	short    = engine.Playfield{Width: 80, Height: 6, DangerZone: 2}
	deep     = engine.Playfield{Width: 80, Height: 1000, DangerZone: 2}
	frame    = 16 * time.Millisecond
	epoch    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kanaOnly = content.Library{Hiragana: content.Catalog{kaEntry, gaEntry}}
)

type fixture struct {
	sess    *Session
	eng     *engine.Engine
	in      *input.Manager
	sched   *engine.ManualScheduler
	display *fakeDisplay
	sounds  *fakeSounds
	store   *fakeStore
}

func newFixture(field engine.Playfield, mode engine.Mode) *fixture {
	f := &fixture{
		in:      input.NewManager(),
		sched:   engine.NewManualScheduler(epoch),
		display: &fakeDisplay{},
		sounds:  &fakeSounds{},
		store:   &fakeStore{},
	}
	f.eng = engine.New(engine.NewRecordingRenderer(field), f.in, f.sched,
		engine.WithRand(vmath.NewFastRand(3)),
		engine.WithClock(f.sched),
		engine.WithLibrary(kanaOnly),
	)
	f.eng.SetGameMode(mode)
	f.sess = New(f.eng, f.display,
		WithSounds(f.sounds),
		WithStore(f.store),
		WithPlayer("aki"),
		WithClock(f.sched),
	)
	return f
}

// TestStartFillsHUD verifies the header is initialized from the engine
func TestStartFillsHUD(t *testing.T) {
	f := newFixture(deep, engine.ModeChallenge)
	f.display.overlay = []string{"stale"}
	f.sess.Start()

	h := f.display.hud
	if h.Mode != "challenge" || h.Set != "hiragana" || h.Player != "aki" {
		t.Errorf("hud identity = %+v", h)
	}
	if h.Lives != 3 || h.MaxLives != 3 || !h.LosesLives || h.Speed != 1 {
		t.Errorf("hud state = %+v", h)
	}
	if len(f.display.overlay) != 0 {
		t.Error("start should clear the overlay")
	}
	if !f.eng.Running() || f.sess.RunID() == "" {
		t.Error("start should run the engine with a run id")
	}
}

// TestMatchUpdatesHUDAndPlaysCue verifies score fan-out
func TestMatchUpdatesHUDAndPlaysCue(t *testing.T) {
	f := newFixture(deep, engine.ModePractice)
	f.sess.Start()
	f.eng.HandleCommit("ka")
	f.eng.HandleCommit("ka")

	if f.display.hud.Score != f.eng.Score() || f.display.hud.Score == 0 {
		t.Errorf("hud score = %d, engine = %d", f.display.hud.Score, f.eng.Score())
	}
	if f.display.hud.Combo != 2 || f.sess.MaxCombo() != 2 {
		t.Errorf("combo hud=%d max=%d, want 2", f.display.hud.Combo, f.sess.MaxCombo())
	}
	if f.sounds.count(audio.CueCorrect) != 2 {
		t.Errorf("correct cues = %d, want 2", f.sounds.count(audio.CueCorrect))
	}
}

// TestGameOverSavesRecord plays a challenge run to the end
func TestGameOverSavesRecord(t *testing.T) {
	f := newFixture(short, engine.ModeChallenge)
	var hooked []store.Record
	f.sess.onSaved = func(r store.Record, err error) { hooked = append(hooked, r) }

	f.sess.Start()
	f.eng.HandleCommit("ka")
	f.sched.Run(30*time.Second, frame)

	if !f.eng.GameOver() {
		t.Fatal("run should have ended")
	}
	if len(f.store.saved) != 1 || len(hooked) != 1 {
		t.Fatalf("saved %d records, hook saw %d, want 1", len(f.store.saved), len(hooked))
	}
	rec := f.store.saved[0]
	if rec.RunID != f.sess.RunID() || rec.Player != "aki" || rec.Mode != "challenge" || rec.Set != "hiragana" {
		t.Errorf("record identity = %+v", rec)
	}
	if rec.Score != f.eng.Score() || rec.Correct != f.eng.CorrectAnswers() || rec.MaxCombo < 1 {
		t.Errorf("record stats = %+v", rec)
	}
	if rec.Duration <= 0 {
		t.Errorf("duration = %v, want positive", rec.Duration)
	}
	if f.sounds.count(audio.CueGameOver) != 1 || f.sounds.count(audio.CueLifeLost) != 3 {
		t.Errorf("cues = %v", f.sounds.played)
	}
	if f.sess.Misses() < 3 {
		t.Errorf("misses = %d, want at least 3", f.sess.Misses())
	}
	if len(f.display.overlay) == 0 || f.display.overlay[0] != "GAME OVER" {
		t.Errorf("overlay = %v", f.display.overlay)
	}
	if last, ok := f.sess.LastRecord(); !ok || last.RunID != rec.RunID {
		t.Error("LastRecord should return the saved run")
	}
}

// TestSaveErrorDoesNotBlockGameOver verifies store failures are contained
func TestSaveErrorDoesNotBlockGameOver(t *testing.T) {
	f := newFixture(short, engine.ModeChallenge)
	f.store.err = errors.New("disk full")
	var gotErr error
	f.sess.onSaved = func(_ store.Record, err error) { gotErr = err }

	f.sess.Start()
	f.sched.Run(30*time.Second, frame)

	if !errors.Is(gotErr, f.store.err) {
		t.Errorf("hook error = %v, want %v", gotErr, f.store.err)
	}
	if len(f.display.overlay) == 0 {
		t.Error("game over overlay missing")
	}
}

// TestTogglePause verifies pause and resume through the session
func TestTogglePause(t *testing.T) {
	f := newFixture(deep, engine.ModePractice)
	f.sess.Start()

	f.sess.TogglePause()
	if !f.sess.Paused() || f.eng.Running() || len(f.display.overlay) == 0 {
		t.Fatal("first toggle should pause")
	}
	f.sess.TogglePause()
	if f.sess.Paused() || !f.eng.Running() || len(f.display.overlay) != 0 {
		t.Fatal("second toggle should resume")
	}
}

// TestPauseIgnoredAfterGameOver verifies the game over overlay stays
func TestPauseIgnoredAfterGameOver(t *testing.T) {
	f := newFixture(short, engine.ModeChallenge)
	f.sess.Start()
	f.sched.Run(30*time.Second, frame)

	f.sess.TogglePause()
	if f.sess.Paused() || f.display.overlay[0] != "GAME OVER" {
		t.Error("pause after game over should do nothing")
	}
}

// TestRestartBeginsFreshRun verifies restart resets and restarts
func TestRestartBeginsFreshRun(t *testing.T) {
	f := newFixture(short, engine.ModeChallenge)
	f.sess.Start()
	first := f.sess.RunID()
	f.sched.Run(30*time.Second, frame)

	f.sess.Restart()
	if f.sess.RunID() == first {
		t.Error("restart should issue a new run id")
	}
	if !f.eng.Running() || f.eng.GameOver() || f.eng.Lives() != 3 {
		t.Errorf("engine not reset: running=%v over=%v lives=%d", f.eng.Running(), f.eng.GameOver(), f.eng.Lives())
	}
	if f.display.hud.Lives != 3 || f.display.hud.Score != 0 || f.sess.MaxCombo() != 0 {
		t.Errorf("hud not reset: %+v", f.display.hud)
	}
	if f.sess.Runs() != 2 {
		t.Errorf("runs = %d, want 2", f.sess.Runs())
	}
}

// TestUnlockShowsTier verifies the HUD reflects unlocked tiers
func TestUnlockShowsTier(t *testing.T) {
	f := newFixture(deep, engine.ModePractice)
	f.eng.SetTierOptions(true, false)
	f.sess.Start()
	for i := 0; i < 20; i++ {
		f.eng.HandleCommit("ka")
	}
	if !f.display.hud.Dakuten || f.display.hud.Yoon {
		t.Errorf("hud tiers = dakuten:%v yoon:%v", f.display.hud.Dakuten, f.display.hud.Yoon)
	}
}

// TestSpeedChangeCue verifies the speed step reaches HUD and audio
func TestSpeedChangeCue(t *testing.T) {
	f := newFixture(deep, engine.ModeChallenge)
	f.sess.Start()
	f.sched.Run(31*time.Second, 100*time.Millisecond)

	if f.sounds.count(audio.CueSpeedUp) != 1 || f.display.hud.Speed <= 1 {
		t.Errorf("speed cue=%d hud speed=%v", f.sounds.count(audio.CueSpeedUp), f.display.hud.Speed)
	}
}

// TestGameOverWithJSONStore runs the real file store end to end
func TestGameOverWithJSONStore(t *testing.T) {
	js := store.NewJSONStore(filepath.Join(t.TempDir(), "stats.json"), nil)
	f := newFixture(short, engine.ModeChallenge)
	f.sess.store = js

	f.sess.Start()
	f.eng.HandleCommit("ka")
	f.sched.Run(30*time.Second, frame)

	top, err := js.Top(context.Background(), "challenge", 5)
	if err != nil || len(top) != 1 {
		t.Fatalf("top = %v, %v", top, err)
	}
	if top[0].RunID != f.sess.RunID() {
		t.Errorf("stored run %s, want %s", top[0].RunID, f.sess.RunID())
	}
}
