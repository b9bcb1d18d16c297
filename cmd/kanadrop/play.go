package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charazer/kana-game-sub000/audio"
	"github.com/charazer/kana-game-sub000/config"
	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/engine"
	"github.com/charazer/kana-game-sub000/input"
	"github.com/charazer/kana-game-sub000/render"
	"github.com/charazer/kana-game-sub000/session"
	"github.com/charazer/kana-game-sub000/store"
	"github.com/charazer/kana-game-sub000/terminal"
	"github.com/charazer/kana-game-sub000/vmath"
)

// timerBuffer is how many fired engine timers may queue between frames
const timerBuffer = 64

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

func runPlay(cmd *cobra.Command, opts *options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	log := logrus.New()
	if logFile := setupLogging(log, opts.debug); logFile != nil {
		defer logFile.Close()
	}

	settings, cfgPath, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}
	if opts.save {
		if err := config.Save(cfgPath, settings); err != nil {
			return err
		}
		log.WithField("path", cfgPath).Info("settings saved")
	}

	library := content.Builtin()
	if settings.Game.Catalog != "" {
		if library, err = content.LoadLibraryFile(settings.Game.Catalog, log); err != nil {
			return err
		}
	}

	ctx := context.Background()
	scores, err := openStore(ctx, settings, cfgPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Score store unavailable: %v (continuing without saving scores)\n", err)
		scores = store.Discard{}
	}
	defer scores.Close()

	// Initialize audio before the screen so failures print normally
	sounds := audio.NewSoundManager(settings.AudioConfig(), log)
	if settings.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	tty := terminal.NewService(nil)
	if err := tty.Init(); err != nil {
		return err
	}
	tty.Start()

	sched := terminal.NewFrameScheduler(timerBuffer)
	defer sched.Stop()

	clock := engine.NewMonotonicTimeProvider()
	renderer := render.NewRenderer(tty.Screen(), clock)
	in := input.NewManager()
	in.OnBufferChange(renderer.SetEcho)

	rng := vmath.NewTimeSeededRand()
	if opts.seed != 0 {
		rng = vmath.NewFastRand(opts.seed)
	}

	eng := engine.New(renderer, in, sched,
		engine.WithLogger(log),
		engine.WithClock(clock),
		engine.WithRand(rng),
		engine.WithLibrary(library),
	)
	eng.SetGameMode(settings.Mode())
	eng.LoadKana(settings.KanaSet())
	eng.SetTierOptions(settings.Game.Dakuten, settings.Game.Yoon)

	sess := session.New(eng, renderer,
		session.WithSounds(sounds),
		session.WithStore(scores),
		session.WithLogger(log),
		session.WithPlayer(settings.Player.Name),
		session.WithClock(clock),
	)
	sess.Start()

	runLoop(tty, sched, renderer, in, sess, eng)

	// Restore the terminal before printing the summary
	tty.Stop()
	printSummary(os.Stdout, sess, eng)
	return nil
}

// runLoop drives input, frames and timers on one goroutine until quit
func runLoop(tty *terminal.Service, sched *terminal.FrameScheduler, renderer *render.Renderer,
	in *input.Manager, sess *session.Session, eng *engine.Engine) {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.Draw()
	for {
		select {
		case ev, ok := <-tty.Events():
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keyAction(ev, eng.GameOver()) {
				case actionQuit:
					return
				case actionPause:
					sess.TogglePause()
				case actionRestart:
					sess.Restart()
				case actionType:
					in.HandleKey(input.FromTcell(ev))
				}
			case *tcell.EventResize:
				tty.Screen().Sync()
			}

		case now := <-frameTicker.C:
			sched.Tick(now)
			renderer.Draw()

		case fn := <-sched.Timers():
			fn()
		}
	}
}

// openStore resolves a relative JSON path next to the settings file
func openStore(ctx context.Context, s config.Settings, cfgPath string, log logrus.FieldLogger) (store.Store, error) {
	path := s.Store.Path
	if s.Store.Driver == config.StoreJSON && !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(cfgPath), path)
	}
	ctx, cancel := context.WithTimeout(ctx, session.SaveTimeout)
	defer cancel()
	return store.Open(ctx, s.Store.Driver, path, s.Store.DSN, log)
}
