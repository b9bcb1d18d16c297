// Package config loads and saves player settings.
//
// Settings live in an ini file with one section per concern. Values are
// resolved in order: built-in defaults, the file, then KANADROP_*
// environment variables. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/charazer/kana-game-sub000/audio"
	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/engine"
	"github.com/charazer/kana-game-sub000/vmath"
)

// FileName is the settings file name inside the config directory
const FileName = "kanadrop.ini"

// Store drivers
const (
	StoreJSON     = "json"
	StorePostgres = "postgres"
	StoreNone     = "none"
)

var ErrInvalid = errors.New("invalid setting")

type GameSettings struct {
	Mode    string `ini:"mode"`
	Set     string `ini:"set"`
	Dakuten bool   `ini:"dakuten"`
	Yoon    bool   `ini:"yoon"`
	Catalog string `ini:"catalog"`
}

type AudioSettings struct {
	Enabled bool `ini:"enabled"`
	Volume  int  `ini:"volume"` // 0-100
}

type StoreSettings struct {
	Driver string `ini:"driver"`
	Path   string `ini:"path"`
	DSN    string `ini:"dsn"`
}

type PlayerSettings struct {
	Name string `ini:"name"`
}

// Settings is the full persisted configuration
type Settings struct {
	Game   GameSettings   `ini:"game"`
	Audio  AudioSettings  `ini:"audio"`
	Store  StoreSettings  `ini:"store"`
	Player PlayerSettings `ini:"player"`
}

// Default returns the settings used when no file exists
func Default() Settings {
	return Settings{
		Game: GameSettings{
			Mode: string(engine.ModePractice),
			Set:  string(content.SetHiragana),
		},
		Audio: AudioSettings{Enabled: true, Volume: 50},
		Store: StoreSettings{Driver: StoreJSON, Path: "stats.json"},
		Player: PlayerSettings{
			Name: "player",
		},
	}
}

// DefaultPath is the settings file under the user config directory,
// falling back to the working directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "kanadrop", FileName)
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()

	if _, err := os.Stat(path); err == nil {
		f, err := ini.LoadSources(ini.LoadOptions{
			InsensitiveSections:     true,
			SkipUnrecognizableLines: true,
		}, path)
		if err != nil {
			return s, fmt.Errorf("load %s: %w", path, err)
		}
		if err := f.MapTo(&s); err != nil {
			return s, fmt.Errorf("map %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("stat %s: %w", path, err)
	}

	s = ApplyEnv(s)
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes s to path, creating the directory if needed
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	f := ini.Empty()
	if err := ini.ReflectFrom(f, &s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides s from KANADROP_* environment variables.
// Malformed booleans are ignored. Audio variables are read by
// audio.ApplyEnv through AudioConfig.
func ApplyEnv(s Settings) Settings {
	str := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) {
		if v := os.Getenv(name); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	str("KANADROP_MODE", &s.Game.Mode)
	str("KANADROP_SET", &s.Game.Set)
	boolean("KANADROP_DAKUTEN", &s.Game.Dakuten)
	boolean("KANADROP_YOON", &s.Game.Yoon)
	str("KANADROP_CATALOG", &s.Game.Catalog)
	str("KANADROP_STORE_DRIVER", &s.Store.Driver)
	str("KANADROP_STORE_PATH", &s.Store.Path)
	str("KANADROP_DATABASE_URL", &s.Store.DSN)
	str("KANADROP_PLAYER", &s.Player.Name)
	return s
}

// Validate rejects values the game cannot run with
func (s Settings) Validate() error {
	if _, ok := engine.ParseMode(s.Game.Mode); !ok {
		return fmt.Errorf("%w: game.mode %q", ErrInvalid, s.Game.Mode)
	}
	if _, ok := content.ParseSet(s.Game.Set); !ok {
		return fmt.Errorf("%w: game.set %q", ErrInvalid, s.Game.Set)
	}
	switch s.Store.Driver {
	case StoreJSON, StorePostgres, StoreNone:
	default:
		return fmt.Errorf("%w: store.driver %q", ErrInvalid, s.Store.Driver)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 100 {
		return fmt.Errorf("%w: audio.volume %d", ErrInvalid, s.Audio.Volume)
	}
	return nil
}

// Mode returns the parsed game mode
func (s Settings) Mode() engine.Mode {
	m, _ := engine.ParseMode(s.Game.Mode)
	return m
}

// KanaSet returns the parsed kana set
func (s Settings) KanaSet() content.Set {
	set, _ := content.ParseSet(s.Game.Set)
	return set
}

// AudioConfig converts the audio section, then applies audio env overrides
func (s Settings) AudioConfig() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = s.Audio.Enabled
	cfg.MasterVolume = vmath.Clamp(float64(s.Audio.Volume)/100, 0, 1)
	return audio.ApplyEnv(cfg)
}
