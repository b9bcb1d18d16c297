package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charazer/kana-game-sub000/config"
)

// resolveSettings layers explicitly set flags over the config file
func resolveSettings(cmd *cobra.Command, opts *options) (config.Settings, string, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	s, err := config.Load(path)
	if err != nil {
		return s, path, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		s.Game.Mode = opts.mode
	}
	if flags.Changed("set") {
		s.Game.Set = opts.set
	}
	if flags.Changed("catalog") {
		s.Game.Catalog = opts.catalog
	}
	if flags.Changed("player") {
		s.Player.Name = opts.player
	}
	if flags.Changed("dakuten") {
		s.Game.Dakuten = opts.dakuten
	}
	if flags.Changed("yoon") {
		s.Game.Yoon = opts.yoon
	}
	if flags.Changed("no-audio") {
		s.Audio.Enabled = !opts.noAudio
	}

	if err := s.Validate(); err != nil {
		return s, path, fmt.Errorf("flags: %w", err)
	}
	return s, path, nil
}
