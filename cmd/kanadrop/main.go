// Command kanadrop is a terminal kana typing game: glyphs fall toward the
// bottom of the screen and are cleared by typing their romaji.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/charazer/kana-game-sub000/terminal"
)

type options struct {
	configPath string
	mode       string
	set        string
	catalog    string
	player     string
	dakuten    bool
	yoon       bool
	noAudio    bool
	debug      bool
	save       bool
	seed       uint64
	limit      int
}

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mKANADROP CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "kanadrop",
		Short:         "Falling kana typing trainer",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default: user config dir)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write debug logs to logs/kanadrop.log")
	addPlayFlags(root, opts)

	play := &cobra.Command{
		Use:   "play",
		Short: "Start a game (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}
	addPlayFlags(play, opts)

	scores := &cobra.Command{
		Use:   "scores",
		Short: "List the best runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScores(cmd, opts)
		},
	}
	scores.Flags().StringVar(&opts.mode, "mode", "", "practice or challenge (default: configured mode)")
	scores.Flags().IntVarP(&opts.limit, "limit", "n", 10, "number of runs to show")

	root.AddCommand(play, scores)
	return root
}

func addPlayFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.mode, "mode", "", "practice or challenge")
	f.StringVar(&opts.set, "set", "", "hiragana, katakana or mixed")
	f.StringVar(&opts.catalog, "catalog", "", "JSON catalog file replacing the built-in kana")
	f.StringVar(&opts.player, "player", "", "player name stored with scores")
	f.BoolVar(&opts.dakuten, "dakuten", false, "include voiced kana once unlocked")
	f.BoolVar(&opts.yoon, "yoon", false, "include contracted kana once unlocked")
	f.BoolVar(&opts.noAudio, "no-audio", false, "disable sound")
	f.BoolVar(&opts.save, "save", false, "write the resulting settings back to the config file")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
}
