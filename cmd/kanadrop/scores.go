package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runScores(cmd *cobra.Command, opts *options) error {
	log := logrus.New()
	if logFile := setupLogging(log, opts.debug); logFile != nil {
		defer logFile.Close()
	}

	settings, cfgPath, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	mode := settings.Mode()
	if opts.limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", opts.limit)
	}

	ctx := context.Background()
	s, err := openStore(ctx, settings, cfgPath, log)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.Top(ctx, string(mode), opts.limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No %s runs recorded yet.\n", mode)
		return nil
	}
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Top %s runs", mode)))
	fmt.Fprintln(out, scoreTable(records))
	return nil
}
