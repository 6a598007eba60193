package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/goconstruct/internal/report"
	"github.com/philipparndt/goconstruct/internal/script"
	"github.com/philipparndt/goconstruct/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [script]",
	Short: "Re-run a construction script every time it is saved",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "delay before re-running after a change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}
	log := newLogger()
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	render := func(path string) {
		eng, warnings, err := script.RunFile(ctx, path, log, opts...)
		if err != nil {
			log.Error("script failed", "path", path, "error", err)
			return
		}
		fmt.Fprintf(out, "\n--- %s (%s) ---\n", path, time.Now().Format(time.TimeOnly))
		report.Text(out, eng.Snapshot())
		report.Warnings(out, warnings)
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(args, render); err != nil {
		return err
	}

	render(args[0])
	log.Info("watching for changes", "path", args[0])

	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
