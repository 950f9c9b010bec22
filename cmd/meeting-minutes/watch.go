package main

import (
	"context"
	"errors"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/meeting-minutes/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process meeting files dropped into the input folder",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	log := a.logger
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting minutes pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Max concurrent files: %d, max concurrent analyses: %d",
		a.cfg.Performance.MaxConcurrent, a.cfg.Performance.MaxInference)

	w, err := watcher.New(a.cfg.Paths.Input, a.processor.Process, log.With("watcher"), a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(context.Background(), "Watcher error: %v", err)
		return err
	}

	log.Info(context.Background(), "Pipeline stopped")
	return nil
}
