package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-minutes/internal/analyzer"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/exporter"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/store"
	"github.com/nguyentantai21042004/meeting-minutes/pkg/executor"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	mode       string
	modelSize  string
)

var rootCmd = &cobra.Command{
	Use:   "meeting-minutes",
	Short: "Turn meeting recordings into transcripts, summaries and action items",
	Long: `meeting-minutes transcribes a meeting recording (or reads an existing
transcript), summarizes it and extracts the action items. In advanced mode it
uses speech and language models and falls back to keyword heuristics whenever
a model is missing or fails.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "override mode: simple or advanced")
	rootCmd.PersistentFlags().StringVar(&modelSize, "model-size", "", "override the speech model size (tiny, base, small, medium, large)")
}

// app holds the long-lived dependencies shared by the subcommands.
type app struct {
	cfg       *config.Config
	logger    logger.Logger
	store     store.Store
	processor processor.Processor
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if mode != "" {
		cfg.Mode = mode
	}
	if modelSize != "" {
		cfg.Transcriber.ModelSize = modelSize
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newApp builds the analyzer once; model loading happens here.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	a := analyzer.NewFromConfig(ctx, cfg, executor.New(), log)
	caps := a.Capabilities()
	log.Info(ctx, "Mode: %s (speech model: %t, language model: %t)",
		cfg.Mode, caps.TranscriberModelBacked, caps.SummarizerModelBacked)

	exp := exporter.New(cfg.Paths.Output, log.With("exporter"))
	proc := processor.New(cfg, a, exp, st, log.With("processor"))

	return &app{cfg: cfg, logger: log, store: st, processor: proc}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
