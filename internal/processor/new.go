package processor

import (
	"github.com/nguyentantai21042004/meeting-minutes/internal/analyzer"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/exporter"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/store"
)

type implProcessor struct {
	cfg       *config.Config
	analyzer  analyzer.Analyzer
	exporter  exporter.Exporter
	store     store.Store
	logger    logger.Logger
	inference *semaphore
}

// New creates a Processor. The analyzer is shared by every job, so calls to it
// are bounded by performance.max_inference.
func New(cfg *config.Config, a analyzer.Analyzer, exp exporter.Exporter, st store.Store, log logger.Logger) Processor {
	limit := cfg.Performance.MaxInference
	if limit <= 0 {
		limit = 1
	}

	return &implProcessor{
		cfg:       cfg,
		analyzer:  a,
		exporter:  exp,
		store:     st,
		logger:    log,
		inference: newSemaphore(limit),
	}
}
