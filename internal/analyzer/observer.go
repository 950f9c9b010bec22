package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

type nopObserver struct{}

func (nopObserver) CapabilityUnavailable(context.Context, Capability, error) {}
func (nopObserver) StageFallback(context.Context, Stage, error)              {}
func (nopObserver) StageEntered(context.Context, Stage)                      {}

type logObserver struct {
	logger logger.Logger
}

// NewLogObserver reports degradation as warnings and stage changes as debug lines.
func NewLogObserver(log logger.Logger) Observer {
	return &logObserver{logger: log}
}

func (o *logObserver) CapabilityUnavailable(ctx context.Context, capability Capability, err error) {
	o.logger.Warn(ctx, "Using heuristic %s: %v", capability, err)
}

func (o *logObserver) StageFallback(ctx context.Context, stage Stage, err error) {
	o.logger.Warn(ctx, "Stage %s fell back to heuristic: %v", stage, err)
}

func (o *logObserver) StageEntered(ctx context.Context, stage Stage) {
	o.logger.Debug(ctx, "Stage: %s", stage)
}
