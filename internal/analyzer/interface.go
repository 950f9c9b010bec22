package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
)

// Analyzer runs the transcribe -> summarize -> extract pipeline.
type Analyzer interface {
	// ProcessMeeting returns either a complete Result or a *StageError.
	// Stages run sequentially on the calling goroutine.
	ProcessMeeting(ctx context.Context, src transcriber.Source, language string) (Result, error)
	// Capabilities reports which stages are model backed. It is fixed at
	// construction.
	Capabilities() CapabilityState
}

// Observer receives degradation reports. Implementations must be cheap and
// must not block.
type Observer interface {
	// CapabilityUnavailable fires when a model-backed capability could not be
	// loaded, or when real audio had to be answered with the placeholder.
	CapabilityUnavailable(ctx context.Context, capability Capability, err error)
	// StageFallback fires when a model call failed and the heuristic took over.
	StageFallback(ctx context.Context, stage Stage, err error)
	// StageEntered fires on every state transition of a run.
	StageEntered(ctx context.Context, stage Stage)
}
