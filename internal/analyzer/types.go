package analyzer

import (
	"github.com/nguyentantai21042004/meeting-minutes/internal/heuristic"
)

// Mode is the requested operating mode.
type Mode string

const (
	ModeSimple   Mode = "simple"
	ModeAdvanced Mode = "advanced"
)

// Capability names a swappable pipeline capability.
type Capability string

const (
	CapabilityTranscriber Capability = "transcriber"
	CapabilitySummarizer  Capability = "summarizer"
)

// Stage is a state of one pipeline run.
type Stage int

const (
	StageIdle Stage = iota
	StageTranscribing
	StageSummarizing
	StageExtractingActions
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageTranscribing:
		return "transcribing"
	case StageSummarizing:
		return "summarizing"
	case StageExtractingActions:
		return "extracting_actions"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// CapabilityState records which capabilities loaded their model.
type CapabilityState struct {
	TranscriberModelBacked bool
	SummarizerModelBacked  bool
}

// Provenance names the implementation that produced each field of a Result.
type Provenance struct {
	Transcriber string
	Summarizer  string
	// Placeholder is true when audio was answered with the canned transcript.
	Placeholder bool
}

// Result is the outcome of one pipeline run. It is returned by value and the
// analyzer keeps no reference to it.
type Result struct {
	Transcript  string
	Summary     string
	ActionItems heuristic.ActionItems
	Provenance  Provenance
}
