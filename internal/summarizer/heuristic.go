package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/meeting-minutes/internal/heuristic"
)

// HeuristicName is the Name of the keyword-scored summarizer.
const HeuristicName = "heuristic"

type implHeuristic struct{}

// NewHeuristic returns the keyword-scored extractive summarizer. It ignores
// the length bounds and never fails.
func NewHeuristic() Summarizer {
	return implHeuristic{}
}

func (implHeuristic) Name() string      { return HeuristicName }
func (implHeuristic) ModelBacked() bool { return false }

func (implHeuristic) Summarize(_ context.Context, text string, maxLength, minLength int) (string, error) {
	return heuristic.Summarize(text, maxLength, minLength), nil
}
