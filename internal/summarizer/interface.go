package summarizer

import (
	"context"
	"errors"
)

// ErrSummarization is wrapped by every model-backed summarization failure.
var ErrSummarization = errors.New("summarization failed")

// Summarizer condenses a transcript into a short summary.
type Summarizer interface {
	Name() string
	ModelBacked() bool
	// Summarize bounds its output by maxLength/minLength words where the
	// implementation supports it.
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}
