package transcriber

import (
	"context"
	"errors"
)

var (
	// ErrTranscription is wrapped by every model-backed transcription failure.
	ErrTranscription = errors.New("transcription failed")
	// ErrInvalidSource marks a Source that cannot be processed by any backend.
	ErrInvalidSource = errors.New("invalid source")
)

// Transcriber turns a meeting Source into transcript text.
type Transcriber interface {
	// Name identifies the backend in logs and run provenance.
	Name() string
	// ModelBacked is false for the heuristic placeholder.
	ModelBacked() bool
	// Transcribe never returns an empty transcript with a nil error.
	// An empty language means auto-detect.
	Transcribe(ctx context.Context, src Source, language string) (string, error)
}
