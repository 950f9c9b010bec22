package analyzer

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
)

var (
	// ErrCapabilityUnavailable is reported to the Observer when a model-backed
	// capability cannot be used. It is never returned by ProcessMeeting.
	ErrCapabilityUnavailable = errors.New("capability unavailable")

	ErrTranscription = transcriber.ErrTranscription
	ErrSummarization = summarizer.ErrSummarization
	ErrInvalidSource = transcriber.ErrInvalidSource

	errEmptyOutput = errors.New("empty output")
)

// StageError is the only error ProcessMeeting returns. It names the stage the
// run stopped in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// unavailable wraps a load error so that errors.Is(err, ErrCapabilityUnavailable) holds.
func unavailable(capability Capability, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCapabilityUnavailable, capability, err)
}

// guard runs fn and turns a panic into an error.
func guard[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
