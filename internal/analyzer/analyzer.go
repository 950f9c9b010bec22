package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/heuristic"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
)

func (a *implAnalyzer) Capabilities() CapabilityState {
	return a.state
}

func (a *implAnalyzer) ProcessMeeting(ctx context.Context, src transcriber.Source, language string) (Result, error) {
	a.observer.StageEntered(ctx, StageIdle)

	a.observer.StageEntered(ctx, StageTranscribing)
	if err := src.Validate(); err != nil {
		return Result{}, &StageError{Stage: StageTranscribing, Err: err}
	}
	transcript, prov, err := a.transcribe(ctx, src, language)
	if err != nil {
		return Result{}, &StageError{Stage: StageTranscribing, Err: err}
	}

	a.observer.StageEntered(ctx, StageSummarizing)
	summary, summarizerName, err := a.summarize(ctx, transcript)
	if err != nil {
		return Result{}, &StageError{Stage: StageSummarizing, Err: err}
	}
	prov.Summarizer = summarizerName

	a.observer.StageEntered(ctx, StageExtractingActions)
	items, err := guard(func() (heuristic.ActionItems, error) {
		return heuristic.ExtractActionItems(transcript), nil
	})
	if err != nil {
		return Result{}, &StageError{Stage: StageExtractingActions, Err: err}
	}

	a.observer.StageEntered(ctx, StageComplete)
	return Result{
		Transcript:  transcript,
		Summary:     summary,
		ActionItems: items,
		Provenance:  prov,
	}, nil
}

// transcribe tries the selected transcriber and falls back to the placeholder.
// Text and sample sources never need a speech model.
func (a *implAnalyzer) transcribe(ctx context.Context, src transcriber.Source, language string) (string, Provenance, error) {
	if !src.IsAudio() {
		text, err := a.runPlaceholder(ctx, src, language)
		return text, Provenance{Transcriber: src.Kind.String()}, err
	}

	if a.transcriber.ModelBacked() {
		text, err := guard(func() (string, error) {
			return a.transcriber.Transcribe(ctx, src, language)
		})
		if err == nil && strings.TrimSpace(text) == "" {
			err = fmt.Errorf("%w: %w", ErrTranscription, errEmptyOutput)
		}
		if err == nil {
			return text, Provenance{Transcriber: a.transcriber.Name()}, nil
		}
		// A cancelled run stops here; a placeholder would pass for real minutes.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", Provenance{}, fmt.Errorf("%w: %w", ctxErr, err)
		}
		a.observer.StageFallback(ctx, StageTranscribing, err)
	} else {
		a.observer.CapabilityUnavailable(ctx, CapabilityTranscriber,
			fmt.Errorf("%w: no speech model loaded, %s answered with the placeholder transcript", ErrCapabilityUnavailable, src.Label()))
	}

	text, err := a.runPlaceholder(ctx, src, language)
	return text, Provenance{Transcriber: a.placeholder.Name(), Placeholder: true}, err
}

func (a *implAnalyzer) runPlaceholder(ctx context.Context, src transcriber.Source, language string) (string, error) {
	text, err := guard(func() (string, error) {
		return a.placeholder.Transcribe(ctx, src, language)
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyOutput
	}
	return text, err
}

// summarize calls the model only when the transcript is longer than
// minLength words; short transcripts and model failures use the heuristic.
func (a *implAnalyzer) summarize(ctx context.Context, transcript string) (string, string, error) {
	if a.summarizer.ModelBacked() && wordCount(transcript) > a.minLength {
		summary, err := guard(func() (string, error) {
			return a.summarizer.Summarize(ctx, transcript, a.maxLength, a.minLength)
		})
		if err == nil && strings.TrimSpace(summary) == "" {
			err = fmt.Errorf("%w: %w", ErrSummarization, errEmptyOutput)
		}
		if err == nil {
			return summary, a.summarizer.Name(), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", "", fmt.Errorf("%w: %w", ctxErr, err)
		}
		a.observer.StageFallback(ctx, StageSummarizing, err)
	}

	summary, err := guard(func() (string, error) {
		return a.heuristic.Summarize(ctx, transcript, a.maxLength, a.minLength)
	})
	return summary, a.heuristic.Name(), err
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
