package analyzer

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
)

// TranscriberLoader constructs the model-backed transcriber for a model size.
// It may fail or panic; either downgrades transcription to the placeholder.
type TranscriberLoader func(ctx context.Context, modelSize string) (transcriber.Transcriber, error)

// SummarizerLoader constructs the model-backed summarizer.
type SummarizerLoader func(ctx context.Context) (summarizer.Summarizer, error)

var errNoLoader = errors.New("no loader configured")

// selection is the outcome of strategy selection for one analyzer.
type selection struct {
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	state       CapabilityState
}

// selectStrategies loads the advanced capabilities independently of each
// other. Nothing it does can fail construction: each capability that does not
// load falls back to its heuristic counterpart.
func selectStrategies(ctx context.Context, opts Options, obs Observer) selection {
	sel := selection{
		transcriber: transcriber.NewPlaceholder(),
		summarizer:  summarizer.NewHeuristic(),
	}
	if opts.Mode != ModeAdvanced {
		return sel
	}

	if t, err := load(func() (transcriber.Transcriber, error) {
		if opts.LoadTranscriber == nil {
			return nil, errNoLoader
		}
		return opts.LoadTranscriber(ctx, opts.ModelSize)
	}); err != nil {
		obs.CapabilityUnavailable(ctx, CapabilityTranscriber, unavailable(CapabilityTranscriber, err))
	} else {
		sel.transcriber = t
		sel.state.TranscriberModelBacked = t.ModelBacked()
	}

	if s, err := load(func() (summarizer.Summarizer, error) {
		if opts.LoadSummarizer == nil {
			return nil, errNoLoader
		}
		return opts.LoadSummarizer(ctx)
	}); err != nil {
		obs.CapabilityUnavailable(ctx, CapabilitySummarizer, unavailable(CapabilitySummarizer, err))
	} else {
		sel.summarizer = s
		sel.state.SummarizerModelBacked = s.ModelBacked()
	}

	return sel
}

// load runs a loader under guard and rejects nil results.
func load[T any](fn func() (T, error)) (T, error) {
	v, err := guard(fn)
	if err != nil {
		return v, err
	}
	if any(v) == nil {
		return v, errors.New("loader returned nil")
	}
	return v, nil
}
