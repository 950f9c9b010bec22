package analyzer

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-minutes/pkg/executor"
)

// Options configures New.
type Options struct {
	Mode Mode
	// ModelSize is handed to LoadTranscriber (e.g. "base", "small").
	ModelSize string
	// MaxLength and MinLength bound model summaries, in words.
	MaxLength int
	MinLength int

	LoadTranscriber TranscriberLoader
	LoadSummarizer  SummarizerLoader

	// Observer defaults to a no-op.
	Observer Observer
}

type implAnalyzer struct {
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	// placeholder and heuristic back every stage fallback.
	placeholder transcriber.Transcriber
	heuristic   summarizer.Summarizer
	state       CapabilityState
	maxLength   int
	minLength   int
	observer    Observer
}

// New selects the strategies once and returns an analyzer owned by the caller.
// Construction is the expensive step; callers should keep and reuse the
// instance across runs.
func New(ctx context.Context, opts Options) Analyzer {
	obs := opts.Observer
	if obs == nil {
		obs = nopObserver{}
	}

	sel := selectStrategies(ctx, opts, obs)

	return &implAnalyzer{
		transcriber: sel.transcriber,
		summarizer:  sel.summarizer,
		placeholder: transcriber.NewPlaceholder(),
		heuristic:   summarizer.NewHeuristic(),
		state:       sel.state,
		maxLength:   opts.MaxLength,
		minLength:   opts.MinLength,
		observer:    obs,
	}
}

// NewFromConfig wires the configured backends as loaders and reports
// degradation through the logger.
func NewFromConfig(ctx context.Context, cfg *config.Config, exec executor.Executor, log logger.Logger) Analyzer {
	return New(ctx, Options{
		Mode:            Mode(cfg.Mode),
		ModelSize:       cfg.Transcriber.ModelSize,
		MaxLength:       cfg.Summarizer.MaxLength,
		MinLength:       cfg.Summarizer.MinWords(),
		LoadTranscriber: transcriberLoader(cfg, exec, log.With("transcriber")),
		LoadSummarizer:  summarizerLoader(cfg, log.With("summarizer")),
		Observer:        NewLogObserver(log.With("analyzer")),
	})
}

func transcriberLoader(cfg *config.Config, exec executor.Executor, log logger.Logger) TranscriberLoader {
	return func(ctx context.Context, modelSize string) (transcriber.Transcriber, error) {
		switch cfg.Transcriber.Backend {
		case config.TranscriberOpenAI:
			log.Debug(ctx, "Hosted Whisper ignores model size %q", modelSize)
			return transcriber.NewOpenAI(cfg.OpenAI, cfg.Transcriber.Prompt, log)
		default:
			tc := cfg.Transcriber
			tc.ModelSize = modelSize
			return transcriber.NewWhisperCpp(tc, filepath.Join(cfg.Paths.Temp, "whisper"), exec, log)
		}
	}
}

func summarizerLoader(cfg *config.Config, log logger.Logger) SummarizerLoader {
	return func(ctx context.Context) (summarizer.Summarizer, error) {
		switch cfg.Summarizer.Backend {
		case config.SummarizerOpenAI:
			return summarizer.NewOpenAI(cfg.OpenAI, log)
		default:
			return summarizer.NewGemini(ctx, cfg.Gemini, log)
		}
	}
}
