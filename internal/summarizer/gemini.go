package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"google.golang.org/genai"
)

// GeminiName is the Name of the Gemini backend.
const GeminiName = "gemini"

// generator is the slice of the genai client the summarizer needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type implGemini struct {
	models     []generator
	mu         sync.Mutex
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates one client per API key; keys are rotated on quota errors.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Summarizer, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, errors.New("no gemini api keys configured")
	}

	models := make([]generator, 0, len(cfg.APIKeys))
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		models = append(models, client.Models)
	}

	return newGemini(models, cfg.Model, log), nil
}

func newGemini(models []generator, model string, log logger.Logger) *implGemini {
	return &implGemini{
		models: models,
		model:  model,
		logger: log,
	}
}

func (s *implGemini) Name() string      { return GeminiName }
func (s *implGemini) ModelBacked() bool { return true }

func (s *implGemini) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	summary, err := s.callGemini(ctx, buildPrompt(text, maxLength, minLength))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarization, err)
	}

	summary = clampWords(summary, maxLength)
	if summary == "" {
		return "", fmt.Errorf("%w: empty response from Gemini", ErrSummarization)
	}
	return summary, nil
}

// callGemini sends the prompt and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *implGemini) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.models)
	var lastErr error

	for range attempts {
		key := s.key()
		result, err := s.models[key].GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", key+1)
				s.rotateKey(key)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implGemini) key() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey
}

// rotateKey moves past from unless another call already did.
func (s *implGemini) rotateKey(from int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == from {
		s.currentKey = (from + 1) % len(s.models)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
