package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIName is the Name of the OpenAI chat backend.
const OpenAIName = "openai"

// tokensPerWord over-provisions MaxTokens so the word bound, not the token
// cap, ends the summary.
const tokensPerWord = 2

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI builds the chat-completion summarizer. It fails without an API key.
func NewOpenAI(cfg config.OpenAIConfig, log logger.Logger) (Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is not set")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &implOpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.ChatModel,
		logger: log,
	}, nil
}

func (s *implOpenAI) Name() string      { return OpenAIName }
func (s *implOpenAI) ModelBacked() bool { return true }

func (s *implOpenAI) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(text, maxLength, minLength)},
		},
		MaxTokens: maxLength * tokensPerWord,
	}

	s.logger.Debug(ctx, "Requesting summary from %s (%d-%d words)", s.model, minLength, maxLength)

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %w", ErrSummarization, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", ErrSummarization)
	}

	summary := clampWords(resp.Choices[0].Message.Content, maxLength)
	if summary == "" {
		return "", fmt.Errorf("%w: openai returned an empty summary", ErrSummarization)
	}
	return summary, nil
}
