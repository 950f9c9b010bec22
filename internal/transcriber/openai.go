package transcriber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIName is the Name of the hosted Whisper backend.
const OpenAIName = "openai-whisper"

type implOpenAI struct {
	client *openai.Client
	model  string
	prompt string
	logger logger.Logger
}

// NewOpenAI builds the hosted Whisper backend. It fails without an API key.
func NewOpenAI(cfg config.OpenAIConfig, prompt string, log logger.Logger) (Transcriber, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is not set")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &implOpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.TranscriptionModel,
		prompt: prompt,
		logger: log,
	}, nil
}

func (o *implOpenAI) Name() string      { return OpenAIName }
func (o *implOpenAI) ModelBacked() bool { return true }

func (o *implOpenAI) Transcribe(ctx context.Context, src Source, language string) (string, error) {
	req := openai.AudioRequest{
		Model:    o.model,
		Prompt:   o.prompt,
		Language: language,
		Format:   openai.AudioResponseFormatJSON,
	}

	switch src.Kind {
	case SourceFile:
		req.FilePath = src.Path
	case SourceBytes:
		name := src.Name
		if name == "" {
			name = "audio.wav"
		}
		req.FilePath = name
		req.Reader = bytes.NewReader(src.Data)
	default:
		return "", fmt.Errorf("%w: %w: %s source is not audio", ErrTranscription, ErrInvalidSource, src.Kind)
	}

	o.logger.Info(ctx, "Uploading %s to %s", src.Label(), o.model)

	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %w", ErrTranscription, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: openai returned an empty transcript", ErrTranscription)
	}
	return text, nil
}
