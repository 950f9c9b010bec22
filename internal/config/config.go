package config

import (
	"fmt"
	"strings"
)

// Operating modes.
const (
	ModeSimple   = "simple"
	ModeAdvanced = "advanced"
)

// Transcriber backends.
const (
	TranscriberWhisperCpp = "whisper-cpp"
	TranscriberOpenAI     = "openai"
)

// Summarizer backends.
const (
	SummarizerGemini = "gemini"
	SummarizerOpenAI = "openai"
)

type Config struct {
	Mode        string            `yaml:"mode"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Store       StoreConfig       `yaml:"store"`
}

type TranscriberConfig struct {
	Backend    string `yaml:"backend"`
	ModelSize  string `yaml:"model_size"`
	ModelDir   string `yaml:"model_dir"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

// Summary bounds in words.
const (
	DefaultMaxLength = 150
	DefaultMinLength = 30
)

type SummarizerConfig struct {
	Backend   string `yaml:"backend"`
	MaxLength int    `yaml:"max_length"`
	// MinLength is a pointer so that an explicit 0 (always ask the model)
	// is not replaced by the default.
	MinLength *int   `yaml:"min_length"`
}

// MinWords returns the configured minimum summary length.
func (s SummarizerConfig) MinWords() int {
	if s.MinLength == nil {
		return DefaultMinLength
	}
	return *s.MinLength
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"-"`
}

type OpenAIConfig struct {
	BaseURL            string `yaml:"base_url"`
	ChatModel          string `yaml:"chat_model"`
	TranscriptionModel string `yaml:"transcription_model"`
	APIKey             string `yaml:"-"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
	// MaxInference bounds concurrent ProcessMeeting calls on the shared analyzer.
	MaxInference int `yaml:"max_inference"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

func (c *Config) Validate() error {
	if c.Mode == "" {
		c.Mode = ModeAdvanced
	}
	c.Mode = strings.ToLower(c.Mode)
	if c.Mode != ModeSimple && c.Mode != ModeAdvanced {
		return fmt.Errorf("mode must be %q or %q (got: %s)", ModeSimple, ModeAdvanced, c.Mode)
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	switch c.Transcriber.Backend {
	case "":
		c.Transcriber.Backend = TranscriberWhisperCpp
	case TranscriberWhisperCpp, TranscriberOpenAI:
	default:
		return fmt.Errorf("transcriber.backend %q is not supported", c.Transcriber.Backend)
	}
	switch c.Summarizer.Backend {
	case "":
		c.Summarizer.Backend = SummarizerGemini
	case SummarizerGemini, SummarizerOpenAI:
	default:
		return fmt.Errorf("summarizer.backend %q is not supported", c.Summarizer.Backend)
	}

	if c.Transcriber.ModelSize == "" {
		c.Transcriber.ModelSize = "base"
	}
	if c.Transcriber.ModelDir == "" {
		c.Transcriber.ModelDir = "models"
	}
	if c.Transcriber.BinaryPath == "" {
		c.Transcriber.BinaryPath = "whisper-cli"
	}
	if c.Transcriber.Threads == 0 {
		c.Transcriber.Threads = 8
	}
	if c.Summarizer.MaxLength == 0 {
		c.Summarizer.MaxLength = DefaultMaxLength
	}
	if c.Summarizer.MinLength == nil {
		minLength := DefaultMinLength
		c.Summarizer.MinLength = &minLength
	}
	if n := *c.Summarizer.MinLength; n < 0 {
		return fmt.Errorf("summarizer.min_length must not be negative (got: %d)", n)
	} else if n > c.Summarizer.MaxLength {
		return fmt.Errorf("summarizer.min_length (%d) exceeds max_length (%d)", n, c.Summarizer.MaxLength)
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.MaxInference == 0 {
		c.Performance.MaxInference = 1
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Store.Path == "" {
		c.Store.Path = "data/history.sqlite"
	}

	return nil
}
