package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/pkg/executor"
)

// WhisperCppName is the Name of the whisper.cpp backend.
const WhisperCppName = "whisper-cpp"

type implWhisperCpp struct {
	cfg       config.TranscriberConfig
	modelPath string
	tempDir   string
	executor  executor.Executor
	logger    logger.Logger
}

// NewWhisperCpp loads the whisper.cpp backend. Loading fails when the
// whisper binary, ffmpeg, or the ggml model for cfg.ModelSize is missing.
func NewWhisperCpp(cfg config.TranscriberConfig, tempDir string, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	if _, err := exec.LookPath(cfg.BinaryPath); err != nil {
		return nil, fmt.Errorf("whisper binary: %w", err)
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}

	modelPath := filepath.Join(cfg.ModelDir, "ggml-"+cfg.ModelSize+".bin")
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("whisper model %s: %w", cfg.ModelSize, err)
	}

	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	return &implWhisperCpp{
		cfg:       cfg,
		modelPath: modelPath,
		tempDir:   tempDir,
		executor:  exec,
		logger:    log,
	}, nil
}

func (w *implWhisperCpp) Name() string      { return WhisperCppName }
func (w *implWhisperCpp) ModelBacked() bool { return true }

// Transcribe converts the source to 16kHz mono WAV and runs whisper.cpp on it.
func (w *implWhisperCpp) Transcribe(ctx context.Context, src Source, language string) (string, error) {
	work, err := os.MkdirTemp(w.tempDir, "whisper-*")
	if err != nil {
		return "", fmt.Errorf("%w: create work dir: %w", ErrTranscription, err)
	}
	defer w.cleanupDir(ctx, work)

	inputPath, err := materialize(src, work)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}

	audioPath, err := w.extractAudio(ctx, inputPath, work)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}

	text, err := w.runWhisper(ctx, audioPath, language)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}
	return text, nil
}

// extractAudio produces the 16kHz mono PCM WAV whisper.cpp expects.
func (w *implWhisperCpp) extractAudio(ctx context.Context, inputPath, workDir string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	w.logger.Debug(ctx, "Extracting audio: %s", inputPath)

	args := []string{
		"-i", inputPath,
		"-vn",          // No video
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := w.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return audioPath, nil
}

func (w *implWhisperCpp) runWhisper(ctx context.Context, audioPath, language string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	if language == "" {
		language = w.cfg.Language
	}
	if language == "" {
		language = "auto"
	}

	w.logger.Info(ctx, "Running whisper.cpp (model %s, %d threads, language %s)",
		w.cfg.ModelSize, w.cfg.Threads, language)

	// -otxt: plain text output; -nt: no timestamps
	args := []string{
		"-m", w.modelPath,
		"-f", audioPath,
		"-otxt",
		"-nt",
		"-l", language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	text := normalizeWhitespace(string(data))
	if text == "" {
		return "", fmt.Errorf("whisper produced an empty transcript")
	}
	return text, nil
}

func (w *implWhisperCpp) cleanupDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	}
}

// materialize returns a file path for src, writing in-memory audio into dir.
func materialize(src Source, dir string) (string, error) {
	switch src.Kind {
	case SourceFile:
		return src.Path, nil
	case SourceBytes:
		ext := filepath.Ext(src.Name)
		if ext == "" {
			ext = ".bin"
		}
		path := filepath.Join(dir, "input"+ext)
		if err := os.WriteFile(path, src.Data, 0644); err != nil {
			return "", fmt.Errorf("write audio buffer: %w", err)
		}
		return path, nil
	default:
		return "", fmt.Errorf("%w: %s source is not audio", ErrInvalidSource, src.Kind)
	}
}

// normalizeWhitespace joins whisper's per-segment lines into one paragraph.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
