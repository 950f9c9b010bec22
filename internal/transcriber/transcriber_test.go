package transcriber

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

func TestSourceValidate(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "meeting.wav")
	if err := os.WriteFile(audio, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		src     Source
		wantErr bool
	}{
		{"existing file", FromFile(audio), false},
		{"missing file", FromFile(filepath.Join(dir, "nope.wav")), true},
		{"empty path", FromFile(""), true},
		{"directory", FromFile(dir), true},
		{"bytes", FromBytes("a.mp3", []byte{1, 2, 3}), false},
		{"empty bytes", FromBytes("a.mp3", nil), true},
		{"text", FromText("Hello world."), false},
		{"blank text", FromText("  \n"), true},
		{"sample", Sample(), false},
		{"zero value", Source{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.src.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSource) {
				t.Errorf("error %v does not wrap ErrInvalidSource", err)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	p := NewPlaceholder()
	ctx := context.Background()

	if p.ModelBacked() {
		t.Error("placeholder must not be model backed")
	}

	got, err := p.Transcribe(ctx, FromText("  Hello world. Nice day. "), "")
	if err != nil || got != "Hello world. Nice day." {
		t.Errorf("text passthrough = %q, %v", got, err)
	}

	for _, src := range []Source{Sample(), FromFile("/tmp/x.wav"), FromBytes("x.wav", []byte{1})} {
		got, err := p.Transcribe(ctx, src, "en")
		if err != nil || got != SampleTranscript {
			t.Errorf("Transcribe(%s) = %q, %v", src.Kind, got, err)
		}
	}
}

// fakeExecutor mimics ffmpeg and whisper.cpp by writing their output files.
type fakeExecutor struct {
	transcript string
	missing    map[string]bool
	failOn     string
	calls      []string
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", errors.New("not found")
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if name == f.failOn {
		return "", errors.New(name + " crashed")
	}
	if name == "ffmpeg" {
		return "", os.WriteFile(args[len(args)-1], []byte("wav"), 0644)
	}
	for i, a := range args {
		if a == "--output-file" {
			return "", os.WriteFile(args[i+1]+".txt", []byte(f.transcript), 0644)
		}
	}
	return "", nil
}

func newWhisperConfig(t *testing.T) config.TranscriberConfig {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ggml-small.bin"), []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}
	return config.TranscriberConfig{
		BinaryPath: "whisper-cli",
		ModelDir:   dir,
		ModelSize:  "small",
		Threads:    4,
	}
}

func TestNewWhisperCppLoadFailures(t *testing.T) {
	cfg := newWhisperConfig(t)

	tests := []struct {
		name string
		cfg  config.TranscriberConfig
		exec *fakeExecutor
	}{
		{"missing binary", cfg, &fakeExecutor{missing: map[string]bool{"whisper-cli": true}}},
		{"missing ffmpeg", cfg, &fakeExecutor{missing: map[string]bool{"ffmpeg": true}}},
		{"missing model", func() config.TranscriberConfig { c := cfg; c.ModelSize = "large"; return c }(), &fakeExecutor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWhisperCpp(tt.cfg, t.TempDir(), tt.exec, logger.Nop()); err == nil {
				t.Error("NewWhisperCpp() should fail")
			}
		})
	}
}

func TestWhisperCppTranscribe(t *testing.T) {
	exec := &fakeExecutor{transcript: "\n Revenue increased.\n  John will prepare a report.\n"}
	w, err := NewWhisperCpp(newWhisperConfig(t), t.TempDir(), exec, logger.Nop())
	if err != nil {
		t.Fatalf("NewWhisperCpp() error = %v", err)
	}

	got, err := w.Transcribe(context.Background(), FromBytes("call.m4a", []byte("audio")), "de")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "Revenue increased. John will prepare a report." {
		t.Errorf("Transcribe() = %q", got)
	}
	if len(exec.calls) != 2 || !strings.Contains(exec.calls[1], "-l de") {
		t.Errorf("unexpected calls: %v", exec.calls)
	}
}

func TestWhisperCppTranscribeFailures(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExecutor
	}{
		{"ffmpeg fails", &fakeExecutor{failOn: "ffmpeg", transcript: "x"}},
		{"whisper fails", &fakeExecutor{failOn: "whisper-cli", transcript: "x"}},
		{"empty output", &fakeExecutor{transcript: " \n "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWhisperCpp(newWhisperConfig(t), t.TempDir(), tt.exec, logger.Nop())
			if err != nil {
				t.Fatal(err)
			}
			_, err = w.Transcribe(context.Background(), FromBytes("a.wav", []byte("x")), "")
			if !errors.Is(err, ErrTranscription) {
				t.Errorf("Transcribe() error = %v, want ErrTranscription", err)
			}
		})
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAI(config.OpenAIConfig{}, "", logger.Nop()); err == nil {
		t.Error("NewOpenAI() should fail without API key")
	}
}

func TestOpenAITranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.FormValue("language") != "fr" {
			http.Error(w, "missing language", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":" Bonjour. La réunion commence. "}`))
	}))
	defer srv.Close()

	tr, err := NewOpenAI(config.OpenAIConfig{
		APIKey:             "sk-test",
		BaseURL:            srv.URL + "/v1",
		TranscriptionModel: "whisper-1",
	}, "", logger.Nop())
	if err != nil {
		t.Fatal(err)
	}

	got, err := tr.Transcribe(context.Background(), FromBytes("call.wav", []byte("audio")), "fr")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "Bonjour. La réunion commence." {
		t.Errorf("Transcribe() = %q", got)
	}
}

func TestOpenAITranscribeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr, err := NewOpenAI(config.OpenAIConfig{APIKey: "sk", BaseURL: srv.URL + "/v1", TranscriptionModel: "whisper-1"}, "", logger.Nop())
	if err != nil {
		t.Fatal(err)
	}

	_, err = tr.Transcribe(context.Background(), FromBytes("a.wav", []byte("x")), "")
	if !errors.Is(err, ErrTranscription) {
		t.Errorf("error = %v, want ErrTranscription", err)
	}
}

func TestIsMeetingFile(t *testing.T) {
	tests := []struct {
		path       string
		media      bool
		transcript bool
	}{
		{"standup.wav", true, false},
		{"/in/Weekly Sync.MP4", true, false},
		{"call.m4a", true, false},
		{"notes.txt", false, true},
		{"slides.pdf", false, false},
		{"noext", false, false},
	}

	for _, tt := range tests {
		if got := IsMediaFile(tt.path); got != tt.media {
			t.Errorf("IsMediaFile(%q) = %v, want %v", tt.path, got, tt.media)
		}
		if got := IsTranscriptFile(tt.path); got != tt.transcript {
			t.Errorf("IsTranscriptFile(%q) = %v, want %v", tt.path, got, tt.transcript)
		}
		if got := IsMeetingFile(tt.path); got != (tt.media || tt.transcript) {
			t.Errorf("IsMeetingFile(%q) = %v", tt.path, got)
		}
	}
}
