package transcriber

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// mediaExtensions are the containers ffmpeg is asked to decode.
	mediaExtensions = []string{
		".wav", ".mp3", ".m4a", ".aac", ".flac", ".ogg", ".opus",
		".mp4", ".mov", ".mkv", ".webm", ".avi", ".m4v",
	}
	transcriptExtensions = []string{".txt"}
)

// IsMediaFile reports whether path looks like a meeting recording.
func IsMediaFile(path string) bool {
	return slices.Contains(mediaExtensions, strings.ToLower(filepath.Ext(path)))
}

// IsTranscriptFile reports whether path holds an existing transcript.
func IsTranscriptFile(path string) bool {
	return slices.Contains(transcriptExtensions, strings.ToLower(filepath.Ext(path)))
}

// IsMeetingFile reports whether the pipeline accepts path.
func IsMeetingFile(path string) bool {
	return IsMediaFile(path) || IsTranscriptFile(path)
}

type SourceKind int

const (
	// SourceFile is an audio or video file on disk.
	SourceFile SourceKind = iota + 1
	// SourceBytes is an in-memory audio buffer.
	SourceBytes
	// SourceText is an existing transcript; no transcription is needed.
	SourceText
	// SourceSample asks for the built-in demo transcript.
	SourceSample
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceBytes:
		return "bytes"
	case SourceText:
		return "text"
	case SourceSample:
		return "sample"
	default:
		return "unknown"
	}
}

// Source is the opaque input handle handed to a Transcriber.
type Source struct {
	Kind SourceKind
	// Path is set for SourceFile.
	Path string
	// Name is a file name hint for SourceBytes (its extension picks the codec).
	Name string
	Data []byte
	Text string
}

func FromFile(path string) Source { return Source{Kind: SourceFile, Path: path} }

func FromBytes(name string, data []byte) Source {
	return Source{Kind: SourceBytes, Name: name, Data: data}
}

func FromText(text string) Source { return Source{Kind: SourceText, Text: text} }

func Sample() Source { return Source{Kind: SourceSample} }

// IsAudio reports whether the source needs speech recognition.
func (s Source) IsAudio() bool {
	return s.Kind == SourceFile || s.Kind == SourceBytes
}

// Label is a short human-readable description of the source.
func (s Source) Label() string {
	switch s.Kind {
	case SourceFile:
		return filepath.Base(s.Path)
	case SourceBytes:
		if s.Name != "" {
			return s.Name
		}
		return fmt.Sprintf("%d bytes", len(s.Data))
	case SourceText:
		return "inline transcript"
	case SourceSample:
		return "sample meeting"
	default:
		return "unknown source"
	}
}

// Validate checks the structural preconditions of the source.
func (s Source) Validate() error {
	switch s.Kind {
	case SourceFile:
		if s.Path == "" {
			return fmt.Errorf("%w: empty file path", ErrInvalidSource)
		}
		info, err := os.Stat(s.Path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSource, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrInvalidSource, s.Path)
		}
	case SourceBytes:
		if len(s.Data) == 0 {
			return fmt.Errorf("%w: empty audio buffer", ErrInvalidSource)
		}
	case SourceText:
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("%w: empty transcript text", ErrInvalidSource)
		}
	case SourceSample:
	default:
		return fmt.Errorf("%w: unknown source kind %d", ErrInvalidSource, s.Kind)
	}
	return nil
}
