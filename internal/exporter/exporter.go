package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/analyzer"
)

// Export writes <name>.md and <name>.docx. The markdown file is the source of
// truth; the docx is rendered from it.
func (e *implExporter) Export(ctx context.Context, name string, res analyzer.Result) (Files, error) {
	base := baseName(name)
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return Files{}, fmt.Errorf("create output dir: %w", err)
	}

	files := Files{
		Markdown: filepath.Join(e.outputDir, base+".md"),
		Docx:     filepath.Join(e.outputDir, base+".docx"),
	}

	md := renderMarkdown(base, res)
	if err := os.WriteFile(files.Markdown, []byte(md), 0644); err != nil {
		return Files{}, fmt.Errorf("write markdown: %w", err)
	}
	e.logger.Info(ctx, "Minutes saved: %s", files.Markdown)

	if err := markdownToDocx("Meeting minutes: "+base, md, files.Docx); err != nil {
		return Files{}, fmt.Errorf("write docx: %w", err)
	}
	e.logger.Info(ctx, "Minutes saved: %s", files.Docx)

	return files, nil
}

// baseName strips directories and the extension of the input file name.
func baseName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "meeting"
	}
	return name
}
