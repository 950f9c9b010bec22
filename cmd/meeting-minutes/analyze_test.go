package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAnalyzeSample(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgYAML := fmt.Sprintf(`mode: simple
paths:
  input: %[1]s/input
  output: %[1]s/output
  archived: %[1]s/archived
  temp: %[1]s/temp
store:
  path: %[1]s/history.sqlite
logging:
  level: error
`, dir)
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"analyze", "--sample", "--config", cfgPath})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		sample = false
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("analyze --sample error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"Summary:", "Our revenue grew by 15%", "• Sarah will prepare the budget report by Friday."} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "placeholder") {
		t.Errorf("demo run must not be reported as a placeholder:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "output", sampleName+".md")); err != nil {
		t.Errorf("minutes not written: %v", err)
	}
}
