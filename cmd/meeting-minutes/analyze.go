package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
	"github.com/spf13/cobra"
)

// sampleName names the minutes written for --sample.
const sampleName = "sample-meeting"

var sample bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze one recording or transcript and write the minutes",
	Long: `Analyze runs the pipeline on a single audio, video or .txt file and
writes <name>.md and <name>.docx into the output folder. With --sample it
runs on the built-in demo meeting instead.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if sample {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&sample, "sample", false, "analyze the built-in demo meeting")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var path string
	if !sample {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(abs); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input file not found: %s", abs)
		}
		path = abs
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	var out processor.Outcome
	if sample {
		out, err = a.processor.AnalyzeSource(ctx, sampleName, transcriber.Sample())
	} else {
		out, err = a.processor.Analyze(ctx, path)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintln(w, out.Result.Summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Action items:")
	fmt.Fprintln(w, out.Result.ActionItems.String())
	fmt.Fprintln(w)
	if out.Result.Provenance.Placeholder {
		fmt.Fprintln(w, "Warning: no speech model was available, the transcript is a placeholder.")
	}
	fmt.Fprintf(w, "Minutes: %s, %s\n", out.Files.Markdown, out.Files.Docx)
	return nil
}
