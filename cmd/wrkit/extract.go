// Package main provides the entry point for the wrkit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/config"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/diary"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/export"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/output"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/report"
)

// extractFlags holds all flag values for the extract command.
type extractFlags struct {
	src         string
	ideasOut    string
	mealsOut    string
	ideasTitle  string
	mealsTitle  string
	skipEmpty   bool
	stripMarker bool
	configPath  string
	window      rangeFlags
}

// newExtractCmd creates the extract command.
func newExtractCmd() *cobra.Command {
	var flags extractFlags

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract per-section digests from a journal export",
		Long: `Extract the ideas sections and the meal blocks from a journal export
and write them as date-ordered markdown digests.

Each digest groups its blocks under ISO date headings, one fenced markdown
block per captured section. Documents without a resolvable date are
excluded; unreadable documents produce a warning and the run continues.

Examples:
  wrkit extract --src ./export --ideas-out ideas.md                 # Ideas digest only
  wrkit extract --src ./export --meals-out meals.md --strip-marker  # Meals without the marker line
  wrkit extract --src ./export --ideas-out i.md --meals-out m.md --week 2025-11-10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.src, "src", "", "Journal export directory or a single markdown file (required)")
	cmd.Flags().StringVar(&flags.ideasOut, "ideas-out", "", "Write the ideas digest to this path")
	cmd.Flags().StringVar(&flags.mealsOut, "meals-out", "", "Write the meals digest to this path")
	cmd.Flags().StringVar(&flags.ideasTitle, "ideas-title", "", "Title for the ideas digest")
	cmd.Flags().StringVar(&flags.mealsTitle, "meals-title", "", "Title for the meals digest")
	cmd.Flags().BoolVar(&flags.skipEmpty, "skip-empty", false, "Also drop sections holding only an empty sentinel")
	cmd.Flags().BoolVar(&flags.stripMarker, "strip-marker", false, "Omit the meal marker line from meal blocks")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path (default: the global config)")
	flags.window.register(cmd)
	_ = cmd.MarkFlagRequired("src")

	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, flags extractFlags) error {
	printer := newPrinter(cmd)

	if flags.ideasOut == "" && flags.mealsOut == "" {
		err := output.NewUserError("specify --ideas-out, --meals-out, or both")
		printer.Error(err)
		return err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	window, err := flags.window.resolve()
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := report.Run(report.Options{
		Source: flags.src,
		Labels: cfg.DiaryLabels(),
		Meals:  flags.mealsOut != "",
		Range:  window,
	})
	if err != nil {
		printer.Error(err)
		return err
	}
	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}

	skipEmpty := flags.skipEmpty || cfg.SkipEmpty
	written, err := writeDigests(flags, skipEmpty, result.Aggregate)
	if err != nil {
		printer.Error(err)
		return err
	}

	return printExtractResult(printer, result, written, window)
}

// writeDigests renders and writes the requested digests, returning the
// paths written.
func writeDigests(flags extractFlags, skipEmpty bool, agg *diary.Aggregate) ([]string, error) {
	var written []string

	if flags.ideasOut != "" {
		title := flags.ideasTitle
		if title == "" {
			title = export.DefaultIdeasTitle
		}
		content := export.FormatDigest(agg, export.DigestOptions{
			Title:     title,
			Label:     diary.LabelIdeas,
			SkipEmpty: skipEmpty,
		})
		if err := export.WriteFile(flags.ideasOut, content); err != nil {
			return nil, err
		}
		written = append(written, flags.ideasOut)
	}

	if flags.mealsOut != "" {
		title := flags.mealsTitle
		if title == "" {
			title = export.DefaultMealsTitle
		}
		content := export.FormatDigest(agg, export.DigestOptions{
			Title:       title,
			Label:       diary.LabelMeals,
			SkipEmpty:   skipEmpty,
			StripMarker: flags.stripMarker,
		})
		if err := export.WriteFile(flags.mealsOut, content); err != nil {
			return nil, err
		}
		written = append(written, flags.mealsOut)
	}

	return written, nil
}

// printExtractResult reports the run summary in the active output mode.
func printExtractResult(printer *output.Printer, result *report.Result, written []string, window diary.Range) error {
	if printer.IsJSON() {
		data := map[string]any{
			"files":        result.Files,
			"entries":      result.Aggregate.Len(),
			"undated":      len(result.Undated),
			"out_of_range": result.OutOfRange,
			"written":      written,
		}
		if !window.IsZero() {
			data["range"] = window.String()
		}
		return printer.WriteJSON(data)
	}

	for _, path := range written {
		printer.Print("Wrote %s\n", path)
	}
	printer.Print("%d entries from %d documents", result.Aggregate.Len(), result.Files)
	if n := len(result.Undated); n > 0 {
		printer.Print(" (%d undated, excluded)", n)
	}
	if result.OutOfRange > 0 {
		printer.Print(" (%d outside the date window)", result.OutOfRange)
	}
	printer.Println()
	if !window.IsZero() {
		printer.Print("date window %s\n", window)
	}
	return nil
}
