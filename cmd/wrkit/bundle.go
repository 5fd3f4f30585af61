// Package main provides the entry point for the wrkit CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/config"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/export"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/output"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/report"
)

// bundleFlags holds all flag values for the bundle command.
type bundleFlags struct {
	src        string
	out        string
	order      string
	configPath string
	window     rangeFlags
}

// newBundleCmd creates the bundle command.
func newBundleCmd() *cobra.Command {
	var flags bundleFlags

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Recombine journal sections into a single report",
		Long: `Recombine all recognized sections per day into one markdown document.

Each dated journal entry becomes a chapter: the original top-level heading
(or a generated date heading when the document had none) followed by its
captured sections. Section order within a chapter is canonical by default
and can follow the source document with --order discovery.

Examples:
  wrkit bundle --src ./export --out weekly.md
  wrkit bundle --src ./export --out weekly.md --week 2025-11-10
  wrkit bundle --src ./export --out weekly.md --order discovery`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBundle(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.src, "src", "", "Journal export directory or a single markdown file (required)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Write the bundle to this path (required)")
	cmd.Flags().StringVar(&flags.order, "order", "", "Section order per chapter: canonical or discovery")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path (default: the global config)")
	flags.window.register(cmd)
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// runBundle executes the bundle command.
func runBundle(cmd *cobra.Command, flags bundleFlags) error {
	printer := newPrinter(cmd)

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	order, err := resolveOrder(flags.order, cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	window, err := flags.window.resolve()
	if err != nil {
		printer.Error(err)
		return err
	}

	labels := cfg.DiaryLabels()
	result, err := report.Run(report.Options{
		Source: flags.src,
		Labels: labels,
		Range:  window,
	})
	if err != nil {
		printer.Error(err)
		return err
	}
	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}

	content := export.FormatBundle(result.Aggregate, export.BundleOptions{
		Labels: labels,
		Order:  order,
	})
	if err := export.WriteFile(flags.out, content); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		data := map[string]any{
			"files":        result.Files,
			"entries":      result.Aggregate.Len(),
			"undated":      len(result.Undated),
			"out_of_range": result.OutOfRange,
			"written":      []string{flags.out},
		}
		if !window.IsZero() {
			data["range"] = window.String()
		}
		return printer.WriteJSON(data)
	}

	printer.Print("Wrote %s\n", flags.out)
	printer.Print("%d entries from %d documents\n", result.Aggregate.Len(), result.Files)
	if !window.IsZero() {
		printer.Print("date window %s\n", window)
	}
	return nil
}

// resolveOrder picks the section order: the flag wins, then the config,
// then the canonical default.
func resolveOrder(flag string, cfg *config.Config) (export.BundleOrder, error) {
	value := flag
	if value == "" {
		value = cfg.SectionOrder
	}
	switch export.BundleOrder(value) {
	case "":
		return export.OrderCanonical, nil
	case export.OrderCanonical, export.OrderDiscovery:
		return export.BundleOrder(value), nil
	default:
		return "", output.NewUserError(fmt.Sprintf("--order must be %q or %q", export.OrderCanonical, export.OrderDiscovery))
	}
}
