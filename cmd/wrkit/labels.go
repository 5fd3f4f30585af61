// Package main provides the entry point for the wrkit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/config"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/output"
)

// newLabelsCmd creates the labels command.
func newLabelsCmd() *cobra.Command {
	var configFlag string

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Show the active section label table",
		Long: `Show the section label table in effect: the stable name of each label
and the heading text it matches, in canonical render order.

The table comes from the config file when one defines labels, otherwise
the built-in defaults are shown.

Examples:
  wrkit labels
  wrkit labels --config ./wrkit.yaml
  wrkit labels --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLabels(cmd, configFlag)
		},
	}

	cmd.Flags().StringVar(&configFlag, "config", "", "Config file path (default: the global config)")

	return cmd
}

// runLabels executes the labels command.
func runLabels(cmd *cobra.Command, configFlag string) error {
	printer := newPrinter(cmd)

	cfg, err := config.Load(configFlag)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	labels := cfg.DiaryLabels()

	if printer.IsJSON() {
		rows := make([]map[string]string, 0, len(labels))
		for _, l := range labels {
			rows = append(rows, map[string]string{"name": l.Name, "key": l.Key})
		}
		return printer.WriteJSON(map[string]any{"labels": rows})
	}

	table := make([][]string, 0, len(labels))
	for _, l := range labels {
		table = append(table, []string{l.Name, l.Key})
	}
	printer.Table([]string{"NAME", "KEY"}, table)
	return nil
}
