// Package main provides the entry point for the wrkit CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/config"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/output"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/report"
)

// scanRow holds one dated entry's inventory line.
type scanRow struct {
	Date     string         `json:"date"`
	Source   string         `json:"source"`
	Sections map[string]int `json:"sections"`
}

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	var srcFlag string
	var configFlag string
	var window rangeFlags

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Inventory a journal export",
		Long: `List the documents in a journal export with their resolved dates and
per-section block counts, without rendering anything.

Use this to see which documents would contribute to a digest or bundle
and which are excluded for having no resolvable date.

Examples:
  wrkit scan --src ./export
  wrkit scan --src ./export --week 2025-11-10
  wrkit scan --src ./export --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, srcFlag, configFlag, window)
		},
	}

	cmd.Flags().StringVar(&srcFlag, "src", "", "Journal export directory or a single markdown file (required)")
	cmd.Flags().StringVar(&configFlag, "config", "", "Config file path (default: the global config)")
	window.register(cmd)
	_ = cmd.MarkFlagRequired("src")

	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, srcFlag, configFlag string, window rangeFlags) error {
	printer := newPrinter(cmd)

	cfg, err := config.Load(configFlag)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	dateWindow, err := window.resolve()
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := report.Run(report.Options{
		Source: srcFlag,
		Labels: cfg.DiaryLabels(),
		Meals:  true,
		Range:  dateWindow,
	})
	if err != nil {
		printer.Error(err)
		return err
	}
	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}

	rows := buildScanRows(result)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"files":        result.Files,
			"entries":      rows,
			"undated":      result.Undated,
			"out_of_range": result.OutOfRange,
		})
	}

	printScanTable(printer, result, rows)
	return nil
}

// buildScanRows flattens the aggregate into date-ordered inventory rows.
func buildScanRows(result *report.Result) []scanRow {
	var rows []scanRow
	for _, date := range result.Aggregate.Dates() {
		for _, entry := range result.Aggregate.Entries(date) {
			counts := make(map[string]int, len(entry.Sections))
			for _, block := range entry.Sections {
				counts[block.Label.Name]++
			}
			rows = append(rows, scanRow{
				Date:     date.ISO(),
				Source:   entry.Source,
				Sections: counts,
			})
		}
	}
	return rows
}

// printScanTable renders the inventory in human-readable form.
func printScanTable(printer *output.Printer, result *report.Result, rows []scanRow) {
	headers := []string{"DATE", "SOURCE", "IDEAS", "MEALS", "SECTIONS"}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		total := 0
		for _, n := range row.Sections {
			total += n
		}
		table = append(table, []string{
			row.Date,
			row.Source,
			strconv.Itoa(row.Sections["ideas"]),
			strconv.Itoa(row.Sections["meals"]),
			strconv.Itoa(total),
		})
	}
	printer.Table(headers, table)

	printer.Print("\n%d entries from %d documents\n", len(rows), result.Files)
	for _, path := range result.Undated {
		printer.Print("undated (excluded): %s\n", path)
	}
	if result.OutOfRange > 0 {
		printer.Print("%d outside the date window\n", result.OutOfRange)
	}
}
