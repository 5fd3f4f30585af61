// Package main provides the entry point for the wrkit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/diary"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/output"
)

// rangeFlags holds the date window flags shared by every reading command.
type rangeFlags struct {
	since string
	until string
	week  string
}

// register adds the window flags to a command.
func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.since, "since", "", "Include entries on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&r.until, "until", "", "Include entries on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&r.week, "week", "", "Seven-day window anchored at this date (YYYY-MM-DD); excludes --since/--until")
}

// resolve parses the flags into a date range. --week covers the anchor
// date plus the six days after it and cannot be combined with the
// explicit bounds.
func (r *rangeFlags) resolve() (diary.Range, error) {
	if r.week != "" {
		if r.since != "" || r.until != "" {
			return diary.Range{}, output.NewUserError("--week cannot be combined with --since or --until")
		}
		anchor, err := diary.ParseISO(r.week)
		if err != nil {
			return diary.Range{}, output.NewUserError("--week must be a YYYY-MM-DD date: " + err.Error())
		}
		return diary.WeekFrom(anchor), nil
	}

	var window diary.Range
	if r.since != "" {
		since, err := diary.ParseISO(r.since)
		if err != nil {
			return diary.Range{}, output.NewUserError("--since must be a YYYY-MM-DD date: " + err.Error())
		}
		window.Since = since
	}
	if r.until != "" {
		until, err := diary.ParseISO(r.until)
		if err != nil {
			return diary.Range{}, output.NewUserError("--until must be a YYYY-MM-DD date: " + err.Error())
		}
		window.Until = until
	}
	if !window.Since.IsZero() && !window.Until.IsZero() && window.Until.Before(window.Since) {
		return diary.Range{}, output.NewUserError("--until must not precede --since")
	}
	return window, nil
}
