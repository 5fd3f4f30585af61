// Package report runs the end-to-end extraction pipeline: discover
// documents, parse each one, and merge the results into a date-keyed
// aggregate.
//
// The pipeline is fully sequential. Documents are processed one at a time
// in discovery order; the aggregate is the only mutable state and is owned
// by the single Run call. Failures are isolated at document granularity: an
// unreadable document is reported as a warning and the run continues, while
// a missing source or an empty document set aborts before anything is
// written.
package report

import (
	"fmt"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/diary"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/output"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/source"
)

// Options configures one pipeline run.
type Options struct {
	// Source is the root to read: a single document or a directory.
	Source string
	// Labels is the active H2 label set.
	Labels []diary.Label
	// Meals additionally runs the nested habit-log meal extraction.
	Meals bool
	// Range restricts entries to an inclusive date interval. Zero means
	// no filtering.
	Range diary.Range
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Aggregate holds every in-range entry, keyed by date.
	Aggregate *diary.Aggregate
	// Files is the number of documents discovered.
	Files int
	// Undated lists documents excluded because no date could be resolved.
	// Expected for some documents; not an error.
	Undated []string
	// OutOfRange counts dated documents dropped by the range filter.
	OutOfRange int
	// Warnings holds per-document read failures. The run continues past
	// them and they do not affect the exit status.
	Warnings []string
}

// Run executes the pipeline over the configured source.
func Run(opts Options) (*Result, error) {
	labels := opts.Labels
	if len(labels) == 0 {
		labels = diary.DefaultLabels
	}

	paths, err := source.Discover(opts.Source)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	habits, _ := diary.LabelByName(labels, diary.LabelHabits)
	parseOpts := diary.ParseOptions{Labels: labels, Meals: opts.Meals, Habits: habits}

	result := &Result{
		Aggregate: diary.NewAggregate(),
		Files:     len(paths),
	}

	for _, path := range paths {
		lines, err := source.ReadLines(path)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}

		entry, ok := diary.Parse(lines, parseOpts)
		if !ok {
			result.Undated = append(result.Undated, path)
			continue
		}
		if !opts.Range.Contains(entry.Date) {
			result.OutOfRange++
			continue
		}

		entry.Source = path
		result.Aggregate.Add(entry)
	}

	return result, nil
}
