package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/diary"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/export"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/report"
)

// --- Shared types ---

// RangeInput carries the optional date window shared by every tool.
// Week is an ISO anchor date covering seven days; it cannot be combined
// with Since or Until.
type RangeInput struct {
	Since string `json:"since,omitempty" jsonschema:"include entries on or after this ISO date (YYYY-MM-DD)"`
	Until string `json:"until,omitempty" jsonschema:"include entries on or before this ISO date (YYYY-MM-DD)"`
	Week  string `json:"week,omitempty"  jsonschema:"ISO anchor date of a seven day window; excludes since/until"`
}

// parseRange resolves the window, validating the week/since-until exclusion.
func parseRange(in RangeInput) (diary.Range, error) {
	if in.Week != "" {
		if in.Since != "" || in.Until != "" {
			return diary.Range{}, errors.New("week cannot be combined with since or until")
		}
		anchor, err := diary.ParseISO(in.Week)
		if err != nil {
			return diary.Range{}, fmt.Errorf("invalid week anchor: %w", err)
		}
		return diary.WeekFrom(anchor), nil
	}

	var r diary.Range
	if in.Since != "" {
		since, err := diary.ParseISO(in.Since)
		if err != nil {
			return diary.Range{}, fmt.Errorf("invalid since value: %w", err)
		}
		r.Since = since
	}
	if in.Until != "" {
		until, err := diary.ParseISO(in.Until)
		if err != nil {
			return diary.Range{}, fmt.Errorf("invalid until value: %w", err)
		}
		r.Until = until
	}
	return r, nil
}

// DigestOutput is the output shared by the ideas and meals tools.
type DigestOutput struct {
	Markdown string   `json:"markdown"           jsonschema:"the rendered markdown digest"`
	Entries  int      `json:"entries"            jsonschema:"number of dated journal entries aggregated"`
	Files    int      `json:"files"              jsonschema:"number of documents discovered"`
	Undated  int      `json:"undated"            jsonschema:"number of documents excluded for having no date"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"non-fatal per-document warnings"`
}

// --- Ideas tool ---

// IdeasInput is the input for the ideas tool.
type IdeasInput struct {
	Src       string `json:"src"                  jsonschema:"journal export directory or a single markdown file"`
	Title     string `json:"title,omitempty"      jsonschema:"digest title (a default is used when empty)"`
	SkipEmpty bool   `json:"skip_empty,omitempty" jsonschema:"also drop sections holding only an empty sentinel"`
	RangeInput
}

func handleIdeas() mcp.ToolHandlerFor[IdeasInput, DigestOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input IdeasInput) (*mcp.CallToolResult, DigestOutput, error) {
		window, err := parseRange(input.RangeInput)
		if err != nil {
			return nil, DigestOutput{}, err
		}

		result, err := report.Run(report.Options{Source: input.Src, Range: window})
		if err != nil {
			return nil, DigestOutput{}, err
		}

		title := input.Title
		if title == "" {
			title = export.DefaultIdeasTitle
		}
		markdown := export.FormatDigest(result.Aggregate, export.DigestOptions{
			Title:     title,
			Label:     diary.LabelIdeas,
			SkipEmpty: input.SkipEmpty,
		})

		return nil, digestOutput(markdown, result), nil
	}
}

// --- Meals tool ---

// MealsInput is the input for the meals tool.
type MealsInput struct {
	Src         string `json:"src"                    jsonschema:"journal export directory or a single markdown file"`
	Title       string `json:"title,omitempty"        jsonschema:"digest title (a default is used when empty)"`
	SkipEmpty   bool   `json:"skip_empty,omitempty"   jsonschema:"also drop blocks holding only an empty sentinel"`
	StripMarker bool   `json:"strip_marker,omitempty" jsonschema:"omit the meal marker line from each block"`
	RangeInput
}

func handleMeals() mcp.ToolHandlerFor[MealsInput, DigestOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input MealsInput) (*mcp.CallToolResult, DigestOutput, error) {
		window, err := parseRange(input.RangeInput)
		if err != nil {
			return nil, DigestOutput{}, err
		}

		result, err := report.Run(report.Options{Source: input.Src, Meals: true, Range: window})
		if err != nil {
			return nil, DigestOutput{}, err
		}

		title := input.Title
		if title == "" {
			title = export.DefaultMealsTitle
		}
		markdown := export.FormatDigest(result.Aggregate, export.DigestOptions{
			Title:       title,
			Label:       diary.LabelMeals,
			SkipEmpty:   input.SkipEmpty,
			StripMarker: input.StripMarker,
		})

		return nil, digestOutput(markdown, result), nil
	}
}

// --- Bundle tool ---

// BundleInput is the input for the bundle tool.
type BundleInput struct {
	Src   string `json:"src"             jsonschema:"journal export directory or a single markdown file"`
	Order string `json:"order,omitempty" jsonschema:"section order per chapter: canonical (default) or discovery"`
	RangeInput
}

// BundleOutput is the output for the bundle tool.
type BundleOutput struct {
	Markdown string   `json:"markdown"           jsonschema:"the rendered markdown bundle"`
	Entries  int      `json:"entries"            jsonschema:"number of dated journal entries bundled"`
	Files    int      `json:"files"              jsonschema:"number of documents discovered"`
	Undated  int      `json:"undated"            jsonschema:"number of documents excluded for having no date"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"non-fatal per-document warnings"`
}

func handleBundle() mcp.ToolHandlerFor[BundleInput, BundleOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input BundleInput) (*mcp.CallToolResult, BundleOutput, error) {
		order := export.BundleOrder(input.Order)
		switch order {
		case "":
			order = export.OrderCanonical
		case export.OrderCanonical, export.OrderDiscovery:
		default:
			return nil, BundleOutput{}, fmt.Errorf("order must be %q or %q, got %q",
				export.OrderCanonical, export.OrderDiscovery, input.Order)
		}

		window, err := parseRange(input.RangeInput)
		if err != nil {
			return nil, BundleOutput{}, err
		}

		result, err := report.Run(report.Options{Source: input.Src, Range: window})
		if err != nil {
			return nil, BundleOutput{}, err
		}

		markdown := export.FormatBundle(result.Aggregate, export.BundleOptions{
			Labels: diary.DefaultLabels,
			Order:  order,
		})

		out := BundleOutput{
			Markdown: markdown,
			Entries:  result.Aggregate.Len(),
			Files:    result.Files,
			Undated:  len(result.Undated),
			Warnings: result.Warnings,
		}
		return nil, out, nil
	}
}

// --- Scan tool ---

// ScanInput is the input for the scan tool.
type ScanInput struct {
	Src string `json:"src" jsonschema:"journal export directory or a single markdown file"`
	RangeInput
}

// ScanEntry describes one dated journal entry in the inventory.
type ScanEntry struct {
	Date     string         `json:"date"     jsonschema:"resolved ISO date"`
	Source   string         `json:"source"   jsonschema:"path of the document the entry came from"`
	Title    string         `json:"title,omitempty" jsonschema:"original H1 title line when present"`
	Sections map[string]int `json:"sections" jsonschema:"captured block count per section name"`
}

// ScanOutput is the output for the scan tool.
type ScanOutput struct {
	Files    int         `json:"files"              jsonschema:"number of documents discovered"`
	Entries  []ScanEntry `json:"entries"            jsonschema:"dated entries in ascending date order"`
	Undated  []string    `json:"undated,omitempty"  jsonschema:"documents excluded for having no date"`
	Warnings []string    `json:"warnings,omitempty" jsonschema:"non-fatal per-document warnings"`
}

func handleScan() mcp.ToolHandlerFor[ScanInput, ScanOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
		window, err := parseRange(input.RangeInput)
		if err != nil {
			return nil, ScanOutput{}, err
		}

		result, err := report.Run(report.Options{Source: input.Src, Meals: true, Range: window})
		if err != nil {
			return nil, ScanOutput{}, err
		}

		out := ScanOutput{
			Files:    result.Files,
			Undated:  result.Undated,
			Warnings: result.Warnings,
		}
		for _, date := range result.Aggregate.Dates() {
			for _, entry := range result.Aggregate.Entries(date) {
				counts := make(map[string]int, len(entry.Sections))
				for _, block := range entry.Sections {
					counts[block.Label.Name]++
				}
				out.Entries = append(out.Entries, ScanEntry{
					Date:     date.ISO(),
					Source:   entry.Source,
					Title:    entry.Title,
					Sections: counts,
				})
			}
		}
		return nil, out, nil
	}
}

// digestOutput assembles the shared digest result envelope.
func digestOutput(markdown string, result *report.Result) DigestOutput {
	return DigestOutput{
		Markdown: markdown,
		Entries:  result.Aggregate.Len(),
		Files:    result.Files,
		Undated:  len(result.Undated),
		Warnings: result.Warnings,
	}
}
