package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/diary"
	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/output"
)

// reMealMarker strips the leading 【食事】 marker when the digest is
// rendered marker-free.
var reMealMarker = regexp.MustCompile(`^【\s*食事\s*】`)

// Default digest titles, mirroring the journal's own labels.
const (
	DefaultIdeasTitle = "✨ ひらめき（抽出）"
	DefaultMealsTitle = "🧪 習慣ログ / 【食事】（抽出）"
)

// DigestOptions controls the fenced per-label output.
type DigestOptions struct {
	// Title is the document's H1 text, emitted verbatim after "# ".
	Title string
	// Label selects which blocks to render (by label name).
	Label string
	// SkipEmpty drops blocks whose body is only an empty sentinel
	// (なし, - なし, —).
	SkipEmpty bool
	// StripMarker removes the 【食事】 marker line from meal blocks
	// instead of emitting it verbatim.
	StripMarker bool
}

// FormatDigest renders one label's blocks grouped by date. Dates iterate
// ascending; blocks keep discovery order; dates with nothing captured are
// skipped entirely.
func FormatDigest(agg *diary.Aggregate, opts DigestOptions) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# %s\n", opts.Title)

	for _, date := range agg.Dates() {
		blocks := collectBlocks(agg, date, opts.Label, opts.SkipEmpty)
		if len(blocks) == 0 {
			continue
		}
		fmt.Fprintf(&builder, "## %s\n", date.ISO())
		for _, block := range blocks {
			writeFencedBlock(&builder, block, opts.StripMarker)
		}
	}

	return strings.TrimRight(builder.String(), "\n") + "\n"
}

// collectBlocks gathers a date's blocks for one label across all of the
// date's entries, filtered for blank (and optionally sentinel) bodies.
func collectBlocks(agg *diary.Aggregate, date diary.Date, label string, skipEmpty bool) []diary.SectionBlock {
	var blocks []diary.SectionBlock
	for _, entry := range agg.Entries(date) {
		blocks = append(blocks, diary.FilterBlocks(entry.BlocksFor(label), skipEmpty)...)
	}
	return blocks
}

// writeFencedBlock emits one block inside a ```md fence. Meal blocks
// include their marker line unless stripping is requested; H2-sectioned
// blocks (ideas) emit body lines only.
func writeFencedBlock(builder *strings.Builder, block diary.SectionBlock, stripMarker bool) {
	lines := blockLines(block, stripMarker)
	content := strings.TrimRight(strings.Join(lines, "\n"), "\n")

	builder.WriteString("```md\n")
	builder.WriteString(content)
	builder.WriteString("\n```\n\n")
}

// blockLines selects which of a block's lines appear in the digest.
func blockLines(block diary.SectionBlock, stripMarker bool) []string {
	if block.Label.Name != diary.LabelMeals {
		return block.Body
	}

	if !stripMarker {
		return append([]string{block.Heading}, block.Body...)
	}

	// Marker-stripped form: drop the marker text, keep anything that
	// followed it on the same line.
	rest := strings.TrimSpace(reMealMarker.ReplaceAllString(diary.NormalizeLine(block.Heading), ""))
	if rest == "" {
		return block.Body
	}
	return append([]string{rest}, block.Body...)
}

// BundleOrder selects how sections are arranged within an entry.
type BundleOrder string

const (
	// OrderCanonical rewrites section order to the label table's fixed
	// sequence, regardless of how the source document arranged them.
	OrderCanonical BundleOrder = "canonical"
	// OrderDiscovery keeps the order the headings appeared in the source.
	OrderDiscovery BundleOrder = "discovery"
)

// BundleOptions controls the per-date recombined report.
type BundleOptions struct {
	// Labels is the label table, in canonical order.
	Labels []diary.Label
	// Order arranges sections within an entry. Zero value means canonical.
	Order BundleOrder
}

// FormatBundle renders the recombined report: for each date ascending,
// each entry in discovery order emits its top-level heading (original H1
// verbatim, or a generated Japanese date heading when the document had
// none) followed by its captured sections with verbatim bodies and
// blank-line separators.
func FormatBundle(agg *diary.Aggregate, opts BundleOptions) string {
	var lines []string

	for _, date := range agg.Dates() {
		for _, entry := range agg.Entries(date) {
			lines = append(lines, entryHeading(entry), "")

			for _, block := range orderedSections(entry, opts) {
				lines = append(lines, block.Heading)
				lines = append(lines, block.Body...)
				lines = append(lines, "")
			}

			// Blank line between day groups.
			lines = append(lines, "")
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// entryHeading returns the H1 for an entry: the original title when the
// document had one, a generated date heading otherwise.
func entryHeading(entry *diary.Entry) string {
	if entry.Title != "" {
		return entry.Title
	}
	return "# " + entry.Date.Japanese()
}

// orderedSections arranges an entry's H2 blocks per the configured order.
// Meal blocks never appear in the bundle; the habit log is emitted whole.
func orderedSections(entry *diary.Entry, opts BundleOptions) []diary.SectionBlock {
	if opts.Order == OrderDiscovery {
		var blocks []diary.SectionBlock
		for _, b := range entry.Sections {
			if b.Label.Name != diary.LabelMeals {
				blocks = append(blocks, b)
			}
		}
		return blocks
	}

	labels := opts.Labels
	if len(labels) == 0 {
		labels = diary.DefaultLabels
	}
	var blocks []diary.SectionBlock
	for _, label := range labels {
		blocks = append(blocks, entry.BlocksFor(label.Name)...)
	}
	return blocks
}

// WriteFile writes rendered content to path, creating parent directories
// as needed. An existing file is overwritten unconditionally.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output.NewSystemErrorWithCause(fmt.Sprintf("failed to create output directory %s", dir), err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write file %s", path), err)
	}
	return nil
}
