package diary

import (
	"sort"
	"strings"
)

// Entry is the contribution of a single document to the aggregate: its
// resolved date, the original top-level heading when one exists, and the
// captured section blocks in discovery order.
type Entry struct {
	Date     Date
	Title    string // first H1 line, verbatim; empty when the document has none
	Sections []SectionBlock
	Source   string // originating file path, for diagnostics only
}

// BlocksFor returns the entry's blocks carrying the named label, in
// discovery order.
func (e *Entry) BlocksFor(name string) []SectionBlock {
	var blocks []SectionBlock
	for _, b := range e.Sections {
		if b.Label.Name == name {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ParseOptions controls which sections Parse captures.
type ParseOptions struct {
	// Labels is the active H2 label set; sections matching any of these
	// are captured whole.
	Labels []Label
	// Meals additionally runs the nested habit-log extraction and tags
	// the resulting blocks with the meals label.
	Meals bool
	// Habits is the umbrella label for the nested extraction. Zero value
	// means the default habit-log label.
	Habits Label
}

// Parse processes one document's lines into an Entry. Returns ok=false
// when no date could be resolved anywhere in the document; such documents
// are excluded from all downstream aggregation.
func Parse(lines []string, opts ParseOptions) (*Entry, bool) {
	date, ok := LocateDate(lines)
	if !ok {
		return nil, false
	}

	entry := &Entry{Date: date, Title: findTitle(lines)}
	entry.Sections = ExtractSections(lines, opts.Labels)

	if opts.Meals {
		habits := opts.Habits
		if habits == (Label{}) {
			habits, _ = LabelByName(DefaultLabels, LabelHabits)
		}
		entry.Sections = append(entry.Sections, ExtractMealBlocks(lines, habits)...)
	}

	return entry, true
}

// findTitle returns the first top-level heading line, trimmed of
// surrounding whitespace, or "" when the document has none.
func findTitle(lines []string) string {
	for _, line := range lines {
		if isH1(line) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// Aggregate groups entries by resolved date. It is the pipeline's sole
// mutable state: built incrementally as documents are processed, consumed
// once at render time. Within a date, entries keep file discovery order
// since one date may appear in more than one document.
type Aggregate struct {
	byDate map[Date][]*Entry
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{byDate: make(map[Date][]*Entry)}
}

// Add appends an entry under its resolved date.
func (a *Aggregate) Add(entry *Entry) {
	a.byDate[entry.Date] = append(a.byDate[entry.Date], entry)
}

// Dates returns every date present, in ascending calendar order.
func (a *Aggregate) Dates() []Date {
	dates := make([]Date, 0, len(a.byDate))
	for d := range a.byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Entries returns the entries recorded for a date, in discovery order.
func (a *Aggregate) Entries(d Date) []*Entry {
	return a.byDate[d]
}

// Len returns the total number of entries across all dates.
func (a *Aggregate) Len() int {
	total := 0
	for _, entries := range a.byDate {
		total += len(entries)
	}
	return total
}
