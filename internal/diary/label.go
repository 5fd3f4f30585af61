package diary

import (
	"regexp"
	"strings"
)

// Heading markers. reH2 deliberately requires whitespace after the two
// hashes so H3+ headings are not treated as section boundaries.
var (
	reH1 = regexp.MustCompile(`^#\s+`)
	reH2 = regexp.MustCompile(`^##\s+`)
)

// Label identifies one known journal section.
type Label struct {
	// Name is the stable machine identifier used in configuration, flags
	// and output selection.
	Name string
	// Key is the text matched (by containment) inside a normalized H2
	// heading line.
	Key string
}

// Well-known label names.
const (
	LabelHabits     = "habits"
	LabelPractice   = "practice"
	LabelIdeas      = "ideas"
	LabelInsights   = "insights"
	LabelReflection = "reflection"
	// LabelMeals tags the 【食事】 sub-blocks extracted from inside the
	// habit log. It is not an H2 label and never matches a heading.
	LabelMeals = "meals"
)

// DefaultLabels is the canonical label table in the order sections appear
// in the journal template. Rendering in "canonical" order follows this
// sequence. Initialized once, never mutated.
var DefaultLabels = []Label{
	{Name: LabelHabits, Key: "🧪 習慣ログ"},
	{Name: LabelPractice, Key: "☀️ 今日の実践"},
	{Name: LabelIdeas, Key: "✨ ひらめき"},
	{Name: LabelInsights, Key: "🧠 新たな学び・気づき・共感"},
	{Name: LabelReflection, Key: "🚧 振返り・分析・改善点"},
}

// foldVariant maps the long spelling 振り返り onto 振返り so either form of
// the reflection heading resolves to the same label. Applied symmetrically
// to both the key and the candidate heading text.
func foldVariant(s string) string {
	return strings.ReplaceAll(s, "振り返り", "振返り")
}

// MatchHeading reports whether the line is an H2 heading that opens the
// section identified by l. Matching is containment on whitespace-collapsed,
// variant-folded text.
func (l Label) MatchHeading(line string) bool {
	s := NormalizeLine(line)
	if !reH2.MatchString(s) {
		return false
	}
	text := strings.TrimSpace(strings.TrimPrefix(collapseSpaces(strings.TrimSpace(s)), "##"))
	return strings.Contains(foldVariant(text), foldVariant(strings.TrimSpace(l.Key)))
}

// MatchAnyLabel returns the first label in the set whose heading matches
// the line.
func MatchAnyLabel(labels []Label, line string) (Label, bool) {
	for _, l := range labels {
		if l.MatchHeading(line) {
			return l, true
		}
	}
	return Label{}, false
}

// LabelByName looks a label up by its stable name.
func LabelByName(labels []Label, name string) (Label, bool) {
	for _, l := range labels {
		if l.Name == name {
			return l, true
		}
	}
	return Label{}, false
}

// isH1 reports whether the normalized line is a top-level heading.
func isH1(line string) bool {
	return reH1.MatchString(NormalizeLine(line))
}

// isH2 reports whether the normalized line is a second-level heading.
func isH2(line string) bool {
	return reH2.MatchString(NormalizeLine(line))
}
