package diary

import (
	"regexp"
	"strings"
)

// Bracket-delimited sub-block markers inside the habit log, e.g. 【食事】
// or 【睡眠】. The meal marker tolerates stray spaces inside the brackets.
var (
	reBracketMarker = regexp.MustCompile(`^【(.+?)】`)
	reMealMarker    = regexp.MustCompile(`^【\s*食事\s*】`)
)

// emptySentinels are trimmed block bodies that mean "nothing recorded".
// Blocks consisting solely of one of these are dropped when the skip-empty
// option is on.
var emptySentinels = map[string]bool{
	"なし":   true,
	"- なし": true,
	"—":    true,
}

// SectionBlock is one captured section: the heading (or marker) line and
// the body lines that followed it, both verbatim.
type SectionBlock struct {
	Label   Label
	Heading string
	Body    []string
}

// Text returns the block's trimmed body text with the heading excluded.
// Meal blocks additionally drop the leading 【食事】 marker so the sentinel
// test sees only the recorded content.
func (b SectionBlock) Text() string {
	body := strings.TrimSpace(strings.Join(b.Body, "\n"))
	if b.Label.Name == LabelMeals {
		first := strings.TrimSpace(reMealMarker.ReplaceAllString(NormalizeLine(b.Heading), ""))
		if first != "" {
			if body == "" {
				return first
			}
			return first + "\n" + body
		}
	}
	return body
}

// IsEmpty reports whether the block captured no content at all.
func (b SectionBlock) IsEmpty() bool {
	return b.Text() == ""
}

// IsEmptySentinel reports whether the block's body is exactly one of the
// "nothing recorded" tokens.
func (b SectionBlock) IsEmptySentinel() bool {
	return emptySentinels[b.Text()]
}

// sectionBoundary reports whether a line terminates the currently open
// section: any H1 or H2 heading, or a fresh inline date field. The
// terminating line itself is not consumed; scanning resumes from it.
func sectionBoundary(line string) bool {
	return isH1(line) || isH2(line) || isInlineDateLine(line)
}

// ExtractSections scans the document for H2 headings matching any label in
// the set and captures each section's body verbatim until the next
// boundary. Blocks are returned in the order their headings appeared. A
// label that never occurs simply contributes no blocks.
func ExtractSections(lines []string, labels []Label) []SectionBlock {
	var blocks []SectionBlock
	for i := 0; i < len(lines); {
		label, ok := MatchAnyLabel(labels, lines[i])
		if !ok {
			i++
			continue
		}
		block := SectionBlock{Label: label, Heading: lines[i]}
		j := i + 1
		for j < len(lines) && !sectionBoundary(lines[j]) {
			block.Body = append(block.Body, lines[j])
			j++
		}
		blocks = append(blocks, block)
		i = j
	}
	return blocks
}

// ExtractMealBlocks performs the nested habit-log extraction: within each
// 🧪 習慣ログ section, only the sub-blocks introduced by the 【食事】 marker
// are captured. Other bracket markers (【睡眠】, 【運動】, ...) end the
// current meal block and their sub-blocks are discarded. The marker line is
// kept as the block heading so renderers can choose to emit or strip it.
func ExtractMealBlocks(lines []string, habits Label) []SectionBlock {
	meals := Label{Name: LabelMeals, Key: "食事"}

	var blocks []SectionBlock
	inHabits := false
	for i := 0; i < len(lines); {
		line := lines[i]

		// Track whether we are inside the habit-log umbrella section.
		if habits.MatchHeading(line) {
			inHabits = true
			i++
			continue
		}
		if isH1(line) || isH2(line) || isInlineDateLine(line) {
			inHabits = false
			i++
			continue
		}

		norm := NormalizeLine(line)
		if !inHabits || !reMealMarker.MatchString(norm) {
			i++
			continue
		}

		block := SectionBlock{Label: meals, Heading: line}
		j := i + 1
		for j < len(lines) {
			next := NormalizeLine(lines[j])
			if sectionBoundary(lines[j]) {
				break
			}
			if reBracketMarker.MatchString(next) && !reMealMarker.MatchString(next) {
				break
			}
			block.Body = append(block.Body, lines[j])
			j++
		}
		blocks = append(blocks, block)
		i = j
	}
	return blocks
}

// FilterBlocks drops blocks with nothing in them and, when skipEmpty is
// on, blocks whose body is only an empty sentinel. Used by the digest
// outputs; the bundle output keeps every captured section.
func FilterBlocks(blocks []SectionBlock, skipEmpty bool) []SectionBlock {
	var kept []SectionBlock
	for _, b := range blocks {
		if b.IsEmpty() {
			continue
		}
		if skipEmpty && b.IsEmptySentinel() {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}
