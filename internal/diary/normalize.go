package diary

import (
	"regexp"
	"strings"
)

// nbsp is the non-breaking space Notion mixes into exported text.
const nbsp = "\u00A0"

// spaceRun matches one or more whitespace characters for collapsing.
var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeLine replaces every non-breaking space with a regular space.
// Content is otherwise untouched; the function is pure and idempotent.
func NormalizeLine(s string) string {
	return strings.ReplaceAll(s, nbsp, " ")
}

// collapseSpaces normalizes a line and squeezes every whitespace run to a
// single space. Used for heading comparison only, never for captured body
// text.
func collapseSpaces(s string) string {
	return spaceRun.ReplaceAllString(NormalizeLine(s), " ")
}
