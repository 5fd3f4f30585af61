// Package diary parses Notion-style daily journal documents and extracts
// labeled sections from them.
//
// A journal document is a loosely formatted markdown file covering one day.
// It carries its date either in the top-level heading
// (# 2025年11月14日 ...) or in an inline field (日付: 2025年11月14日), and a
// fixed set of labeled H2 sections (習慣ログ, 今日の実践, ひらめき, and so
// on). Notion exports mix non-breaking spaces into headings and vary the
// spelling of the reflection label, so all matching happens on normalized
// text.
//
// The package is organized as three cooperating stages:
//
//   - NormalizeLine canonicalizes whitespace so patterns match reliably.
//   - LocateDate scans a document's lines for the first date marker.
//   - ExtractSections and ExtractMealBlocks capture the verbatim body text
//     between section boundaries.
//
// Parse ties the stages together and produces an Entry, which the
// Aggregate groups by resolved date for rendering. Body text is never
// reformatted: lines are captured and re-emitted verbatim, only heading
// markers are rewritten at render time.
package diary
