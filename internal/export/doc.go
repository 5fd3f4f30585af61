// Package export renders aggregated journal content back to markdown and
// writes the destination files.
//
// Two render shapes exist:
//
//   - Digest: one label's blocks grouped under ## YYYY-MM-DD headings,
//     each block wrapped in a ```md fence. Used for the ideas and meals
//     outputs.
//   - Bundle: per-date verbatim recombination of whole sections, the
//     original top-level heading kept (or a generated date heading when
//     the document had none) and section bodies emitted untouched. Used
//     for the weekly/range report.
//
// Dates always render in ascending calendar order, entries within a date
// in discovery order, and labels with no captured blocks for a date are
// omitted entirely; no empty headings are emitted. Rendering is pure:
// the same aggregate and options always produce byte-identical output.
package export
