package diary

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a plain calendar date (no time of day, no zone).
type Date struct {
	Year  int
	Month int
	Day   int
}

// Date-bearing line patterns. The heading form allows trailing text
// ("# 2025年11月14日 ClientWork 10h達成 🎉"); the inline form accepts a
// full- or half-width colon. The exact inline pattern requires the date to
// be the whole line; the prefix form is the relaxed variant used to detect
// date fields as section terminators mid-document.
var (
	reHeadingDate     = regexp.MustCompile(`^#\s*(\d{4})年(\d{1,2})月(\d{1,2})日`)
	reInlineDate      = regexp.MustCompile(`^\s*日付\s*[:：]\s*(\d{4})年(\d{1,2})月(\d{1,2})日\s*$`)
	reInlineDateField = regexp.MustCompile(`^\s*日付\s*[:：]\s*(\d{4})年(\d{1,2})月(\d{1,2})日`)
)

// NewDate creates a Date from year, month, and day.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseISO parses a YYYY-MM-DD date string.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q; use YYYY-MM-DD", s)
	}
	return NewDate(t.Year(), int(t.Month()), t.Day()), nil
}

// IsZero returns true for the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// ISO returns the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Japanese returns the date in the journal's own idiom, e.g. 2025年11月14日.
// Month and day are unpadded, matching how Notion renders them.
func (d Date) Japanese() string {
	return fmt.Sprintf("%d年%d月%d日", d.Year, d.Month, d.Day)
}

// String implements fmt.Stringer using the ISO form.
func (d Date) String() string {
	return d.ISO()
}

// Time returns the date as a UTC midnight time.Time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	t := d.Time().AddDate(0, 0, n)
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// DateFromLine extracts a date from a single line. The heading form is
// tried first, then the exact inline form. Returns ok=false when the line
// carries no date.
func DateFromLine(line string) (Date, bool) {
	s := NormalizeLine(line)
	m := reHeadingDate.FindStringSubmatch(s)
	if m == nil {
		m = reInlineDate.FindStringSubmatch(s)
	}
	if m == nil {
		return Date{}, false
	}
	return dateFromMatch(m), true
}

// LocateDate scans the whole document and returns the first date found.
// First match wins: a later, different date does not override the
// resolution even if it appears as a top-level heading.
func LocateDate(lines []string) (Date, bool) {
	for _, line := range lines {
		if d, ok := DateFromLine(line); ok {
			return d, true
		}
	}
	return Date{}, false
}

// isInlineDateLine reports whether a normalized line opens with an inline
// date field. Relaxed prefix match: inside a section body a fresh date
// field always terminates the block, trailing text or not.
func isInlineDateLine(line string) bool {
	return reInlineDateField.MatchString(NormalizeLine(line))
}

// dateFromMatch builds a Date from the three captured digit groups.
func dateFromMatch(m []string) Date {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return NewDate(year, month, day)
}
