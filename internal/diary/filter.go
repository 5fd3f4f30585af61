package diary

// Range is an inclusive calendar interval. A zero endpoint leaves that
// side open.
type Range struct {
	Since Date
	Until Date
}

// WeekFrom derives the 7-day window [anchor, anchor+6] from an anchor
// date. The anchor is not required to fall on any particular weekday; the
// journal's own convention is a Saturday start with a Friday close, but
// any day works as an anchor.
func WeekFrom(anchor Date) Range {
	return Range{Since: anchor, Until: anchor.AddDays(6)}
}

// IsZero reports whether the range is unbounded on both sides.
func (r Range) IsZero() bool {
	return r.Since.IsZero() && r.Until.IsZero()
}

// Contains reports whether d falls inside the range. Both ends are
// inclusive: a date exactly on Since or Until is in.
func (r Range) Contains(d Date) bool {
	if !r.Since.IsZero() && d.Before(r.Since) {
		return false
	}
	if !r.Until.IsZero() && d.After(r.Until) {
		return false
	}
	return true
}

// String renders the range for diagnostics, with "-" for open ends.
func (r Range) String() string {
	since, until := "-", "-"
	if !r.Since.IsZero() {
		since = r.Since.ISO()
	}
	if !r.Until.IsZero() {
		until = r.Until.ISO()
	}
	return since + " .. " + until
}
