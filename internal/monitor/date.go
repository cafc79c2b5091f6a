package monitor

import "time"

// DefaultTimezone is the IANA zone used to resolve "today" and render
// event timestamps unless a different location is injected.
const DefaultTimezone = "America/New_York"

const (
	timestampLayout = "2006-01-02 03:04PM"
	timeOnlyLayout  = "03:04PM"
)

// DefaultLocation loads the default timezone, falling back to UTC if the
// zone database is unavailable.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Timestamp renders t on the 12-hour clock used in event files, e.g.
// "2024-03-05 09:41AM". withDate controls whether the date prefix is
// included; the time-only form is used by availability logs.
func Timestamp(t time.Time, withDate bool) string {
	if withDate {
		return t.Format(timestampLayout)
	}
	return t.Format(timeOnlyLayout)
}

// Today returns the current (year, month, day) as observed in loc.
func Today(loc *time.Location) (int, int, int) {
	now := time.Now().In(loc)
	return now.Year(), int(now.Month()), now.Day()
}

// validDate reports whether the triple names a real calendar date.
// time.Date normalizes out-of-range components (Apr 31 becomes May 1),
// so a round-trip mismatch means the input was invalid.
func validDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// PrevDay returns the calendar day before (year, month, day), rolling over
// month and year boundaries. ok is false if the input is not a valid date.
func PrevDay(year, month, day int) (int, int, int, bool) {
	if !validDate(year, month, day) {
		return 0, 0, 0, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Add(-24 * time.Hour)
	return t.Year(), int(t.Month()), t.Day(), true
}

// NextDay returns the calendar day after (year, month, day).
// ok is false if the input is not a valid date.
func NextDay(year, month, day int) (int, int, int, bool) {
	if !validDate(year, month, day) {
		return 0, 0, 0, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return t.Year(), int(t.Month()), t.Day(), true
}
