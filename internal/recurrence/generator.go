package recurrence

import (
	"sort"
	"time"
)

// Expand computes up to count future due dates for a series anchored at
// anchor, in chronological order. seriesCount is the number of rows the
// series currently holds (template plus live instances); it is the base the
// MaxOccurrences cap is evaluated against.
//
// Both bounds are checked before a candidate is appended, so a date exactly
// equal to EndDate is included and the series total never exceeds
// MaxOccurrences. Hitting a bound is normal early termination: the result is
// simply shorter than requested.
//
// Expand is pure: same inputs, same output, no clock reads.
func Expand(anchor time.Time, p Pattern, count, seriesCount int) ([]time.Time, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Type == TypeNone || count <= 0 {
		return nil, nil
	}

	next := advancer(anchor, p)
	out := make([]time.Time, 0, count)
	for len(out) < count {
		candidate := next()
		if p.EndDate != nil && candidate.After(*p.EndDate) {
			break
		}
		if p.MaxOccurrences != nil && seriesCount+len(out)+1 > *p.MaxOccurrences {
			break
		}
		out = append(out, candidate)
	}
	return out, nil
}

// advancer returns a closure yielding successive candidate due dates after
// anchor. All arithmetic goes through AddDate-style wall-clock math so a DST
// transition never shifts the time of day.
func advancer(anchor time.Time, p Pattern) func() time.Time {
	switch p.Type {
	case TypeDaily:
		k := 0
		return func() time.Time {
			k++
			return anchor.AddDate(0, 0, k*p.Interval)
		}
	case TypeWeekly:
		if len(p.DaysOfWeek) > 0 {
			return weeklyByDays(anchor, p)
		}
		k := 0
		return func() time.Time {
			k++
			return anchor.AddDate(0, 0, k*7*p.Interval)
		}
	case TypeMonthly:
		k := 0
		return func() time.Time {
			k++
			return addMonthsClamped(anchor, k*p.Interval)
		}
	case TypeYearly:
		k := 0
		return func() time.Time {
			k++
			return addYearsClamped(anchor, k*p.Interval)
		}
	}
	// Unreachable for validated non-none patterns.
	return func() time.Time { return anchor }
}

// weeklyByDays enumerates the pattern's weekdays in ascending order within
// each week cycle, starting strictly after the anchor, and jumps Interval
// weeks between cycles. The anchor's own week is cycle zero.
func weeklyByDays(anchor time.Time, p Pattern) func() time.Time {
	days := append([]int(nil), p.DaysOfWeek...)
	sort.Ints(days)

	// Monday of the anchor's week, keeping the anchor's time of day.
	weekStart := anchor.AddDate(0, 0, 1-isoWeekday(anchor.Weekday()))

	cycle := 0
	idx := 0
	return func() time.Time {
		for {
			if idx >= len(days) {
				idx = 0
				cycle++
			}
			cycleStart := weekStart.AddDate(0, 0, cycle*7*p.Interval)
			candidate := cycleStart.AddDate(0, 0, days[idx]-1)
			idx++
			if candidate.After(anchor) {
				return candidate
			}
		}
	}
}

// addMonthsClamped advances by whole months, clamping the day of month to the
// target month's last valid day. The clamp is always computed from the
// anchor's original day, never from a previously clamped value, so a Jan 31
// series yields Feb 28/29, Mar 31, Apr 30 instead of drifting downward.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	y, m, _ := anchor.Date()
	hh, mm, ss := anchor.Clock()
	firstOfTarget := time.Date(y, m, 1, hh, mm, ss, anchor.Nanosecond(), anchor.Location()).AddDate(0, months, 0)

	day := anchor.Day()
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hh, mm, ss, anchor.Nanosecond(), anchor.Location())
}

// addYearsClamped advances by whole years, preserving month and day.
// Feb 29 clamps to Feb 28 on non-leap target years.
func addYearsClamped(anchor time.Time, years int) time.Time {
	hh, mm, ss := anchor.Clock()
	targetYear := anchor.Year() + years

	day := anchor.Day()
	if last := daysInMonth(targetYear, anchor.Month()); day > last {
		day = last
	}
	return time.Date(targetYear, anchor.Month(), day, hh, mm, ss, anchor.Nanosecond(), anchor.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
