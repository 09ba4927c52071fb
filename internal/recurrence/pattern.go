package recurrence

import (
	"fmt"
	"time"
)

// Type enumerates the supported recurrence kinds.
type Type string

const (
	TypeNone    Type = "none"
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
	TypeYearly  Type = "yearly"
)

// Pattern is an immutable description of how a task repeats.
//
// DaysOfWeek uses ISO numbering (1=Monday .. 7=Sunday) and is meaningful only
// for weekly patterns; empty means "same weekday as the template's due date".
// EndDate is an inclusive upper bound on instance due dates. MaxOccurrences is
// an inclusive cap on the series cardinality, template included.
type Pattern struct {
	Type           Type
	Interval       int
	DaysOfWeek     []int
	EndDate        *time.Time
	MaxOccurrences *int
}

// None returns the pattern of a non-recurring task.
func None() Pattern {
	return Pattern{Type: TypeNone, Interval: 1}
}

// InvalidPatternError reports a malformed recurrence configuration. It is
// surfaced before any generation or persistence attempt; a bad pattern is
// never silently coerced to a default.
type InvalidPatternError struct {
	Reason string
}

func (e *InvalidPatternError) Error() string {
	return "invalid recurrence pattern: " + e.Reason
}

func invalidPattern(format string, arg ...any) error {
	return &InvalidPatternError{Reason: fmt.Sprintf(format, arg...)}
}

// Validate checks the pattern's internal consistency. TypeNone is always
// valid: it means no generation regardless of the other fields.
func (p Pattern) Validate() error {
	switch p.Type {
	case TypeNone:
		return nil
	case TypeDaily, TypeWeekly, TypeMonthly, TypeYearly:
	default:
		return invalidPattern("unknown type %q", p.Type)
	}

	if p.Interval < 1 {
		return invalidPattern("interval must be positive, got %d", p.Interval)
	}

	if len(p.DaysOfWeek) > 0 {
		if p.Type != TypeWeekly {
			return invalidPattern("daysOfWeek is only valid for weekly patterns, got type %q", p.Type)
		}
		seen := map[int]bool{}
		for _, d := range p.DaysOfWeek {
			if d < 1 || d > 7 {
				return invalidPattern("day of week %d out of range 1..7", d)
			}
			if seen[d] {
				return invalidPattern("duplicate day of week %d", d)
			}
			seen[d] = true
		}
	}

	if p.MaxOccurrences != nil && *p.MaxOccurrences < 1 {
		return invalidPattern("maxOccurrences must be positive, got %d", *p.MaxOccurrences)
	}

	return nil
}

// isoWeekday maps time.Weekday to ISO numbering (1=Monday .. 7=Sunday).
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
