package recurrence_test

import (
	"testing"

	"tasky/internal/recurrence"
)

func TestPatternValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern recurrence.Pattern
		wantErr bool
	}{
		{
			name:    "None is always valid",
			pattern: recurrence.Pattern{Type: recurrence.TypeNone},
		},
		{
			name:    "None ignores a broken interval",
			pattern: recurrence.Pattern{Type: recurrence.TypeNone, Interval: -5},
		},
		{
			name:    "Daily",
			pattern: recurrence.Pattern{Type: recurrence.TypeDaily, Interval: 1},
		},
		{
			name:    "Weekly with days",
			pattern: recurrence.Pattern{Type: recurrence.TypeWeekly, Interval: 1, DaysOfWeek: []int{1, 3, 5}},
		},
		{
			name:    "Unknown type",
			pattern: recurrence.Pattern{Type: "hourly", Interval: 1},
			wantErr: true,
		},
		{
			name:    "Zero interval",
			pattern: recurrence.Pattern{Type: recurrence.TypeDaily, Interval: 0},
			wantErr: true,
		},
		{
			name:    "Negative interval",
			pattern: recurrence.Pattern{Type: recurrence.TypeMonthly, Interval: -1},
			wantErr: true,
		},
		{
			name:    "DaysOfWeek on a daily pattern",
			pattern: recurrence.Pattern{Type: recurrence.TypeDaily, Interval: 1, DaysOfWeek: []int{1}},
			wantErr: true,
		},
		{
			name:    "Day of week out of range",
			pattern: recurrence.Pattern{Type: recurrence.TypeWeekly, Interval: 1, DaysOfWeek: []int{0, 3}},
			wantErr: true,
		},
		{
			name:    "Day of week above seven",
			pattern: recurrence.Pattern{Type: recurrence.TypeWeekly, Interval: 1, DaysOfWeek: []int{8}},
			wantErr: true,
		},
		{
			name:    "Duplicate day of week",
			pattern: recurrence.Pattern{Type: recurrence.TypeWeekly, Interval: 1, DaysOfWeek: []int{3, 3}},
			wantErr: true,
		},
		{
			name:    "Zero max occurrences",
			pattern: recurrence.Pattern{Type: recurrence.TypeDaily, Interval: 1, MaxOccurrences: intPtr(0)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
