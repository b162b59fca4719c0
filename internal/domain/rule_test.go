package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    WeekdaySet
		wantErr bool
	}{
		{"english full", []string{"Tuesday", "Friday"}, NewWeekdaySet(time.Tuesday, time.Friday), false},
		{"english short mixed case", []string{"tue", "SAT"}, NewWeekdaySet(time.Tuesday, time.Saturday), false},
		{"german", []string{"Dienstag", "So."}, NewWeekdaySet(time.Tuesday, time.Sunday), false},
		{"duplicates collapse", []string{"Mon", "Monday", "Montag"}, NewWeekdaySet(time.Monday), false},
		{"empty list", nil, 0, false},
		{"unknown name", []string{"Tuesday", "Blursday"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdaySet_Contains(t *testing.T) {
	s := NewWeekdaySet(time.Sunday, time.Wednesday)

	assert.True(t, s.Contains(time.Sunday))
	assert.True(t, s.Contains(time.Wednesday))
	assert.False(t, s.Contains(time.Monday))
	assert.False(t, s.IsEmpty())
	assert.True(t, WeekdaySet(0).IsEmpty())
}

func validRule() CapacityRule {
	return CapacityRule{
		ID:              1,
		WeekdayNames:    []string{"Tuesday"},
		StartTime:       types.MustTimeString("17:30"),
		EndTime:         types.MustTimeString("20:30"),
		IntervalMinutes: 30,
		Capacity:        40,
	}
}

func TestCapacityRule_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CapacityRule)
		valid  bool
	}{
		{"valid", func(r *CapacityRule) {}, true},
		{"bad weekday", func(r *CapacityRule) { r.WeekdayNames = []string{"Tue", "nope"} }, false},
		{"no weekdays", func(r *CapacityRule) { r.WeekdayNames = nil }, false},
		{"zero interval", func(r *CapacityRule) { r.IntervalMinutes = 0 }, false},
		{"end before start", func(r *CapacityRule) { r.EndTime = types.MustTimeString("12:00") }, false},
		{"start equals end", func(r *CapacityRule) { r.EndTime = r.StartTime }, true},
		{"broken start time", func(r *CapacityRule) { r.StartTime = "25:99" }, false},
		{"negative capacity", func(r *CapacityRule) { r.Capacity = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRule()
			tt.mutate(&r)
			err := r.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMalformedRule)
			}
		})
	}
}

func TestCapacityRule_Covers(t *testing.T) {
	r := validRule()
	assert.True(t, r.Covers(ReferenceWindowStart, ReferenceWindowEnd))

	r.StartTime = types.MustTimeString("18:00")
	assert.False(t, r.Covers(ReferenceWindowStart, ReferenceWindowEnd))

	r.StartTime = types.MustTimeString("11:00")
	r.EndTime = types.MustTimeString("20:00")
	assert.False(t, r.Covers(ReferenceWindowStart, ReferenceWindowEnd))
}
