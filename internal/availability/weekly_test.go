package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

func TestWeeklySchedule(t *testing.T) {
	lunch := &domain.CapacityRule{
		ID:              5,
		WeekdayNames:    []string{"Wednesday"},
		StartTime:       types.MustTimeString("12:00"),
		EndTime:         types.MustTimeString("15:00"),
		IntervalMinutes: 60,
		Capacity:        10,
	}
	broken := &domain.CapacityRule{ID: 9, WeekdayNames: []string{"Funday"}, IntervalMinutes: 30}

	week := NewEngine(Options{}).WeeklySchedule([]*domain.CapacityRule{broken, dinnerRule(), lunch})

	require.Len(t, week.Days, 7)
	assert.Equal(t, time.Monday, week.Days[0].Weekday)
	assert.Equal(t, time.Sunday, week.Days[6].Weekday)

	tue := week.Days[1]
	assert.True(t, tue.Open)
	assert.True(t, tue.CalendarEnabled)
	assert.Equal(t, int64(1), tue.Rule.ID)
	assert.Equal(t, []string{"17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30"}, strs(tue.Times))

	wed := week.Days[2]
	assert.False(t, wed.Open, "lunch rule does not cover the reference window")
	assert.Equal(t, ClosedNoRule, wed.ClosedReason)
	assert.False(t, wed.CalendarEnabled)
	assert.Empty(t, wed.Times)

	require.Len(t, week.SkippedRules, 1)
	assert.Equal(t, int64(9), week.SkippedRules[0].RuleID)
}

func TestWeeklySchedule_Fallback(t *testing.T) {
	lunch := &domain.CapacityRule{
		ID:              5,
		WeekdayNames:    []string{"Mi"},
		StartTime:       types.MustTimeString("12:00"),
		EndTime:         types.MustTimeString("15:00"),
		IntervalMinutes: 60,
	}

	week := NewEngine(Options{FallbackToFirstRule: true}).WeeklySchedule([]*domain.CapacityRule{lunch})

	wed := week.Days[2]
	assert.True(t, wed.Open)
	assert.False(t, wed.CalendarEnabled)
	assert.Equal(t, []string{"12:00", "13:00", "14:00", "15:00"}, strs(wed.Times))
}
