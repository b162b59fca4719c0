package get_venue_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/internal/service/snapshot"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeLoader struct {
	data     *snapshot.CalendarData
	err      error
	from, to time.Time
}

func (f *fakeLoader) LoadCalendar(_ context.Context, _ int64, from, to time.Time) (*snapshot.CalendarData, error) {
	f.from, f.to = from, to
	return f.data, f.err
}

func TestExecute(t *testing.T) {
	loader := &fakeLoader{data: &snapshot.CalendarData{
		Rules: []*domain.CapacityRule{
			{ID: 1, WeekdayNames: []string{"Fr", "Sa"}, StartTime: "17:00", EndTime: "22:00", IntervalMinutes: 60, Capacity: 20},
			{ID: 2, WeekdayNames: []string{"Caturday"}, StartTime: "17:00", EndTime: "22:00", IntervalMinutes: 60},
		},
		Exceptions: domain.NewExceptionIndex([]*domain.Exception{
			{Date: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
			{Date: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)},
		}),
	}}

	uc := NewUseCase(loader, availability.NewEngine(availability.Options{HorizonDays: 90}), logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 3})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), loader.from)
	assert.Equal(t, time.Date(2027, 1, 13, 0, 0, 0, 0, time.UTC), loader.to)

	assert.Equal(t, types.TimeString("17:30"), resp.Settings.ReferenceStart)
	assert.Equal(t, 90, resp.Settings.HorizonDays)
	assert.Equal(t, "UTC", resp.Settings.Timezone)

	require.Len(t, resp.Rules, 2)
	assert.True(t, resp.Rules[0].Valid)
	assert.False(t, resp.Rules[1].Valid)
	assert.Contains(t, resp.Rules[1].Error, "Caturday")

	require.Len(t, resp.Week, 7)
	fri := resp.Week[4]
	assert.Equal(t, time.Friday, fri.Weekday)
	assert.True(t, fri.Open)
	require.NotNil(t, fri.RuleID)
	assert.Equal(t, int64(1), *fri.RuleID)
	assert.Len(t, fri.Times, 6)

	mon := resp.Week[0]
	assert.False(t, mon.Open)
	assert.Equal(t, "no_rule", mon.ClosedReason)
	assert.Nil(t, mon.RuleID)

	assert.Equal(t, []string{"2026-12-24", "2026-12-31"}, resp.Exceptions)
}

func TestExecute_Errors(t *testing.T) {
	engine := availability.NewEngine(availability.Options{})

	uc := NewUseCase(&fakeLoader{}, engine, logger.Nop())
	_, err := uc.Execute(context.Background(), &Request{VenueID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewUseCase(&fakeLoader{err: assert.AnError}, engine, logger.Nop())
	_, err = uc.Execute(context.Background(), &Request{VenueID: 1})
	assert.ErrorIs(t, err, ErrDataUnavailable)
}
