package check_capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeTx struct {
	dbmetrics.DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

// fakeTxManager runs fn with a transaction in ctx, like txmanager.DoReadOnly
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(dbmetrics.WithTx(ctx, fakeTx{}))
}

type fakeLoader struct {
	err  error
	inTx bool
}

func (f *fakeLoader) LoadDay(ctx context.Context, venueID int64, date time.Time) (*availability.Snapshot, error) {
	f.inTx = dbmetrics.IsInTransaction(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &availability.Snapshot{
		VenueID: venueID,
		Date:    date,
		Rules: []*domain.CapacityRule{
			{ID: 1, WeekdayNames: []string{"Tuesday"}, StartTime: "17:30", EndTime: "20:30", IntervalMinutes: 30, Capacity: 20},
		},
		Exceptions: domain.NewExceptionIndex([]*domain.Exception{{Date: time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC)}}),
		Reservations: []*domain.Reservation{
			{Time: "19:00", Guests: 16, DurationMinutes: 60, Status: domain.ReservationActive},
		},
	}, nil
}

type fakeMetrics struct {
	results []string
}

func (f *fakeMetrics) ObserveCapacityCheck(result string) { f.results = append(f.results, result) }
func (f *fakeMetrics) ObserveSkippedRules(int)            {}

var (
	tuesday     = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	nextTuesday = time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC)
	friday      = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
)

func newUseCase(loader SnapshotLoader, tx TransactionManager, m Metrics, now time.Time) *UseCase {
	uc := NewUseCase(loader, availability.NewEngine(availability.Options{}), tx, m, logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		req        *Request
		now        time.Time
		wantErr    error
		wantFits   bool
		wantAvail  int
		wantMetric string
	}{
		{
			name:       "exactly the remaining seats",
			req:        &Request{VenueID: 1, Date: tuesday, Time: "17:30", Guests: 4},
			now:        friday,
			wantFits:   true,
			wantAvail:  4,
			wantMetric: resultFits,
		},
		{
			name:       "party too large",
			req:        &Request{VenueID: 1, Date: tuesday, Time: "18:00", Guests: 5},
			now:        friday,
			wantAvail:  4,
			wantMetric: resultFull,
		},
		{
			name:       "after the reservation ends",
			req:        &Request{VenueID: 1, Date: tuesday, Time: "20:00", Guests: 20},
			now:        friday,
			wantFits:   true,
			wantAvail:  20,
			wantMetric: resultFits,
		},
		{
			name:       "exception date",
			req:        &Request{VenueID: 1, Date: nextTuesday, Time: "18:00", Guests: 2},
			now:        friday,
			wantErr:    ErrVenueClosed,
			wantMetric: resultRejected,
		},
		{
			name:       "off-grid time",
			req:        &Request{VenueID: 1, Date: tuesday, Time: "18:10", Guests: 2},
			now:        friday,
			wantErr:    ErrNotASlot,
			wantMetric: resultRejected,
		},
		{
			name:       "slot already started",
			req:        &Request{VenueID: 1, Date: tuesday, Time: "18:00", Guests: 2},
			now:        time.Date(2026, 10, 20, 18, 30, 0, 0, time.UTC),
			wantErr:    ErrSlotInPast,
			wantMetric: resultRejected,
		},
		{
			name:       "no guests",
			req:        &Request{VenueID: 1, Date: tuesday, Time: "18:00"},
			now:        friday,
			wantErr:    ErrInvalidInput,
			wantMetric: resultRejected,
		},
		{
			name:       "broken time",
			req:        &Request{VenueID: 1, Date: tuesday, Time: types.TimeString("7pm"), Guests: 2},
			now:        friday,
			wantErr:    ErrInvalidInput,
			wantMetric: resultRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			uc := newUseCase(&fakeLoader{}, &fakeTxManager{}, m, tt.now)

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Equal(t, []string{tt.wantMetric}, m.results)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFits, resp.Fits)
			assert.Equal(t, tt.wantAvail, resp.AvailableCapacity)
			assert.Equal(t, 20, resp.TotalCapacity)
			if !tt.wantFits {
				assert.Equal(t, string(availability.ReasonInsufficientCapacity), resp.Reason)
			}
		})
	}
}

func TestExecute_LoadsInsideReadOnlyTransaction(t *testing.T) {
	loader := &fakeLoader{}
	tx := &fakeTxManager{}
	uc := newUseCase(loader, tx, &fakeMetrics{}, friday)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: tuesday, Time: "17:30", Guests: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.True(t, loader.inTx)
}

func TestExecute_FetchFailure(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(&fakeLoader{err: errors.New("db down")}, &fakeTxManager{}, m, friday)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: tuesday, Time: "17:30", Guests: 1})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Equal(t, []string{resultError}, m.results)
}
