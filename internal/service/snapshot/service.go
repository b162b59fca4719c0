package snapshot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
)

// CalendarData входные данные для календаря недоступных дат
type CalendarData struct {
	Rules      []*domain.CapacityRule
	Exceptions domain.ExceptionIndex
}

// Loader загружает снимок данных заведения для движка доступности
type Loader struct {
	scheduleRepo    ScheduleRepository
	seatingRepo     SeatingRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewLoader создает новый загрузчик снимков
func NewLoader(
	scheduleRepo ScheduleRepository,
	seatingRepo SeatingRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Loader {
	return &Loader{
		scheduleRepo:    scheduleRepo,
		seatingRepo:     seatingRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// LoadDay загружает правила, исключения на дату, залы и активные бронирования на дату.
// Вне транзакции запросы выполняются параллельно; внутри транзакции - последовательно
// на одном соединении.
func (l *Loader) LoadDay(ctx context.Context, venueID int64, date time.Time) (*availability.Snapshot, error) {
	snap := &availability.Snapshot{
		VenueID: venueID,
		Date:    date,
	}

	var exceptions []*domain.Exception

	fetchers := []func(ctx context.Context) error{
		func(ctx context.Context) error {
			rules, err := l.scheduleRepo.GetRules(ctx, venueID)
			if err != nil {
				return fmt.Errorf("%w: rules: %v", ErrFetch, err)
			}
			snap.Rules = rules
			return nil
		},
		func(ctx context.Context) error {
			var err error
			exceptions, err = l.scheduleRepo.GetExceptions(ctx, venueID, &date, &date)
			if err != nil {
				return fmt.Errorf("%w: exceptions: %v", ErrFetch, err)
			}
			return nil
		},
		func(ctx context.Context) error {
			rooms, err := l.seatingRepo.GetRooms(ctx, venueID)
			if err != nil {
				return fmt.Errorf("%w: rooms: %v", ErrFetch, err)
			}
			snap.Rooms = rooms
			return nil
		},
		func(ctx context.Context) error {
			reservations, err := l.reservationRepo.GetByFilter(ctx, domain.ReservationFilter{
				VenueID: venueID,
				Date:    date,
			})
			if err != nil {
				return fmt.Errorf("%w: reservations: %v", ErrFetch, err)
			}
			snap.Reservations = reservations
			return nil
		},
	}

	if err := l.run(ctx, fetchers); err != nil {
		l.logger.Error("LoadDay: venue=%d, date=%s: %v", venueID, date.Format(domain.DateFormat), err)
		return nil, err
	}

	snap.Exceptions = domain.NewExceptionIndex(exceptions)
	return snap, nil
}

// LoadCalendar загружает правила и исключения в диапазоне [from, to]
func (l *Loader) LoadCalendar(ctx context.Context, venueID int64, from, to time.Time) (*CalendarData, error) {
	var (
		rules      []*domain.CapacityRule
		exceptions []*domain.Exception
	)

	fetchers := []func(ctx context.Context) error{
		func(ctx context.Context) error {
			var err error
			rules, err = l.scheduleRepo.GetRules(ctx, venueID)
			if err != nil {
				return fmt.Errorf("%w: rules: %v", ErrFetch, err)
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			exceptions, err = l.scheduleRepo.GetExceptions(ctx, venueID, &from, &to)
			if err != nil {
				return fmt.Errorf("%w: exceptions: %v", ErrFetch, err)
			}
			return nil
		},
	}

	if err := l.run(ctx, fetchers); err != nil {
		l.logger.Error("LoadCalendar: venue=%d: %v", venueID, err)
		return nil, err
	}

	return &CalendarData{
		Rules:      rules,
		Exceptions: domain.NewExceptionIndex(exceptions),
	}, nil
}

// run выполняет загрузчики. Каждый пишет только в свою переменную,
// поэтому параллельный запуск не требует синхронизации.
func (l *Loader) run(ctx context.Context, fetchers []func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		for _, fetch := range fetchers {
			if err := fetch(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetchers {
		fetch := fetch
		g.Go(func() error {
			return fetch(gctx)
		})
	}
	return g.Wait()
}
