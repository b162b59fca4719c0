package get_disabled_dates

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// UseCase use case для получения недоступных дат календаря
type UseCase struct {
	loader       CalendarLoader
	engine       Engine
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader CalendarLoader, engine Engine, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		loader:       loader,
		engine:       engine,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения недоступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDisabledDates: venue=%d", req.VenueID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDisabledDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем диапазон: с сегодняшнего дня (по времени заведения) на горизонт вперед
	now := uc.timeProvider.Now()
	opts := uc.engine.Options()
	from := opts.Today(now)
	lastDay := opts.HorizonEnd(from).AddDate(0, 0, -1)

	// 3. Загружаем правила и исключения
	data, err := uc.loader.LoadCalendar(ctx, req.VenueID, from, lastDay)
	if err != nil {
		uc.logger.Error("GetDisabledDates: failed to load calendar data for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	// 4. Строим календарь
	cal := uc.engine.DisabledDates(data.Rules, data.Exceptions, now)

	for _, skipped := range cal.SkippedRules {
		uc.logger.Warn("GetDisabledDates: skipped malformed rule id=%d: %v", skipped.RuleID, skipped.Err)
	}
	uc.metrics.ObserveSkippedRules(len(cal.SkippedRules))
	uc.metrics.ObserveDisabledDates(req.VenueID, len(cal.Dates))

	uc.logger.Info("GetDisabledDates: venue=%d, %d disabled dates from %s to %s",
		req.VenueID, len(cal.Dates), cal.From.Format(domain.DateFormat), cal.To.Format(domain.DateFormat))

	return &Response{
		VenueID: req.VenueID,
		From:    cal.From,
		To:      cal.To,
		Dates:   cal.Dates,
	}, nil
}
