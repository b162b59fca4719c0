package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/metrics"
)

// UseCase use case для получения слотов бронирования столов
type UseCase struct {
	loader       SnapshotLoader
	engine       Engine
	metrics      Metrics
	timeProvider TimeProvider
	fetchTimeout time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// fetchTimeout ограничивает загрузку данных (0 - без ограничения).
func NewUseCase(
	loader SnapshotLoader,
	engine Engine,
	metrics Metrics,
	fetchTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:       loader,
		engine:       engine,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Ошибка загрузки данных не возвращается: ответ деградирует до «закрыто» без слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: venue=%d, date=%s", req.VenueID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем горизонт
	now := uc.timeProvider.Now()
	opts := uc.engine.Options()
	if err := validateHorizon(req.Date, now, opts); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Загружаем снимок данных на дату
	fetchCtx := ctx
	if uc.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, uc.fetchTimeout)
		defer cancel()
	}

	snap, err := uc.loader.LoadDay(fetchCtx, req.VenueID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load snapshot for venue=%d, responding closed: %v", req.VenueID, err)
		uc.metrics.ObserveAvailability(metrics.OutcomeDegraded, 0, 0)
		return &Response{
			Date:     req.Date,
			VenueID:  req.VenueID,
			Degraded: true,
			Slots:    []Slot{},
		}, nil
	}

	// 4. Считаем доступность
	result := uc.engine.Slots(snap, now)

	for _, skipped := range result.SkippedRules {
		uc.logger.Warn("GetAvailableSlots: skipped malformed rule id=%d: %v", skipped.RuleID, skipped.Err)
	}
	uc.metrics.ObserveSkippedRules(len(result.SkippedRules))

	// 5. Формируем ответ
	slots := make([]Slot, len(result.Slots))
	for i, s := range result.Slots {
		slots[i] = Slot{
			Time:              s.Time,
			AvailableCapacity: s.AvailableCapacity,
			Bookable:          s.Bookable,
		}
	}

	outcome := metrics.OutcomeOpen
	if !result.Open {
		outcome = metrics.OutcomeClosed
		uc.logger.Info("GetAvailableSlots: venue=%d closed on %s (%s)",
			req.VenueID, req.Date.Format(domain.DateFormat), result.ClosedReason)
	}
	bookable := result.BookableCount()
	uc.metrics.ObserveAvailability(outcome, len(slots), bookable)

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d bookable) for venue=%d, date=%s",
		len(slots), bookable, req.VenueID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		VenueID:         req.VenueID,
		Open:            result.Open,
		ClosedReason:    string(result.ClosedReason),
		TotalCapacity:   result.TotalCapacity,
		IntervalMinutes: result.IntervalMinutes,
		Slots:           slots,
	}, nil
}
