package check_capacity

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// UseCase use case проверки вместимости перед записью бронирования.
// Сервис бронирования вызывает его до фиксации новой брони: расчет тот же, что и у слотов.
type UseCase struct {
	loader       SnapshotLoader
	engine       Engine
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loader SnapshotLoader,
	engine Engine,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:       loader,
		engine:       engine,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку
// Снимок читается в read-only транзакции REPEATABLE READ, чтобы правила, залы
// и бронирования были согласованы между собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCapacity: venue=%d, date=%s, time=%s, guests=%d",
		req.VenueID, req.Date.Format(domain.DateFormat), req.Time, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckCapacity: validation failed: %v", err)
		uc.metrics.ObserveCapacityCheck(resultRejected)
		return nil, err
	}

	// 2. Загружаем снимок в транзакции
	var snap *availability.Snapshot
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		snap, err = uc.loader.LoadDay(txCtx, req.VenueID, req.Date)
		return err
	})
	if err != nil {
		uc.logger.Error("CheckCapacity: failed to load snapshot for venue=%d: %v", req.VenueID, err)
		uc.metrics.ObserveCapacityCheck(resultError)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	// 3. Проверяем слот
	result := uc.engine.Check(snap, uc.timeProvider.Now(), req.Time, req.Guests)

	for _, skipped := range result.SkippedRules {
		uc.logger.Warn("CheckCapacity: skipped malformed rule id=%d: %v", skipped.RuleID, skipped.Err)
	}
	uc.metrics.ObserveSkippedRules(len(result.SkippedRules))

	// 4. Причины, при которых бронирование невозможно в принципе, возвращаем ошибкой
	switch result.Reason {
	case availability.ReasonClosed:
		uc.metrics.ObserveCapacityCheck(resultRejected)
		return nil, ErrVenueClosed
	case availability.ReasonNotASlot:
		uc.metrics.ObserveCapacityCheck(resultRejected)
		return nil, fmt.Errorf("%w: %s", ErrNotASlot, req.Time)
	case availability.ReasonPast:
		uc.metrics.ObserveCapacityCheck(resultRejected)
		return nil, ErrSlotInPast
	}

	metricResult := resultFits
	if !result.Fits {
		metricResult = resultFull
	}
	uc.metrics.ObserveCapacityCheck(metricResult)

	uc.logger.Info("CheckCapacity: venue=%d, %s %s, guests=%d: fits=%t, available=%d/%d",
		req.VenueID, req.Date.Format(domain.DateFormat), req.Time, req.Guests,
		result.Fits, result.AvailableCapacity, result.TotalCapacity)

	return &Response{
		Fits:              result.Fits,
		Reason:            string(result.Reason),
		AvailableCapacity: result.AvailableCapacity,
		TotalCapacity:     result.TotalCapacity,
	}, nil
}
