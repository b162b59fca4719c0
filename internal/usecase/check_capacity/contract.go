package check_capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// SnapshotLoader загружает данные заведения на дату
type SnapshotLoader interface {
	LoadDay(ctx context.Context, venueID int64, date time.Time) (*availability.Snapshot, error)
}

// Engine движок расчета доступности
type Engine interface {
	Check(snap *availability.Snapshot, now time.Time, at types.TimeString, guests int) availability.CheckResult
	Options() availability.Options
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики проверок вместимости
type Metrics interface {
	ObserveCapacityCheck(result string)
	ObserveSkippedRules(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
