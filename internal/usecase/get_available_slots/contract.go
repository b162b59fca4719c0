package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
)

// SnapshotLoader загружает данные заведения на дату
type SnapshotLoader interface {
	LoadDay(ctx context.Context, venueID int64, date time.Time) (*availability.Snapshot, error)
}

// Engine движок расчета доступности
type Engine interface {
	Slots(snap *availability.Snapshot, now time.Time) availability.Result
	Options() availability.Options
}

// Metrics метрики запросов доступности
type Metrics interface {
	ObserveAvailability(outcome string, slots, bookable int)
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
