package get_disabled_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/internal/service/snapshot"
)

// CalendarLoader загружает правила и исключения заведения
type CalendarLoader interface {
	LoadCalendar(ctx context.Context, venueID int64, from, to time.Time) (*snapshot.CalendarData, error)
}

// Engine движок расчета доступности
type Engine interface {
	DisabledDates(rules []*domain.CapacityRule, exceptions domain.ExceptionIndex, now time.Time) availability.Calendar
	Options() availability.Options
}

// Metrics метрики календаря
type Metrics interface {
	ObserveDisabledDates(venueID int64, n int)
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
