package get_venue_schedule

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
	WeeklySchedule(rules []*domain.CapacityRule) availability.WeekSchedule
	Options() availability.Options
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
