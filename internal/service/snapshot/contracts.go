package snapshot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetRules(ctx context.Context, venueID int64) ([]*domain.CapacityRule, error)
	GetExceptions(ctx context.Context, venueID int64, from, to *time.Time) ([]*domain.Exception, error)
}

// SeatingRepository интерфейс репозитория залов и столов
type SeatingRepository interface {
	GetRooms(ctx context.Context, venueID int64) ([]*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
