package availability

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Options параметры движка. Нулевые поля заменяются значениями по умолчанию
type Options struct {
	ReferenceStart types.TimeString
	ReferenceEnd   types.TimeString

	// AssumedDurationMinutes ожидаемая длительность новой брони
	AssumedDurationMinutes int
	// GranularityMinutes длина подынтервалов занятости
	GranularityMinutes int
	// DefaultReservationMinutes для сохраненных броней без длительности
	DefaultReservationMinutes int

	SameDayCutoff types.TimeString
	HorizonDays   int

	// FallbackToFirstRule открывает дату по первому правилу дня недели,
	// если ни одно не покрывает опорное окно. По умолчанию такие даты закрыты
	FallbackToFirstRule bool

	// Location часовой пояс заведения для текущего времени
	Location *time.Location
}

// Today календарная дата now в часовом поясе заведения
func (o Options) Today(now time.Time) time.Time {
	if o.Location == nil {
		return civilDate(now.UTC())
	}
	return civilDate(now.In(o.Location))
}

// HorizonEnd первый день за горизонтом бронирования (исключающая граница).
// Горизонт в DefaultHorizonDays считается календарным годом: с 2027-03-01 до 2028-03-01,
// в високосный год это 366 дней.
func (o Options) HorizonEnd(today time.Time) time.Time {
	if o.HorizonDays == domain.DefaultHorizonDays {
		return today.AddDate(1, 0, 0)
	}
	return today.AddDate(0, 0, o.HorizonDays)
}

// DefaultOptions стандартные параметры ужина в UTC
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.ReferenceStart.IsZero() {
		o.ReferenceStart = domain.ReferenceWindowStart
	}
	if o.ReferenceEnd.IsZero() {
		o.ReferenceEnd = domain.ReferenceWindowEnd
	}
	if o.AssumedDurationMinutes <= 0 {
		o.AssumedDurationMinutes = domain.DefaultAssumedDurationMinutes
	}
	if o.GranularityMinutes <= 0 {
		o.GranularityMinutes = domain.DefaultGranularityMinutes
	}
	if o.DefaultReservationMinutes <= 0 {
		o.DefaultReservationMinutes = domain.DefaultReservationDurationMinutes
	}
	if o.SameDayCutoff.IsZero() {
		o.SameDayCutoff = domain.DefaultSameDayCutoff
	}
	if o.HorizonDays <= 0 {
		o.HorizonDays = domain.DefaultHorizonDays
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}
