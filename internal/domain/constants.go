package domain

import "github.com/m04kA/SMC-TableAvailability/pkg/types"

// Опорное окно ужина. Правило обслуживает брони, только если покрывает его
var (
	ReferenceWindowStart = types.MustTimeString("17:30")
	ReferenceWindowEnd   = types.MustTimeString("20:30")
)

// Параметры движка по умолчанию
const (
	DefaultAssumedDurationMinutes     = 120 // длительность новой брони
	DefaultGranularityMinutes         = 30  // шаг подынтервалов занятости
	DefaultReservationDurationMinutes = 120 // для сохраненных броней без длительности
	DefaultHorizonDays                = 365 // календарный год, см. availability.Options.HorizonEnd
)

// DefaultSameDayCutoff после этого времени сегодняшняя дата закрыта
var DefaultSameDayCutoff = types.MustTimeString("21:00")

// Константы бизнес-валидации
const (
	MaxGuests          = 1000
	MaxIntervalMinutes = 24 * 60
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
