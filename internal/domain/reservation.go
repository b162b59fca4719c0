package domain

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation принятая бронь. Пишет ее сервис бронирования, здесь только чтение
type Reservation struct {
	ID              int64
	VenueID         int64
	Date            time.Time
	Time            types.TimeString
	Guests          int
	DurationMinutes int // 0 - не задана
	Status          ReservationStatus
}

// IsActive проверяет, занимает ли бронь места
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationActive
}

// EffectiveDuration возвращает DurationMinutes или fallback, если длительность не задана
func (r *Reservation) EffectiveDuration(fallback int) int {
	if r.DurationMinutes > 0 {
		return r.DurationMinutes
	}
	return fallback
}

// ReservationFilter фильтр для получения бронирований заведения
type ReservationFilter struct {
	VenueID         int64     // Обязательный параметр
	Date            time.Time // Дата (время игнорируется)
	IncludeInactive bool      // Включать ли отмененные бронирования
}
