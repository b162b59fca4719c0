package domain

import "github.com/m04kA/SMC-TableAvailability/pkg/types"

// TimeSlot время начала брони и оставшаяся вместимость.
// Вычисляется на каждый запрос и не хранится
type TimeSlot struct {
	Time              types.TimeString
	AvailableCapacity int
	TotalCapacity     int
	Bookable          bool
}

// IsFull проверяет, что мест не осталось
func (s *TimeSlot) IsFull() bool {
	return s.AvailableCapacity <= 0
}

// Fits проверяет, поместится ли компания из guests человек
func (s *TimeSlot) Fits(guests int) bool {
	return s.Bookable && guests > 0 && guests <= s.AvailableCapacity
}

// OccupancyRate возвращает процент занятости (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	occupied := s.TotalCapacity - s.AvailableCapacity
	return float64(occupied) / float64(s.TotalCapacity) * 100
}
