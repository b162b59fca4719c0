package availability

import "github.com/m04kA/SMC-TableAvailability/internal/domain"

// span полуинтервал минут [start, end) с числом гостей
type span struct {
	start, end int
	guests     int
}

// occupancy считает, сколько гостей сидит в [a, b) в течение одной даты
type occupancy struct {
	spans []span
}

// newOccupancy берет только активные брони с корректным временем.
// Бронь без длительности занимает defaultDuration минут
func newOccupancy(reservations []*domain.Reservation, defaultDuration int) occupancy {
	spans := make([]span, 0, len(reservations))
	for _, r := range reservations {
		if r == nil || !r.IsActive() || r.Guests <= 0 || r.Time.Validate() != nil {
			continue
		}
		start := r.Time.Minutes()
		spans = append(spans, span{
			start:  start,
			end:    start + r.EffectiveDuration(defaultDuration),
			guests: r.Guests,
		})
	}
	return occupancy{spans: spans}
}

// occupied суммирует гостей интервалов, пересекающих [a, b)
func (o occupancy) occupied(a, b int) int {
	total := 0
	for _, s := range o.spans {
		if b <= s.start || a >= s.end {
			continue
		}
		total += s.guests
	}
	return total
}

// peak максимальная занятость по подынтервалам [t, t+duration) длины granularity.
// Последний подынтервал обрезается по t+duration
func (o occupancy) peak(t, duration, granularity int) int {
	end := t + duration
	highest := 0
	for a := t; a < end; a += granularity {
		b := a + granularity
		if b > end {
			b = end
		}
		if occ := o.occupied(a, b); occ > highest {
			highest = occ
		}
	}
	return highest
}
