package availability

import "github.com/m04kA/SMC-TableAvailability/internal/domain"

// venueCapacity сумма мест за столами всех залов.
// Если столов нет, берется вместимость из правила
func venueCapacity(rooms []*domain.Room, rule *domain.CapacityRule) int {
	total := 0
	for _, room := range rooms {
		if room != nil {
			total += room.Capacity()
		}
	}
	if total == 0 && rule != nil {
		return rule.Capacity
	}
	return total
}
