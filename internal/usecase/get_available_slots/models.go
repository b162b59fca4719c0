package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	VenueID int64     // ID заведения
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
// Слоты возвращаются все, включая недоступные (Bookable=false)
type Response struct {
	Date            time.Time
	VenueID         int64
	Open            bool
	ClosedReason    string // exception, no_rule или пусто
	Degraded        bool   // данные не загрузились, ответ «закрыто» по умолчанию
	TotalCapacity   int
	IntervalMinutes int
	Slots           []Slot
}

// Slot модель временного слота
type Slot struct {
	Time              types.TimeString // Время начала (например, "18:30")
	AvailableCapacity int              // Свободных мест на всю длительность брони
	Bookable          bool
}
