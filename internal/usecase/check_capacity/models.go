package check_capacity

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Request модель запроса проверки вместимости
type Request struct {
	VenueID int64
	Date    time.Time
	Time    types.TimeString
	Guests  int
}

// Response модель ответа
// Fits=false с Reason=insufficient_capacity - нормальный ответ, а не ошибка
type Response struct {
	Fits              bool
	Reason            string
	AvailableCapacity int
	TotalCapacity     int
}

// Результаты проверки для метрик
const (
	resultFits     = "fits"
	resultFull     = "full"
	resultRejected = "rejected"
	resultError    = "error"
)
