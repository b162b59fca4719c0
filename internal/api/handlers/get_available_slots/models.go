package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	VenueID         int64           `json:"venueId"`
	Open            bool            `json:"open"`
	ClosedReason    string          `json:"closedReason,omitempty"`
	Degraded        bool            `json:"degraded,omitempty"`
	TotalCapacity   int             `json:"totalCapacity"`
	IntervalMinutes int             `json:"intervalMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time              string `json:"time"`
	AvailableCapacity int    `json:"availableCapacity"`
	Bookable          bool   `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:              slot.Time.String(),
			AvailableCapacity: slot.AvailableCapacity,
			Bookable:          slot.Bookable,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		VenueID:         resp.VenueID,
		Open:            resp.Open,
		ClosedReason:    resp.ClosedReason,
		Degraded:        resp.Degraded,
		TotalCapacity:   resp.TotalCapacity,
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(venueID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		VenueID: venueID,
		Date:    date,
	}, nil
}
