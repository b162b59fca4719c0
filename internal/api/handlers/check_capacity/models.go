package check_capacity

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	checkCapacity "github.com/m04kA/SMC-TableAvailability/internal/usecase/check_capacity"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Причины отказа, которые попадают в тело 409
const (
	reasonClosed   = "closed"
	reasonNotASlot = "not_a_slot"
	reasonPast     = "past"
)

// CheckCapacityRequest HTTP модель запроса
type CheckCapacityRequest struct {
	Date   string `json:"date"`   // YYYY-MM-DD
	Time   string `json:"time"`   // HH:MM
	Guests int    `json:"guests"` // Количество гостей
}

// CheckCapacityResponse HTTP модель ответа
type CheckCapacityResponse struct {
	Fits              bool   `json:"fits"`
	AvailableCapacity int    `json:"availableCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
	Reason            string `json:"reason,omitempty"`
}

// RejectedResponse тело 409: слот нельзя забронировать независимо от числа гостей
type RejectedResponse struct {
	Fits    bool   `json:"fits"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckCapacityRequest) ToUseCaseRequest(venueID int64) (*checkCapacity.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &checkCapacity.Request{
		VenueID: venueID,
		Date:    date,
		Time:    slotTime,
		Guests:  r.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkCapacity.Response) *CheckCapacityResponse {
	return &CheckCapacityResponse{
		Fits:              resp.Fits,
		AvailableCapacity: resp.AvailableCapacity,
		TotalCapacity:     resp.TotalCapacity,
		Reason:            resp.Reason,
	}
}
