package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateHorizon проверяет, что дата не дальше горизонта бронирования.
// Прошедшие даты допустимы: слоты вернутся с Bookable=false.
func validateHorizon(date, now time.Time, opts availability.Options) error {
	end := opts.HorizonEnd(opts.Today(now))

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if !dateOnly.Before(end) {
		return fmt.Errorf("%w: can only book before %s", ErrDateTooFarInFuture, end.Format(domain.DateFormat))
	}
	return nil
}
