package check_capacity

import (
	"fmt"

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

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	if req.Guests <= 0 || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between 1 and %d", ErrInvalidInput, domain.MaxGuests)
	}

	return nil
}
