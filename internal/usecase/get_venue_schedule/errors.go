package get_venue_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_venue_schedule: invalid input data")

	// ErrDataUnavailable возвращается, когда правила заведения не загрузились
	ErrDataUnavailable = errors.New("get_venue_schedule: venue data unavailable")
)
