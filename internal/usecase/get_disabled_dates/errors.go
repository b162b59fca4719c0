package get_disabled_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDataUnavailable возвращается, когда данные заведения не загрузились.
	// Пустой список недоступных дат открыл бы весь календарь, поэтому ошибка пробрасывается.
	ErrDataUnavailable = errors.New("venue data unavailable")
)
