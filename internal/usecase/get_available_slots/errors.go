package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateTooFarInFuture возвращается, когда дата выходит за горизонт бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")
)
