package check_capacity

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_capacity: invalid input data")

	// ErrVenueClosed возвращается, когда заведение закрыто в эту дату
	ErrVenueClosed = errors.New("check_capacity: venue is closed on this date")

	// ErrNotASlot возвращается, когда время не совпадает ни с одним слотом
	ErrNotASlot = errors.New("check_capacity: time is not a reservation slot")

	// ErrSlotInPast возвращается, когда слот уже начался
	ErrSlotInPast = errors.New("check_capacity: slot is in the past")

	// ErrDataUnavailable возвращается, когда данные заведения не загрузились
	ErrDataUnavailable = errors.New("check_capacity: venue data unavailable")
)
