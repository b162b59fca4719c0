package availabilityapi

import "errors"

var (
	// ErrBadRequest возвращается, когда сервис отклонил параметры запроса (400)
	ErrBadRequest = errors.New("availabilityapi client: bad request")

	// ErrUnavailable возвращается, когда сервис не смог загрузить данные заведения (503)
	ErrUnavailable = errors.New("availabilityapi client: venue data unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("availabilityapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availabilityapi client: invalid response")
)
