package get_disabled_dates

import "time"

// Request модель запроса календаря
type Request struct {
	VenueID int64
}

// Response модель ответа: недоступные даты в [From, To)
type Response struct {
	VenueID int64
	From    time.Time
	To      time.Time
	Dates   []string // YYYY-MM-DD по возрастанию
}
