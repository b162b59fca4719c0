package get_disabled_dates

import (
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	getDisabledDates "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_disabled_dates"
)

// DisabledDatesResponse HTTP response model
// To не входит в диапазон
type DisabledDatesResponse struct {
	VenueID int64    `json:"venueId"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Dates   []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDisabledDates.Response) *DisabledDatesResponse {
	dates := resp.Dates
	if dates == nil {
		dates = []string{}
	}

	return &DisabledDatesResponse{
		VenueID: resp.VenueID,
		From:    resp.From.Format(domain.DateFormat),
		To:      resp.To.Format(domain.DateFormat),
		Dates:   dates,
	}
}
