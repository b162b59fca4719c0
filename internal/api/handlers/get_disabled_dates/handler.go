package get_disabled_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	getDisabledDates "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_disabled_dates"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
)

type Handler struct {
	useCase GetDisabledDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetDisabledDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/disabled-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("GET /venues/{id}/disabled-dates - Invalid venue ID: %q", mux.Vars(r)["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDisabledDates.Request{VenueID: venueID})
	if err != nil {
		switch {
		case errors.Is(err, getDisabledDates.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/disabled-dates - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, getDisabledDates.ErrDataUnavailable):
			// Пустой список открыл бы весь календарь, поэтому отдаем 503
			h.logger.Error("GET /venues/{id}/disabled-dates - Data unavailable: venue_id=%d, error=%v", venueID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /venues/{id}/disabled-dates - Failed to get disabled dates: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/disabled-dates - Calendar retrieved: venue_id=%d, disabled_count=%d",
		venueID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
