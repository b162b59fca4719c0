package get_venue_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	getVenueSchedule "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_venue_schedule"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
)

type Handler struct {
	useCase GetVenueScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetVenueScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/schedule
// Публичный endpoint - только чтение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("GET /venues/{id}/schedule - Invalid venue ID: %q", mux.Vars(r)["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getVenueSchedule.Request{VenueID: venueID})
	if err != nil {
		switch {
		case errors.Is(err, getVenueSchedule.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/schedule - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, getVenueSchedule.ErrDataUnavailable):
			h.logger.Error("GET /venues/{id}/schedule - Data unavailable: venue_id=%d, error=%v", venueID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /venues/{id}/schedule - Failed to get schedule: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/schedule - Schedule retrieved: venue_id=%d, rules=%d", venueID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
