package check_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	checkCapacity "github.com/m04kA/SMC-TableAvailability/internal/usecase/check_capacity"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

const (
	msgInvalidVenueID     = "некорректный ID заведения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры проверки"
	msgVenueClosed        = "заведение закрыто в выбранную дату"
	msgNotASlot           = "выбранное время не является слотом бронирования"
	msgSlotInPast         = "выбранный слот уже прошел"
)

type Handler struct {
	useCase CheckCapacityUseCase
	logger  Logger
}

func NewHandler(useCase CheckCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("POST /venues/{id}/availability/check - Invalid venue ID: %q", mux.Vars(r)["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req CheckCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Парсим дату и время
	useCaseReq, err := req.ToUseCaseRequest(venueID)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/availability/check - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkCapacity.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/availability/check - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkCapacity.ErrVenueClosed):
			h.logger.Warn("POST /venues/{id}/availability/check - Venue closed: venue_id=%d, date=%s", venueID, req.Date)
			h.respondRejected(w, reasonClosed, msgVenueClosed)

		case errors.Is(err, checkCapacity.ErrNotASlot):
			h.logger.Warn("POST /venues/{id}/availability/check - Not a slot: venue_id=%d, time=%s", venueID, req.Time)
			h.respondRejected(w, reasonNotASlot, msgNotASlot)

		case errors.Is(err, checkCapacity.ErrSlotInPast):
			h.logger.Warn("POST /venues/{id}/availability/check - Slot in past: venue_id=%d, %s %s", venueID, req.Date, req.Time)
			h.respondRejected(w, reasonPast, msgSlotInPast)

		case errors.Is(err, checkCapacity.ErrDataUnavailable):
			h.logger.Error("POST /venues/{id}/availability/check - Data unavailable: venue_id=%d, error=%v", venueID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /venues/{id}/availability/check - Failed to check capacity: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/availability/check - Checked: venue_id=%d, %s %s, guests=%d, fits=%t",
		venueID, req.Date, req.Time, req.Guests, result.Fits)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondRejected(w http.ResponseWriter, reason, message string) {
	handlers.RespondJSON(w, http.StatusConflict, RejectedResponse{
		Fits:    false,
		Reason:  reason,
		Message: message,
	})
}
