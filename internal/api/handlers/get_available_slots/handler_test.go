package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
)

type fakeUseCase struct {
	req  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/venues/{venueId}/available-slots", NewHandler(uc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            date,
		VenueID:         7,
		Open:            true,
		TotalCapacity:   40,
		IntervalMinutes: 30,
		Slots: []getAvailableSlots.Slot{
			{Time: "17:30", AvailableCapacity: 40, Bookable: true},
			{Time: "18:00", AvailableCapacity: 0, Bookable: false},
		},
	}}

	rec := serve(uc, "/api/v1/venues/7/available-slots?date=2026-10-20")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.req.VenueID)
	assert.Equal(t, date, uc.req.Date)
	assert.JSONEq(t, `{
		"date": "2026-10-20",
		"venueId": 7,
		"open": true,
		"totalCapacity": 40,
		"intervalMinutes": 30,
		"slots": [
			{"time": "17:30", "availableCapacity": 40, "bookable": true},
			{"time": "18:00", "availableCapacity": 0, "bookable": false}
		]
	}`, rec.Body.String())
}

func TestHandle_DegradedStillOK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:     time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		VenueID:  7,
		Degraded: true,
		Slots:    []getAvailableSlots.Slot{},
	}}

	rec := serve(uc, "/api/v1/venues/7/available-slots?date=2026-10-20")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Open)
	assert.True(t, body.Degraded)
	assert.NotNil(t, body.Slots)
	assert.Empty(t, body.Slots)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		ucErr  error
		want   int
	}{
		{"bad venue", "/api/v1/venues/abc/available-slots?date=2026-10-20", nil, http.StatusBadRequest},
		{"negative venue", "/api/v1/venues/-1/available-slots?date=2026-10-20", nil, http.StatusBadRequest},
		{"missing date", "/api/v1/venues/7/available-slots", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/venues/7/available-slots?date=20.10.2026", nil, http.StatusBadRequest},
		{"too far", "/api/v1/venues/7/available-slots?date=2030-01-01", getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"unexpected", "/api/v1/venues/7/available-slots?date=2026-10-20", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.ucErr}, tt.target)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
