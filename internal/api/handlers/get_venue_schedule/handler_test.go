package get_venue_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getVenueSchedule "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_venue_schedule"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

type fakeUseCase struct {
	resp *getVenueSchedule.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context, *getVenueSchedule.Request) (*getVenueSchedule.Response, error) {
	return f.resp, f.err
}

func serve(uc GetVenueScheduleUseCase, venue string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/venues/{venueId}/schedule", NewHandler(uc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/venues/"+venue+"/schedule", nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	ruleID := int64(1)
	uc := &fakeUseCase{resp: &getVenueSchedule.Response{
		VenueID: 2,
		Settings: getVenueSchedule.Settings{
			ReferenceStart: "17:30", ReferenceEnd: "20:30", SameDayCutoff: "21:00",
			GranularityMinutes: 30, HorizonDays: 365, Timezone: "Europe/Berlin",
		},
		Rules: []getVenueSchedule.Rule{
			{ID: 1, Weekdays: []string{"Di"}, StartTime: "17:30", EndTime: "18:30", IntervalMinutes: 30, Capacity: 12, Valid: true},
		},
		Week: []getVenueSchedule.Day{
			{Weekday: time.Tuesday, Open: true, RuleID: &ruleID, CalendarEnabled: true,
				Times: []types.TimeString{"17:30", "18:00", "18:30"}},
			{Weekday: time.Wednesday, ClosedReason: "no_rule"},
		},
	}}

	rec := serve(uc, "2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"venueId": 2,
		"settings": {
			"referenceStart": "17:30", "referenceEnd": "20:30",
			"assumedDurationMinutes": 0, "granularityMinutes": 30, "defaultReservationMinutes": 0,
			"sameDayCutoff": "21:00", "horizonDays": 365, "fallbackToFirstRule": false,
			"timezone": "Europe/Berlin"
		},
		"rules": [{"id": 1, "weekdays": ["Di"], "startTime": "17:30", "endTime": "18:30",
			"intervalMinutes": 30, "capacity": 12, "valid": true}],
		"week": [
			{"weekday": "Tuesday", "open": true, "ruleId": 1, "calendarEnabled": true,
				"times": ["17:30", "18:00", "18:30"]},
			{"weekday": "Wednesday", "open": false, "closedReason": "no_rule", "calendarEnabled": false, "times": []}
		],
		"exceptions": []
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "nope").Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		serve(&fakeUseCase{err: getVenueSchedule.ErrDataUnavailable}, "2").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: assert.AnError}, "2").Code)
}
