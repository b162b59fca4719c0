package get_venue_schedule

import (
	getVenueSchedule "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_venue_schedule"
)

// VenueScheduleResponse HTTP response model
type VenueScheduleResponse struct {
	VenueID    int64            `json:"venueId"`
	Settings   SettingsResponse `json:"settings"`
	Rules      []RuleResponse   `json:"rules"`
	Week       []DayResponse    `json:"week"`
	Exceptions []string         `json:"exceptions"`
}

// SettingsResponse параметры расчета доступности
type SettingsResponse struct {
	ReferenceStart            string `json:"referenceStart"`
	ReferenceEnd              string `json:"referenceEnd"`
	AssumedDurationMinutes    int    `json:"assumedDurationMinutes"`
	GranularityMinutes        int    `json:"granularityMinutes"`
	DefaultReservationMinutes int    `json:"defaultReservationMinutes"`
	SameDayCutoff             string `json:"sameDayCutoff"`
	HorizonDays               int    `json:"horizonDays"`
	FallbackToFirstRule       bool   `json:"fallbackToFirstRule"`
	Timezone                  string `json:"timezone"`
}

// RuleResponse правило вместимости как оно хранится
type RuleResponse struct {
	ID              int64    `json:"id"`
	Weekdays        []string `json:"weekdays"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Capacity        int      `json:"capacity"`
	Valid           bool     `json:"valid"`
	Error           string   `json:"error,omitempty"`
}

// DayResponse расписание дня недели
type DayResponse struct {
	Weekday         string   `json:"weekday"`
	Open            bool     `json:"open"`
	ClosedReason    string   `json:"closedReason,omitempty"`
	RuleID          *int64   `json:"ruleId,omitempty"`
	CalendarEnabled bool     `json:"calendarEnabled"`
	Times           []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getVenueSchedule.Response) *VenueScheduleResponse {
	s := resp.Settings
	out := &VenueScheduleResponse{
		VenueID: resp.VenueID,
		Settings: SettingsResponse{
			ReferenceStart:            s.ReferenceStart.String(),
			ReferenceEnd:              s.ReferenceEnd.String(),
			AssumedDurationMinutes:    s.AssumedDurationMinutes,
			GranularityMinutes:        s.GranularityMinutes,
			DefaultReservationMinutes: s.DefaultReservationMinutes,
			SameDayCutoff:             s.SameDayCutoff.String(),
			HorizonDays:               s.HorizonDays,
			FallbackToFirstRule:       s.FallbackToFirstRule,
			Timezone:                  s.Timezone,
		},
		Rules:      make([]RuleResponse, len(resp.Rules)),
		Week:       make([]DayResponse, len(resp.Week)),
		Exceptions: resp.Exceptions,
	}
	if out.Exceptions == nil {
		out.Exceptions = []string{}
	}

	for i, r := range resp.Rules {
		out.Rules[i] = RuleResponse{
			ID:              r.ID,
			Weekdays:        r.Weekdays,
			StartTime:       r.StartTime.String(),
			EndTime:         r.EndTime.String(),
			IntervalMinutes: r.IntervalMinutes,
			Capacity:        r.Capacity,
			Valid:           r.Valid,
			Error:           r.Error,
		}
	}

	for i, d := range resp.Week {
		times := make([]string, len(d.Times))
		for j, t := range d.Times {
			times[j] = t.String()
		}
		out.Week[i] = DayResponse{
			Weekday:         d.Weekday.String(),
			Open:            d.Open,
			ClosedReason:    d.ClosedReason,
			RuleID:          d.RuleID,
			CalendarEnabled: d.CalendarEnabled,
			Times:           times,
		}
	}

	return out
}
