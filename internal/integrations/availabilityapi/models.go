package availabilityapi

// Slots ответ GET /venues/{venueId}/available-slots
type Slots struct {
	Date            string `json:"date"`
	VenueID         int64  `json:"venueId"`
	Open            bool   `json:"open"`
	ClosedReason    string `json:"closedReason,omitempty"`
	Degraded        bool   `json:"degraded,omitempty"`
	TotalCapacity   int    `json:"totalCapacity"`
	IntervalMinutes int    `json:"intervalMinutes"`
	Slots           []Slot `json:"slots"`
}

// Slot временной слот
type Slot struct {
	Time              string `json:"time"`
	AvailableCapacity int    `json:"availableCapacity"`
	Bookable          bool   `json:"bookable"`
}

// DisabledDates ответ GET /venues/{venueId}/disabled-dates
type DisabledDates struct {
	VenueID int64    `json:"venueId"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Dates   []string `json:"dates"`
}

// CheckRequest тело POST /venues/{venueId}/availability/check
type CheckRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

// CheckResult ответ проверки вместимости.
// Для 409 заполнены только Fits=false и Reason.
type CheckResult struct {
	Fits              bool   `json:"fits"`
	AvailableCapacity int    `json:"availableCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
	Reason            string `json:"reason,omitempty"`
	Message           string `json:"message,omitempty"`
}

// ErrorResponse модель ошибки от сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Schedule ответ GET /venues/{venueId}/schedule
type Schedule struct {
	VenueID    int64            `json:"venueId"`
	Settings   ScheduleSettings `json:"settings"`
	Rules      []ScheduleRule   `json:"rules"`
	Week       []ScheduleDay    `json:"week"`
	Exceptions []string         `json:"exceptions"`
}

type ScheduleSettings struct {
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

type ScheduleRule struct {
	ID              int64    `json:"id"`
	Weekdays        []string `json:"weekdays"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Capacity        int      `json:"capacity"`
	Valid           bool     `json:"valid"`
	Error           string   `json:"error,omitempty"`
}

type ScheduleDay struct {
	Weekday         string   `json:"weekday"`
	Open            bool     `json:"open"`
	ClosedReason    string   `json:"closedReason,omitempty"`
	RuleID          *int64   `json:"ruleId,omitempty"`
	CalendarEnabled bool     `json:"calendarEnabled"`
	Times           []string `json:"times"`
}
