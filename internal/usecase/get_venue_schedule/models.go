package get_venue_schedule

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Request модель запроса расписания заведения
type Request struct {
	VenueID int64
}

// Response обычная неделя заведения, правила как они хранятся и ближайшие закрытия
type Response struct {
	VenueID    int64
	Settings   Settings
	Rules      []Rule
	Week       []Day
	Exceptions []string // YYYY-MM-DD в горизонте бронирования
}

// Settings параметры расчета, с которыми работает сервис
type Settings struct {
	ReferenceStart            types.TimeString
	ReferenceEnd              types.TimeString
	AssumedDurationMinutes    int
	GranularityMinutes        int
	DefaultReservationMinutes int
	SameDayCutoff             types.TimeString
	HorizonDays               int
	FallbackToFirstRule       bool
	Timezone                  string
}

// Rule правило вместимости. Некорректные правила возвращаются с Valid=false и текстом ошибки.
type Rule struct {
	ID              int64
	Weekdays        []string
	StartTime       types.TimeString
	EndTime         types.TimeString
	IntervalMinutes int
	Capacity        int
	Valid           bool
	Error           string
}

// Day расписание одного дня недели без учета исключений
type Day struct {
	Weekday         time.Weekday
	Open            bool
	ClosedReason    string
	RuleID          *int64
	CalendarEnabled bool
	Times           []types.TimeString
}
