package availability

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// weekAnchor понедельник, weekAnchor+i это i-й день недели
var weekAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DaySchedule выбор правила для дня недели без учета исключений
type DaySchedule struct {
	Weekday      time.Weekday
	Open         bool
	ClosedReason ClosedReason
	Rule         *domain.CapacityRule
	// CalendarEnabled false, если календарь недоступных дат закрывает этот день.
	// Расходится с Open только при FallbackToFirstRule
	CalendarEnabled bool
	Times           []types.TimeString
}

// WeekSchedule обычная неделя заведения, с понедельника
type WeekSchedule struct {
	Days         []DaySchedule
	SkippedRules []SkippedRule
}

// WeeklySchedule выбирает правило на каждый день недели так же, как Slots
func (e *Engine) WeeklySchedule(rules []*domain.CapacityRule) WeekSchedule {
	valid, skipped := partitionRules(rules)
	covered := coveredWeekdays(valid, e.opts.ReferenceStart, e.opts.ReferenceEnd)

	week := WeekSchedule{
		Days:         make([]DaySchedule, 0, 7),
		SkippedRules: skipped,
	}
	for i := 0; i < 7; i++ {
		date := weekAnchor.AddDate(0, 0, i)
		res := resolve(date, nil, valid, e.opts)

		day := DaySchedule{
			Weekday:         date.Weekday(),
			Open:            res.rule != nil,
			ClosedReason:    res.reason,
			Rule:            res.rule,
			CalendarEnabled: covered.Contains(date.Weekday()),
		}
		if res.rule != nil {
			day.Times = Window{
				Start:           res.rule.StartTime,
				End:             res.rule.EndTime,
				IntervalMinutes: res.rule.IntervalMinutes,
				InclusiveEnd:    true,
			}.Times()
		}
		week.Days = append(week.Days, day)
	}
	return week
}
