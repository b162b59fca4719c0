package availability

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// Calendar даты в пределах горизонта, на которые нельзя забронировать
type Calendar struct {
	From         time.Time // сегодня, включительно
	To           time.Time // не включительно
	Dates        []string  // YYYY-MM-DD по возрастанию
	SkippedRules []SkippedRule
}

// DisabledDates отмечает даты горизонта с исключением или без правила,
// покрывающего опорное окно. Сегодня закрыто после SameDayCutoff.
// Брони не учитываются
func (e *Engine) DisabledDates(rules []*domain.CapacityRule, exceptions domain.ExceptionIndex, now time.Time) Calendar {
	valid, skipped := partitionRules(rules)
	covered := coveredWeekdays(valid, e.opts.ReferenceStart, e.opts.ReferenceEnd)

	local := now.In(e.opts.Location)
	today := e.opts.Today(now)
	to := e.opts.HorizonEnd(today)
	pastCutoff := local.Hour()*60+local.Minute() >= e.opts.SameDayCutoff.Minutes()

	dates := make([]string, 0)
	for d := today; d.Before(to); d = d.AddDate(0, 0, 1) {
		disabled := exceptions.Contains(d) ||
			!covered.Contains(d.Weekday()) ||
			(d.Equal(today) && pastCutoff)
		if disabled {
			dates = append(dates, d.Format(domain.DateFormat))
		}
	}

	return Calendar{
		From:         today,
		To:           to,
		Dates:        dates,
		SkippedRules: skipped,
	}
}
