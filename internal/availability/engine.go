package availability

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Snapshot данные одного запроса доступности на момент загрузки
type Snapshot struct {
	VenueID      int64
	Date         time.Time // дата, время суток игнорируется
	Rules        []*domain.CapacityRule
	Exceptions   domain.ExceptionIndex
	Rooms        []*domain.Room
	Reservations []*domain.Reservation // брони на Date, неактивные игнорируются
}

// Result список слотов на дату
type Result struct {
	Date            time.Time
	Open            bool
	ClosedReason    ClosedReason
	Rule            *domain.CapacityRule
	TotalCapacity   int
	IntervalMinutes int
	Slots           []domain.TimeSlot
	SkippedRules    []SkippedRule
}

// BookableCount число слотов, доступных для брони
func (r *Result) BookableCount() int {
	n := 0
	for _, s := range r.Slots {
		if s.Bookable {
			n++
		}
	}
	return n
}

// Slot возвращает слот, начинающийся в t
func (r *Result) Slot(t types.TimeString) (domain.TimeSlot, bool) {
	for _, s := range r.Slots {
		if s.Time.Equal(t) {
			return s, true
		}
	}
	return domain.TimeSlot{}, false
}

// Engine считает доступность по снимкам данных.
// Кроме опций состояния нет, безопасен для конкурентного использования
type Engine struct {
	opts Options
}

// NewEngine создает движок, незаданные опции берутся по умолчанию
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Options возвращает действующие опции
func (e *Engine) Options() Options {
	return e.opts
}

// Slots строит список слотов на snap.Date на момент now.
// Возвращаются все слоты по возрастанию, включая недоступные
func (e *Engine) Slots(snap *Snapshot, now time.Time) Result {
	date := civilDate(snap.Date)
	rules, skipped := partitionRules(snap.Rules)

	result := Result{
		Date:         date,
		Slots:        []domain.TimeSlot{},
		SkippedRules: skipped,
	}

	res := resolve(date, snap.Exceptions, rules, e.opts)
	if res.rule == nil {
		result.ClosedReason = res.reason
		return result
	}

	total := venueCapacity(snap.Rooms, res.rule)
	occ := newOccupancy(snap.Reservations, e.opts.DefaultReservationMinutes)
	isPast := e.pastFunc(date, now)

	window := Window{
		Start:           res.rule.StartTime,
		End:             res.rule.EndTime,
		IntervalMinutes: res.rule.IntervalMinutes,
		InclusiveEnd:    true,
	}
	times := MergeWindows(window)

	slots := make([]domain.TimeSlot, 0, len(times))
	for _, t := range times {
		available := clamp(total-occ.peak(t.Minutes(), e.opts.AssumedDurationMinutes, e.opts.GranularityMinutes), 0, total)
		slots = append(slots, domain.TimeSlot{
			Time:              t,
			AvailableCapacity: available,
			TotalCapacity:     total,
			Bookable:          available > 0 && !isPast(t),
		})
	}

	result.Open = true
	result.Rule = res.rule
	result.TotalCapacity = total
	result.IntervalMinutes = res.rule.IntervalMinutes
	result.Slots = slots
	return result
}

// pastFunc для слотов на date сообщает, прошло ли время начала к моменту now
func (e *Engine) pastFunc(date, now time.Time) func(types.TimeString) bool {
	local := now.In(e.opts.Location)
	today := civilDate(local)

	switch {
	case date.Before(today):
		return func(types.TimeString) bool { return true }
	case date.After(today):
		return func(types.TimeString) bool { return false }
	}

	nowMinutes := local.Hour()*60 + local.Minute()
	return func(t types.TimeString) bool { return t.Minutes() < nowMinutes }
}

// civilDate оставляет только календарную дату t
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
