package availability

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// ClosedReason причина, по которой на дату нет слотов
type ClosedReason string

const (
	ClosedNone      ClosedReason = ""
	ClosedException ClosedReason = "exception"
	ClosedNoRule    ClosedReason = "no_rule"
)

// SkippedRule некорректное правило, пропущенное при выборе
type SkippedRule struct {
	RuleID int64
	Err    error
}

// validRule правило, прошедшее валидацию, с уже разобранными днями недели
type validRule struct {
	rule     *domain.CapacityRule
	weekdays domain.WeekdaySet
}

// partitionRules делит правила на годные и пропущенные, порядок сохраняется
func partitionRules(rules []*domain.CapacityRule) ([]validRule, []SkippedRule) {
	valid := make([]validRule, 0, len(rules))
	var skipped []SkippedRule
	for _, r := range rules {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			skipped = append(skipped, SkippedRule{RuleID: r.ID, Err: err})
			continue
		}
		set, _ := r.Weekdays()
		valid = append(valid, validRule{rule: r, weekdays: set})
	}
	return valid, skipped
}

// resolution результат выбора правила на дату
type resolution struct {
	rule   *domain.CapacityRule
	reason ClosedReason
}

// resolve выбирает правило на дату. Исключение закрывает дату всегда,
// иначе берется первое правило дня недели, покрывающее опорное окно
func resolve(date time.Time, exceptions domain.ExceptionIndex, rules []validRule, opts Options) resolution {
	if exceptions.Contains(date) {
		return resolution{reason: ClosedException}
	}

	weekday := date.Weekday()
	var first *domain.CapacityRule
	for _, vr := range rules {
		if !vr.weekdays.Contains(weekday) {
			continue
		}
		if first == nil {
			first = vr.rule
		}
		if vr.rule.Covers(opts.ReferenceStart, opts.ReferenceEnd) {
			return resolution{rule: vr.rule}
		}
	}

	if first != nil && opts.FallbackToFirstRule {
		return resolution{rule: first}
	}
	return resolution{reason: ClosedNoRule}
}

// coveredWeekdays дни недели, у которых есть правило, покрывающее [from, to]
func coveredWeekdays(rules []validRule, from, to types.TimeString) domain.WeekdaySet {
	var set domain.WeekdaySet
	for _, vr := range rules {
		if vr.rule.Covers(from, to) {
			set |= vr.weekdays
		}
	}
	return set
}
