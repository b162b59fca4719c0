package availability

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// CheckReason причина отказа при проверке вместимости
type CheckReason string

const (
	ReasonNone                 CheckReason = ""
	ReasonClosed               CheckReason = "closed"
	ReasonNotASlot             CheckReason = "not_a_slot"
	ReasonPast                 CheckReason = "past"
	ReasonInsufficientCapacity CheckReason = "insufficient_capacity"
)

// CheckResult ответ на вопрос, можно ли посадить N гостей на время T
type CheckResult struct {
	Fits              bool
	Reason            CheckReason
	AvailableCapacity int
	TotalCapacity     int
	SkippedRules      []SkippedRule
}

// Check считает слоты и проверяет одно время начала для компании из guests человек.
// Вызывается перед сохранением брони
func (e *Engine) Check(snap *Snapshot, now time.Time, at types.TimeString, guests int) CheckResult {
	result := e.Slots(snap, now)

	check := CheckResult{
		TotalCapacity: result.TotalCapacity,
		SkippedRules:  result.SkippedRules,
	}

	if !result.Open {
		check.Reason = ReasonClosed
		return check
	}

	slot, ok := result.Slot(at)
	if !ok {
		check.Reason = ReasonNotASlot
		return check
	}
	check.AvailableCapacity = slot.AvailableCapacity

	if e.pastFunc(result.Date, now)(at) {
		check.Reason = ReasonPast
		return check
	}

	if !slot.Fits(guests) {
		check.Reason = ReasonInsufficientCapacity
		return check
	}

	check.Fits = true
	return check
}
