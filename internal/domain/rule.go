package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

var (
	// ErrUnknownWeekday нераспознанное название дня недели
	ErrUnknownWeekday = errors.New("domain: unknown weekday name")

	// ErrMalformedRule возвращается из CapacityRule.Validate
	ErrMalformedRule = errors.New("domain: malformed capacity rule")
)

// WeekdaySet битовая маска дней недели
type WeekdaySet uint8

// NewWeekdaySet создает множество из дней
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// Contains проверяет вхождение дня
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// IsEmpty проверяет, пусто ли множество
func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// weekdayNames названия дней в нижнем регистре.
// В правилах хранятся английские или немецкие названия, полные или сокращенные
var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday, "sonntag": time.Sunday, "so": time.Sunday,
	"monday": time.Monday, "mon": time.Monday, "montag": time.Monday, "mo": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday, "dienstag": time.Tuesday, "di": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "mittwoch": time.Wednesday, "mi": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday, "donnerstag": time.Thursday, "do": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "freitag": time.Friday, "fr": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "samstag": time.Saturday, "sonnabend": time.Saturday, "sa": time.Saturday,
}

// ParseWeekday разбирает название дня без учета регистра, точка в конце игнорируется
func ParseWeekday(name string) (time.Weekday, error) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
	d, ok := weekdayNames[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
	}
	return d, nil
}

// ParseWeekdays разбирает список названий. Одно неизвестное название ломает весь список
func ParseWeekdays(names []string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, name := range names {
		d, err := ParseWeekday(name)
		if err != nil {
			return 0, err
		}
		s |= NewWeekdaySet(d)
	}
	return s, nil
}

// CapacityRule еженедельное окно работы заведения
type CapacityRule struct {
	ID              int64
	VenueID         int64
	WeekdayNames    []string // названия дней как в БД
	StartTime       types.TimeString
	EndTime         types.TimeString
	IntervalMinutes int
	Capacity        int // вместимость, если столы не заведены
}

// Weekdays разбирает WeekdayNames
func (r *CapacityRule) Weekdays() (WeekdaySet, error) {
	return ParseWeekdays(r.WeekdayNames)
}

// Validate проверяет, что по правилу можно строить слоты
func (r *CapacityRule) Validate() error {
	set, err := r.Weekdays()
	if err != nil {
		return fmt.Errorf("%w: rule %d: %v", ErrMalformedRule, r.ID, err)
	}
	if set.IsEmpty() {
		return fmt.Errorf("%w: rule %d: no weekdays", ErrMalformedRule, r.ID)
	}
	if err := r.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: rule %d: start time: %v", ErrMalformedRule, r.ID, err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: rule %d: end time: %v", ErrMalformedRule, r.ID, err)
	}
	if r.EndTime.IsBefore(r.StartTime) {
		return fmt.Errorf("%w: rule %d: end time %s before start time %s", ErrMalformedRule, r.ID, r.EndTime, r.StartTime)
	}
	if r.IntervalMinutes <= 0 || r.IntervalMinutes > MaxIntervalMinutes {
		return fmt.Errorf("%w: rule %d: interval %d", ErrMalformedRule, r.ID, r.IntervalMinutes)
	}
	if r.Capacity < 0 {
		return fmt.Errorf("%w: rule %d: negative capacity", ErrMalformedRule, r.ID)
	}
	return nil
}

// Covers проверяет, что [StartTime, EndTime] содержит [from, to]
func (r *CapacityRule) Covers(from, to types.TimeString) bool {
	return !r.StartTime.IsAfter(from) && !r.EndTime.IsBefore(to)
}
