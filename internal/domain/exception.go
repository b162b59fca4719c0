package domain

import (
	"sort"
	"time"
)

// Exception разовое закрытие заведения на весь день
type Exception struct {
	ID      int64
	VenueID int64
	Date    time.Time
	Reason  *string
}

// ExceptionIndex множество закрытых дат с ключом YYYY-MM-DD
type ExceptionIndex map[string]struct{}

// NewExceptionIndex строит индекс по исключениям
func NewExceptionIndex(exceptions []*Exception) ExceptionIndex {
	idx := make(ExceptionIndex, len(exceptions))
	for _, e := range exceptions {
		if e == nil {
			continue
		}
		idx[e.Date.Format(DateFormat)] = struct{}{}
	}
	return idx
}

// Contains проверяет, закрыта ли дата. Время суток не учитывается
func (idx ExceptionIndex) Contains(date time.Time) bool {
	_, ok := idx[date.Format(DateFormat)]
	return ok
}

// Dates возвращает закрытые даты по возрастанию
func (idx ExceptionIndex) Dates() []string {
	dates := make([]string, 0, len(idx))
	for d := range idx {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
