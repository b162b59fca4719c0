package availability

import (
	"sort"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Window ряд времен начала от Start до End с постоянным шагом.
// Слоты брони включают End, InclusiveEnd=false его исключает
type Window struct {
	Start           types.TimeString
	End             types.TimeString
	IntervalMinutes int
	InclusiveEnd    bool
}

// Times возвращает строго возрастающие времена окна.
// Для некорректного окна результат пустой
func (w Window) Times() []types.TimeString {
	if w.IntervalMinutes <= 0 || w.Start.Validate() != nil || w.End.Validate() != nil {
		return nil
	}

	start, end := w.Start.Minutes(), w.End.Minutes()
	if end < start {
		return nil
	}
	times := make([]types.TimeString, 0, (end-start)/w.IntervalMinutes+1)
	for t := start; t < end || (w.InclusiveEnd && t == end); t += w.IntervalMinutes {
		ts, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		times = append(times, ts)
	}
	return times
}

// MergeWindows объединяет времена окон по возрастанию без повторов
func MergeWindows(windows ...Window) []types.TimeString {
	seen := make(map[int]struct{})
	minutes := make([]int, 0)
	for _, w := range windows {
		for _, t := range w.Times() {
			m := t.Minutes()
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			minutes = append(minutes, m)
		}
	}
	sort.Ints(minutes)

	times := make([]types.TimeString, 0, len(minutes))
	for _, m := range minutes {
		ts, _ := types.NewTimeStringFromMinutes(m)
		times = append(times, ts)
	}
	return times
}
