package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

func strs(ts []types.TimeString) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func TestWindow_Times(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		want []string
	}{
		{
			name: "inclusive end",
			w:    Window{Start: "17:30", End: "19:00", IntervalMinutes: 30, InclusiveEnd: true},
			want: []string{"17:30", "18:00", "18:30", "19:00"},
		},
		{
			name: "exclusive end",
			w:    Window{Start: "17:30", End: "19:00", IntervalMinutes: 30},
			want: []string{"17:30", "18:00", "18:30"},
		},
		{
			name: "interval does not divide window",
			w:    Window{Start: "12:00", End: "13:00", IntervalMinutes: 25, InclusiveEnd: true},
			want: []string{"12:00", "12:25", "12:50"},
		},
		{
			name: "single point",
			w:    Window{Start: "20:00", End: "20:00", IntervalMinutes: 15, InclusiveEnd: true},
			want: []string{"20:00"},
		},
		{
			name: "ends at end of day",
			w:    Window{Start: "23:00", End: "23:59", IntervalMinutes: 30, InclusiveEnd: true},
			want: []string{"23:00", "23:30"},
		},
		{name: "zero interval", w: Window{Start: "10:00", End: "11:00"}, want: []string{}},
		{name: "reversed", w: Window{Start: "11:00", End: "10:00", IntervalMinutes: 15}, want: []string{}},
		{name: "broken bound", w: Window{Start: "xx", End: "10:00", IntervalMinutes: 15}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strs(tt.w.Times()))
		})
	}
}

func TestMergeWindows(t *testing.T) {
	lunch := Window{Start: "11:00", End: "12:00", IntervalMinutes: 30, InclusiveEnd: true}
	overlap := Window{Start: "11:30", End: "12:30", IntervalMinutes: 15}

	assert.Equal(t,
		[]string{"11:00", "11:30", "11:45", "12:00", "12:15"},
		strs(MergeWindows(overlap, lunch)))
	assert.Empty(t, MergeWindows())
}
