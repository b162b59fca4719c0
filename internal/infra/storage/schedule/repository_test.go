package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesQuery(t *testing.T) {
	query, args, err := rulesQuery(7).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, venue_id, weekdays, start_time, end_time, interval_minutes, capacity "+
			"FROM capacity_rules WHERE venue_id = $1 ORDER BY position ASC, id ASC",
		query)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestExceptionsQuery(t *testing.T) {
	from := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	t.Run("bounded", func(t *testing.T) {
		query, args, err := exceptionsQuery(3, &from, &to).ToSql()
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT id, venue_id, exception_date, reason FROM closure_exceptions "+
				"WHERE venue_id = $1 AND exception_date >= $2 AND exception_date <= $3 ORDER BY exception_date ASC",
			query)
		assert.Equal(t, []interface{}{int64(3), "2026-10-16", "2027-10-16"}, args)
	})

	t.Run("single day", func(t *testing.T) {
		_, args, err := exceptionsQuery(3, &from, &from).ToSql()
		require.NoError(t, err)
		assert.Equal(t, []interface{}{int64(3), "2026-10-16", "2026-10-16"}, args)
	})

	t.Run("unbounded", func(t *testing.T) {
		query, args, err := exceptionsQuery(3, nil, nil).ToSql()
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT id, venue_id, exception_date, reason FROM closure_exceptions WHERE venue_id = $1 ORDER BY exception_date ASC",
			query)
		assert.Len(t, args, 1)
	})
}
