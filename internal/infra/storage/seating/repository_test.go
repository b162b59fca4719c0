package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomsQuery(t *testing.T) {
	query, args, err := roomsQuery(12).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT r.id, r.venue_id, r.name, t.id, t.label, t.capacity FROM rooms r "+
			"LEFT JOIN tables t ON t.room_id = r.id WHERE r.venue_id = $1 ORDER BY r.id ASC, t.id ASC",
		query)
	assert.Equal(t, []interface{}{int64(12)}, args)
}
