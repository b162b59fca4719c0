package migrations

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_SortedAndEmbedded(t *testing.T) {
	names, err := list()
	require.NoError(t, err)

	assert.Equal(t, []string{"0001_schema.sql", "0002_reservations.sql"}, names)

	for _, name := range names {
		body, err := files.ReadFile(name)
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(string(body)), name)
	}
}

func TestSchema_ContainsEngineTables(t *testing.T) {
	var all strings.Builder
	names, err := list()
	require.NoError(t, err)
	for _, name := range names {
		body, err := files.ReadFile(name)
		require.NoError(t, err)
		all.Write(body)
	}

	for _, table := range []string{"capacity_rules", "closure_exceptions", "rooms", "tables", "reservations"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestIsIgnorableMigrationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate table", &pq.Error{Code: "42P07"}, true},
		{"wrapped duplicate column", fmt.Errorf("apply: %w", &pq.Error{Code: "42701"}), true},
		{"syntax error", &pq.Error{Code: "42601"}, false},
		{"not a pq error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isIgnorableMigrationError(tt.err))
		})
	}
}
