package selection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
)

var (
	dayA = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	dayB = time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
)

// gatedFetch blocks each date until its gate is closed and ignores cancellation,
// so a stale response really arrives after the newer one.
func gatedFetch(gates map[string]chan struct{}) Fetch[string] {
	return func(ctx context.Context, date time.Time) (string, error) {
		key := date.Format(domain.DateFormat)
		<-gates[key]
		return key, nil
	}
}

func TestCoordinator_DropsStaleResult(t *testing.T) {
	gates := map[string]chan struct{}{
		"2026-10-20": make(chan struct{}),
		"2026-10-21": make(chan struct{}),
	}
	c := NewCoordinator(gatedFetch(gates), 4, logger.Nop())

	genA, err := c.Select(context.Background(), dayA)
	require.NoError(t, err)
	genB, err := c.Select(context.Background(), dayB)
	require.NoError(t, err)
	assert.Greater(t, genB, genA)

	// Newer answer first, then the stale one
	close(gates["2026-10-21"])
	update := <-c.Updates()
	assert.Equal(t, "2026-10-21", update.Value)
	assert.Equal(t, genB, update.Generation)

	close(gates["2026-10-20"])
	c.Wait()

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "2026-10-21", current.Value)
	assert.Equal(t, dayB, current.Date)
	assert.Equal(t, Stats{Started: 2, Applied: 1, Dropped: 1}, c.Stats())

	c.Close()
	_, open := <-c.Updates()
	assert.False(t, open)
}

func TestCoordinator_CancelsPreviousFetch(t *testing.T) {
	cancelled := make(chan struct{})
	fetch := func(ctx context.Context, date time.Time) (string, error) {
		if date.Equal(dayA) {
			<-ctx.Done()
			close(cancelled)
			return "", ctx.Err()
		}
		return "b", nil
	}
	c := NewCoordinator[string](fetch, 1, logger.Nop())
	defer c.Close()

	_, err := c.Select(context.Background(), dayA)
	require.NoError(t, err)
	_, err = c.Select(context.Background(), dayB)
	require.NoError(t, err)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("previous fetch was not cancelled")
	}
	c.Wait()

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "b", current.Value)
	assert.NoError(t, current.Err)
	assert.Equal(t, uint64(1), c.Stats().Dropped)
}

func TestCoordinator_ErrorIsApplied(t *testing.T) {
	fetch := func(ctx context.Context, date time.Time) (string, error) {
		return "", assert.AnError
	}
	c := NewCoordinator[string](fetch, 1, logger.Nop())

	_, err := c.Select(context.Background(), dayA)
	require.NoError(t, err)
	c.Wait()

	current, ok := c.Current()
	require.True(t, ok)
	assert.ErrorIs(t, current.Err, assert.AnError)

	c.Close()
	_, err = c.Select(context.Background(), dayB)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCoordinator_NoSelection(t *testing.T) {
	c := NewCoordinator[string](func(context.Context, time.Time) (string, error) { return "", nil }, 0, logger.Nop())
	defer c.Close()

	_, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, Stats{}, c.Stats())
}
