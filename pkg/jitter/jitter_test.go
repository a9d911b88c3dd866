package jitter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialBackoffBounds(t *testing.T) {
	base := 10 * time.Millisecond
	max := 80 * time.Millisecond

	for attempt, want := range []time.Duration{10, 20, 40, 80, 80} {
		want *= time.Millisecond
		got := ExponentialBackoff(base, max, attempt, DefaultJitter)

		assert.GreaterOrEqual(t, got, want)
		assert.LessOrEqual(t, got, want+want/2)
	}
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	var retries []int

	err := Retry(context.Background(), Policy{Attempts: 3, Base: time.Millisecond, Max: 2 * time.Millisecond},
		func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		},
		func(attempt int, wait time.Duration, err error) {
			retries = append(retries, attempt)
		},
	)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retries)
}

func TestRetryReturnsLastError(t *testing.T) {
	cause := errors.New("no reachable servers")

	err := Retry(context.Background(), Policy{Attempts: 2, Base: time.Millisecond, Max: time.Millisecond},
		func(ctx context.Context) error { return cause }, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "all 2 attempts failed")
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, Policy{Attempts: 5, Base: time.Hour, Max: time.Hour},
		func(ctx context.Context) error { return errors.New("down") }, nil)

	assert.True(t, errors.Is(err, context.Canceled))
}
