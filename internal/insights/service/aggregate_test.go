package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"golang-trading-insights/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAll_RunsConcurrentlyAndCollectsOutcomes(t *testing.T) {
	var running, peak int32
	slow := func(ctx context.Context) error {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return nil
	}

	var name string
	outcomes := FetchAll(context.Background(), logger.NewNop(),
		Fetcher{Slot: "a", Primary: true, Run: slow},
		Fetcher{Slot: "b", Run: slow},
		Fetcher{Slot: "c", Run: Into(&name, func(context.Context) (string, error) { return "ok", nil })},
	)

	require.Len(t, outcomes, 3)
	assert.Nil(t, outcomes.PrimaryFailure())
	assert.Empty(t, outcomes.Failed())
	assert.Equal(t, "ok", name)
	assert.Equal(t, int32(2), atomic.LoadInt32(&peak))
}

func TestFetchAll_SecondaryFailureIsDegraded(t *testing.T) {
	boom := errors.New("boom")
	var primary string
	secondary := "untouched"

	outcomes := FetchAll(context.Background(), logger.NewNop(),
		Fetcher{Slot: "primary", Primary: true, Run: Into(&primary, func(context.Context) (string, error) { return "data", nil })},
		Fetcher{Slot: "secondary", Run: Into(&secondary, func(context.Context) (string, error) { return "", boom })},
	)

	assert.Nil(t, outcomes.PrimaryFailure())
	assert.False(t, outcomes.AllFailed())
	assert.ErrorIs(t, outcomes.Err("secondary"), boom)
	assert.Equal(t, "data", primary)
	assert.Equal(t, "untouched", secondary)
}

func TestFetchAll_PrimaryFailureIsFatal(t *testing.T) {
	boom := errors.New("boom")
	outcomes := FetchAll(context.Background(), logger.NewNop(),
		Fetcher{Slot: "primary", Primary: true, Run: func(context.Context) error { return boom }},
		Fetcher{Slot: "secondary", Run: func(context.Context) error { return nil }},
	)

	failure := outcomes.PrimaryFailure()
	require.NotNil(t, failure)
	assert.Equal(t, "primary", failure.Slot)
	assert.ErrorIs(t, failure.Err, boom)
}

func TestFetchAll_PanicBecomesFailure(t *testing.T) {
	outcomes := FetchAll(context.Background(), logger.NewNop(),
		Fetcher{Slot: "panics", Run: func(context.Context) error { panic("unexpected") }},
		Fetcher{Slot: "fine", Run: func(context.Context) error { return nil }},
	)

	assert.Error(t, outcomes.Err("panics"))
	assert.NoError(t, outcomes.Err("fine"))
}
