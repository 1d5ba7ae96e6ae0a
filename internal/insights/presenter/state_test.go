package presenter

import (
	"context"
	"sync"
	"testing"
	"time"

	"golang-trading-insights/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestState_UpdateIsAtomic(t *testing.T) {
	s := NewState(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, s.Value())
}

func TestState_SubscribersReceiveWholeValues(t *testing.T) {
	type pair struct{ A, B int }
	s := NewState(pair{})
	id, ch := s.Subscribe(2)

	s.Set(pair{A: 1, B: 1})
	s.Update(func(p pair) pair { return pair{A: p.A + 1, B: p.B + 1} })

	assert.Equal(t, pair{A: 1, B: 1}, <-ch)
	assert.Equal(t, pair{A: 2, B: 2}, <-ch)

	s.Unsubscribe(id)
	_, open := <-ch
	assert.False(t, open)
}

func TestScope_CloseCancelsInFlight(t *testing.T) {
	scope := NewScope(context.Background(), logger.NewNop())
	started := make(chan struct{})
	var cancelled bool

	scope.Go("wait", func(ctx context.Context) {
		close(started)
		select {
		case <-ctx.Done():
			cancelled = true
		case <-time.After(5 * time.Second):
		}
	})
	<-started
	scope.Close()

	assert.True(t, cancelled)
	assert.False(t, scope.Go("late", func(context.Context) {}))
}
