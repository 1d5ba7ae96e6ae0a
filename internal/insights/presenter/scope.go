package presenter

import (
	"context"
	"sync"

	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/utils"
)

// Scope ties the actions of one presenter to its lifetime. Closing the scope
// cancels in-flight fetches and waits for them to return.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewScope creates a Scope derived from parent.
func NewScope(parent context.Context, log *logger.Logger) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel, logger: log}
}

// Context is cancelled when the scope closes.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go runs fn in the background. It returns false once the scope is closed.
func (s *Scope) Go(name string, fn func(ctx context.Context)) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logger.Debug("Scope closed, action dropped", logger.StringField("action", name))
		return false
	}
	s.wg.Add(1)
	s.mu.Unlock()

	utils.GoSafe(func() {
		defer s.wg.Done()
		fn(s.ctx)
	})
	return true
}

// Wait blocks until every running action has returned.
func (s *Scope) Wait() {
	s.wg.Wait()
}

// Close cancels running actions and waits for them.
func (s *Scope) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
}

// Closed reports whether the scope was closed. Results that arrive after
// Close are dropped; a result cut short by a caller's own deadline is not.
func (s *Scope) Closed() bool {
	return s.ctx.Err() != nil
}
