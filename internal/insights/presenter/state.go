package presenter

import "sync"

// State is a published screen state. Every change replaces the whole value so
// readers never see a half-updated composite.
type State[T any] struct {
	mu    sync.RWMutex
	value T

	subsMu    sync.Mutex
	nextSubID int
	subs      map[int]chan T
}

// NewState creates a State holding initial.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial, subs: make(map[int]chan T)}
}

// Value returns the current state.
func (s *State[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the state and notifies subscribers.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	s.broadcast(v)
}

// Update applies fn to the current state atomically and publishes the result.
func (s *State[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	next := fn(s.value)
	s.value = next
	s.mu.Unlock()
	s.broadcast(next)
	return next
}

// Subscribe returns a channel receiving later states. Slow consumers have
// states dropped; Value always holds the latest one.
func (s *State[T]) Subscribe(bufSize int) (int, <-chan T) {
	ch := make(chan T, bufSize)
	s.subsMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	s.subsMu.Unlock()
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (s *State[T]) Unsubscribe(id int) {
	s.subsMu.Lock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
	s.subsMu.Unlock()
}

func (s *State[T]) broadcast(v T) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- v:
		default:
		}
	}
}
