package event

import "sync"

// ListenerID identifies a subscription so it can be removed later.
type ListenerID uint64

// Signal is a multi-cast event carrying one argument. Listeners run in
// subscription order on the goroutine that calls Invoke.
type Signal[T any] struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners []listener[T]
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener subscribes fn. A nil callback is ignored and returns 0.
func (s *Signal[T]) AddListener(fn func(T)) ListenerID {
	if fn == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.listeners = append(s.listeners, listener[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// RemoveListener drops the subscription with the given id.
func (s *Signal[T]) RemoveListener(id ListenerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Signal[T]) RemoveAllListeners() {
	s.mu.Lock()
	s.listeners = nil
	s.mu.Unlock()
}

// Invoke calls every listener with arg. The listener list is snapshotted
// first so callbacks may subscribe or unsubscribe.
func (s *Signal[T]) Invoke(arg T) {
	s.mu.Lock()
	snapshot := make([]listener[T], len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	for _, l := range snapshot {
		l.fn(arg)
	}
}

// ListenerCount returns the number of registered listeners (for debugging)
func (s *Signal[T]) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
