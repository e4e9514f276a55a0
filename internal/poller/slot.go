package poller

// Slot is a single-value "latest wins" channel. Publishing replaces any value
// the consumer has not taken yet, so the consumer only ever sees the newest
// one. Slot supports one publisher and one consumer.
type Slot[T any] struct {
	ch chan T
}

// NewSlot creates an empty slot.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{ch: make(chan T, 1)}
}

// Publish stores v, discarding a pending older value. It never blocks.
func (s *Slot[T]) Publish(v T) {
	for {
		select {
		case s.ch <- v:
			return
		default:
		}

		// Full: drop the stale value and try again.
		select {
		case <-s.ch:
		default:
		}
	}
}

// TryReceive takes the pending value, if any, without blocking.
func (s *Slot[T]) TryReceive() (T, bool) {
	select {
	case v := <-s.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
