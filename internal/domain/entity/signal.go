package entity

// Signal is a synchronous multicast callback list.
// It is not safe for concurrent use: the layout engine runs on the host's UI thread.
type Signal[T any] struct {
	next  int
	slots []signalSlot[T]
}

type signalSlot[T any] struct {
	id int
	fn func(T)
}

// Connect registers fn and returns an id usable with Disconnect.
func (s *Signal[T]) Connect(fn func(T)) int {
	s.next++
	s.slots = append(s.slots, signalSlot[T]{id: s.next, fn: fn})
	return s.next
}

// Disconnect removes the slot registered under id.
func (s *Signal[T]) Disconnect(id int) {
	for i := range s.slots {
		if s.slots[i].id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

// Emit calls every connected slot in connection order.
// Slots connected or disconnected during emission take effect on the next Emit.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	slots := make([]signalSlot[T], len(s.slots))
	copy(slots, s.slots)
	for _, slot := range slots {
		slot.fn(v)
	}
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}
