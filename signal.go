package arbor

// Signal is a single-slot observer: at most one callback is registered per
// signal, and connecting a new callback replaces the previous one. Emission
// is synchronous on the calling goroutine and a no-op while no callback is
// connected.
//
// The single-slot contract keeps registration allocation-free and makes the
// replacement semantics explicit; callers that need fan-out can register one
// callback that forwards.
type Signal[T any] struct {
	fn func(T)
}

// Connect registers fn as the signal's observer, replacing any previously
// connected callback. Passing nil disconnects the signal.
func (s *Signal[T]) Connect(fn func(T)) {
	s.fn = fn
}

// Emit invokes the connected callback with v, if one is connected.
func (s *Signal[T]) Emit(v T) {
	if s.fn != nil {
		s.fn(v)
	}
}
