package arbor

import "time"

// Default fixed-timestep parameters.
const (
	// DefaultFixedInterval is the simulation step used for fixed updates
	// until changed with [Engine.SetFixedInterval].
	DefaultFixedInterval = 10 * time.Millisecond

	// DefaultFixedStepLimit caps how many fixed updates a single tick may
	// run, so a long frame cannot spiral into an unbounded catch-up loop.
	DefaultFixedStepLimit = 5
)

// Service is a unit of per-frame work driven by the engine's loop.
// All three methods are called synchronously on the loop goroutine:
// Update once per tick with the variable frame delta, FixedUpdate zero or
// more times per tick with the fixed interval, and UpdateEnd last.
type Service interface {
	Update(delta time.Duration)
	FixedUpdate(delta time.Duration)
	UpdateEnd()
}

// Engine is the coordinating context of an application. There is one engine
// per running application, created before any node and outliving them all;
// every [Object] holds a non-owning reference to it, passed explicitly at
// construction rather than through a global.
//
// The engine owns no tree nodes. It drives registered services and update
// observers from its loop and fans out platform events delivered to
// [Engine.Dispatch]. All engine state is confined to the loop goroutine;
// nothing here is safe for concurrent use.
type Engine struct {
	services []Service

	fixedInterval  time.Duration
	fixedStepLimit int
	accumulated    time.Duration
	running        bool

	onUpdate      Signal[time.Duration]
	onFixedUpdate Signal[time.Duration]
	onUpdateEnd   func()

	onKeyboard Signal[KeyboardEvent]
	onWindow   Signal[WindowEvent]
	onMouse    Signal[MouseEvent]
}

// NewEngine creates an engine with the default fixed-timestep parameters.
func NewEngine() *Engine {
	return &Engine{
		fixedInterval:  DefaultFixedInterval,
		fixedStepLimit: DefaultFixedStepLimit,
	}
}

// AddService registers a service with the engine's loop. Services run in
// registration order.
func (e *Engine) AddService(s Service) {
	e.services = append(e.services, s)
}

// SetFixedInterval sets the interval between fixed updates.
func (e *Engine) SetFixedInterval(d time.Duration) {
	e.fixedInterval = d
}

// FixedInterval returns the current fixed update interval.
func (e *Engine) FixedInterval() time.Duration {
	return e.fixedInterval
}

// Running reports whether the engine loop is active.
func (e *Engine) Running() bool {
	return e.running
}

// Quit stops the engine loop after the current tick completes.
func (e *Engine) Quit() {
	e.running = false
}

// start marks the loop active. Called by Run and by backends such as
// [Window] that drive Tick from their own frame callback.
func (e *Engine) start() {
	e.running = true
}

// Run drives the engine loop headlessly until [Engine.Quit] is called,
// measuring the delta between iterations itself. Backends that own the
// frame loop (such as [Window]) call [Engine.Tick] instead.
func (e *Engine) Run() {
	e.start()
	last := time.Now()
	for e.running {
		now := time.Now()
		delta := now.Sub(last)
		last = now
		e.Tick(delta)
	}
}

// Tick advances the engine by one frame: the update observer and services
// run with delta, then the accumulated time is consumed in fixed-interval
// steps (at most [DefaultFixedStepLimit] per tick), then the end-of-update
// observer and services run.
func (e *Engine) Tick(delta time.Duration) {
	e.onUpdate.Emit(delta)
	for _, s := range e.services {
		s.Update(delta)
	}

	e.accumulated += delta
	for steps := 0; e.accumulated >= e.fixedInterval && steps < e.fixedStepLimit; steps++ {
		e.accumulated -= e.fixedInterval
		e.onFixedUpdate.Emit(e.fixedInterval)
		for _, s := range e.services {
			s.FixedUpdate(e.fixedInterval)
		}
	}

	if e.onUpdateEnd != nil {
		e.onUpdateEnd()
	}
	for _, s := range e.services {
		s.UpdateEnd()
	}
}

// Dispatch delivers a platform event to the observer registered for its
// kind, synchronously, before Dispatch returns. Events arrive one at a time
// in arrival order; unknown kinds are ignored.
func (e *Engine) Dispatch(event Event) {
	switch ev := event.(type) {
	case KeyboardEvent:
		e.onKeyboard.Emit(ev)
	case WindowEvent:
		e.onWindow.Emit(ev)
	case MouseEvent:
		e.onMouse.Emit(ev)
	}
}

// OnUpdate registers the per-tick update observer, called with the variable
// frame delta. Re-registering replaces the previous observer.
func (e *Engine) OnUpdate(fn func(delta time.Duration)) {
	e.onUpdate.Connect(fn)
}

// OnFixedUpdate registers the fixed-timestep observer, called with the fixed
// interval for every consumed step. Re-registering replaces the previous
// observer.
func (e *Engine) OnFixedUpdate(fn func(delta time.Duration)) {
	e.onFixedUpdate.Connect(fn)
}

// OnUpdateEnd registers the observer called at the end of every tick.
// Re-registering replaces the previous observer.
func (e *Engine) OnUpdateEnd(fn func()) {
	e.onUpdateEnd = fn
}

// OnKeyboardEvent registers the observer for keyboard events.
// Re-registering replaces the previous observer.
func (e *Engine) OnKeyboardEvent(fn func(KeyboardEvent)) {
	e.onKeyboard.Connect(fn)
}

// OnWindowEvent registers the observer for window lifecycle events.
// Re-registering replaces the previous observer.
func (e *Engine) OnWindowEvent(fn func(WindowEvent)) {
	e.onWindow.Connect(fn)
}

// OnMouseEvent registers the observer for mouse events.
// Re-registering replaces the previous observer.
func (e *Engine) OnMouseEvent(fn func(MouseEvent)) {
	e.onMouse.Connect(fn)
}
