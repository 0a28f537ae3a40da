package arbor

import (
	"testing"
	"time"
)

func TestEngineDefaults(t *testing.T) {
	e := NewEngine()
	if e.FixedInterval() != DefaultFixedInterval {
		t.Errorf("FixedInterval() = %v, want %v", e.FixedInterval(), DefaultFixedInterval)
	}
	if e.Running() {
		t.Error("new engine should not be running")
	}
}

func TestEngineSetFixedInterval(t *testing.T) {
	e := NewEngine()
	e.SetFixedInterval(time.Second)
	if e.FixedInterval() != time.Second {
		t.Errorf("FixedInterval() = %v, want %v", e.FixedInterval(), time.Second)
	}
}

func TestEngineTickEmitsUpdate(t *testing.T) {
	e := NewEngine()
	var got time.Duration
	e.OnUpdate(func(d time.Duration) { got = d })
	e.Tick(16 * time.Millisecond)
	if got != 16*time.Millisecond {
		t.Errorf("OnUpdate delta = %v, want 16ms", got)
	}
}

func TestEngineTickFixedStepAccumulation(t *testing.T) {
	e := NewEngine()
	e.SetFixedInterval(10 * time.Millisecond)

	steps := 0
	e.OnFixedUpdate(func(d time.Duration) {
		steps++
		if d != 10*time.Millisecond {
			t.Errorf("fixed delta = %v, want 10ms", d)
		}
	})

	e.Tick(25 * time.Millisecond) // consumes 20ms, carries 5ms
	if steps != 2 {
		t.Fatalf("fixed steps after 25ms tick = %d, want 2", steps)
	}
	e.Tick(5 * time.Millisecond) // carried 5ms + 5ms = one more step
	if steps != 3 {
		t.Errorf("fixed steps after further 5ms = %d, want 3", steps)
	}
}

func TestEngineTickFixedStepLimit(t *testing.T) {
	e := NewEngine()
	e.SetFixedInterval(time.Millisecond)

	steps := 0
	e.OnFixedUpdate(func(time.Duration) { steps++ })

	// A huge frame must not run more than the step limit.
	e.Tick(time.Second)
	if steps != DefaultFixedStepLimit {
		t.Errorf("fixed steps for a 1s tick = %d, want %d", steps, DefaultFixedStepLimit)
	}
}

func TestEngineTickCallOrder(t *testing.T) {
	e := NewEngine()
	e.SetFixedInterval(10 * time.Millisecond)

	var order []string
	e.OnUpdate(func(time.Duration) { order = append(order, "update") })
	e.OnFixedUpdate(func(time.Duration) { order = append(order, "fixed") })
	e.OnUpdateEnd(func() { order = append(order, "end") })

	e.Tick(10 * time.Millisecond)

	want := []string{"update", "fixed", "end"}
	if len(order) != len(want) {
		t.Fatalf("call order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("call order = %v, want %v", order, want)
		}
	}
}

// recordingService records which Service methods ran.
type recordingService struct {
	updates      int
	fixedUpdates int
	updateEnds   int
}

func (s *recordingService) Update(time.Duration)      { s.updates++ }
func (s *recordingService) FixedUpdate(time.Duration) { s.fixedUpdates++ }
func (s *recordingService) UpdateEnd()                { s.updateEnds++ }

func TestEngineServicesDrivenByTick(t *testing.T) {
	e := NewEngine()
	e.SetFixedInterval(10 * time.Millisecond)
	svc := &recordingService{}
	e.AddService(svc)

	e.Tick(20 * time.Millisecond)

	if svc.updates != 1 {
		t.Errorf("Update ran %d times, want 1", svc.updates)
	}
	if svc.fixedUpdates != 2 {
		t.Errorf("FixedUpdate ran %d times, want 2", svc.fixedUpdates)
	}
	if svc.updateEnds != 1 {
		t.Errorf("UpdateEnd ran %d times, want 1", svc.updateEnds)
	}
}

func TestEngineServicesIndependentOfUpdateObserver(t *testing.T) {
	e := NewEngine()
	svc := &recordingService{}
	e.AddService(svc)
	e.OnUpdate(func(time.Duration) {}) // must not displace service updates

	e.Tick(time.Millisecond)

	if svc.updates != 1 {
		t.Error("registering an update observer must not displace services")
	}
}

func TestEngineRunUntilQuit(t *testing.T) {
	e := NewEngine()
	ticks := 0
	e.OnUpdate(func(time.Duration) {
		ticks++
		if ticks >= 3 {
			e.Quit()
		}
	})

	e.Run()

	if e.Running() {
		t.Error("engine should not be running after Run returns")
	}
	if ticks != 3 {
		t.Errorf("loop ran %d ticks, want 3", ticks)
	}
}

func TestEngineDispatchKeyboard(t *testing.T) {
	e := NewEngine()
	var got KeyboardEvent
	e.OnKeyboardEvent(func(ev KeyboardEvent) { got = ev })

	e.Dispatch(KeyboardEvent{Action: KeyPressed, Key: KeySpace})

	if got.Action != KeyPressed || got.Key != KeySpace {
		t.Errorf("keyboard observer got %+v, want pressed Space", got)
	}
}

func TestEngineDispatchWindow(t *testing.T) {
	e := NewEngine()
	var got WindowEvent
	e.OnWindowEvent(func(ev WindowEvent) { got = ev })

	e.Dispatch(WindowEvent{Action: WindowClosed})

	if got.Action != WindowClosed {
		t.Errorf("window observer got %+v, want closed", got)
	}
}

func TestEngineDispatchMouse(t *testing.T) {
	e := NewEngine()
	var got MouseEvent
	e.OnMouseEvent(func(ev MouseEvent) { got = ev })

	e.Dispatch(MouseEvent{
		Action:   MouseButtonPressed,
		Button:   MouseButtonLeft,
		Position: Vec2{X: 12, Y: 34},
	})

	if got.Action != MouseButtonPressed || got.Button != MouseButtonLeft {
		t.Errorf("mouse observer got %+v, want left press", got)
	}
	if got.Position != (Vec2{X: 12, Y: 34}) {
		t.Errorf("mouse position = %v, want (12,34)", got.Position)
	}
}

func TestEngineDispatchRoutesByKind(t *testing.T) {
	e := NewEngine()
	keyboard, mouse := 0, 0
	e.OnKeyboardEvent(func(KeyboardEvent) { keyboard++ })
	e.OnMouseEvent(func(MouseEvent) { mouse++ })

	e.Dispatch(KeyboardEvent{Action: KeyPressed, Key: KeyA})

	if keyboard != 1 || mouse != 0 {
		t.Errorf("dispatch fan-out: keyboard=%d mouse=%d, want 1/0", keyboard, mouse)
	}
}

func TestEngineDispatchToWidgetAt(t *testing.T) {
	// The common wiring: a mouse observer resolving the event target with
	// WidgetAt.
	e := NewEngine()
	root := NewWidget(e)
	root.Size = Vec2{X: 400, Y: 400}
	button := root.CreateWidget("button")
	button.Position = Vec2{X: 100, Y: 100}
	button.Size = Vec2{X: 50, Y: 50}

	var hit *Widget
	e.OnMouseEvent(func(ev MouseEvent) {
		if ev.Action == MouseButtonPressed {
			hit = root.WidgetAt(ev.Position)
		}
	})

	e.Dispatch(MouseEvent{
		Action:   MouseButtonPressed,
		Button:   MouseButtonLeft,
		Position: Vec2{X: 120, Y: 120},
	})

	if hit != button {
		t.Error("mouse press should resolve to the button widget")
	}
}
