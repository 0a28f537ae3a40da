package arbor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Default window settings, used when the corresponding [Config] field is
// zero.
const (
	DefaultTitle  = "Arbor"
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Window is the Ebitengine-backed platform adapter: an engine [Service] that
// owns a root [Widget] sized to the window, renders the widget tree through
// an internal [Renderer] every frame, and translates platform input into
// [Event] values dispatched through the engine.
//
// Creating a window registers it with the engine; [Window.Run] then takes
// over the frame loop and drives [Engine.Tick] until the engine quits or the
// window is closed.
type Window struct {
	engine     *Engine
	root       *Widget
	renderer   *ebitenRenderer
	title      string
	width      int
	height     int
	clearColor Color

	lastCursor Vec2
}

// NewWindow creates a window from cfg, applying [DefaultConfig] values for
// zero fields, and registers it as an engine service.
func NewWindow(engine *Engine, cfg Config) (*Window, error) {
	defaults := DefaultConfig()
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}
	if cfg.Width == 0 {
		cfg.Width = defaults.Width
	}
	if cfg.Height == 0 {
		cfg.Height = defaults.Height
	}
	if cfg.FixedInterval != 0 {
		engine.SetFixedInterval(time.Duration(cfg.FixedInterval))
	}

	renderer, err := newEbitenRenderer()
	if err != nil {
		return nil, err
	}

	root := NewWidget(engine)
	root.Name = "root"
	root.Size = Vec2{X: float64(cfg.Width), Y: float64(cfg.Height)}

	w := &Window{
		engine:     engine,
		root:       root,
		renderer:   renderer,
		title:      cfg.Title,
		width:      cfg.Width,
		height:     cfg.Height,
		clearColor: cfg.ClearColor,
	}
	engine.AddService(w)
	return w, nil
}

// Root returns the window's root widget. Its bounds cover the whole window,
// so a hit test against it resolves anywhere on screen.
func (w *Window) Root() *Widget {
	return w.root
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Run opens the window and drives the engine loop from the platform's frame
// callback until the engine quits or the window is closed. It must be called
// from the main goroutine and blocks until the loop ends.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	slog.Debug("arbor: opening window", "title", w.title, "width", w.width, "height", w.height)

	w.engine.start()
	if err := ebiten.RunGame(&windowGame{window: w, last: time.Now()}); err != nil {
		return fmt.Errorf("arbor: window loop: %w", err)
	}
	return nil
}

// Update polls platform input and dispatches the resulting events through
// the engine. It runs once per tick as part of the window's Service role.
func (w *Window) Update(delta time.Duration) {
	w.pollKeyboard()
	w.pollMouse()
}

// FixedUpdate implements [Service]; the window has no fixed-timestep work.
func (w *Window) FixedUpdate(delta time.Duration) {}

// UpdateEnd implements [Service]; drawing happens in the platform's draw
// callback, not at end of update.
func (w *Window) UpdateEnd() {}

func (w *Window) pollKeyboard() {
	for _, m := range keyMappings {
		if inpututil.IsKeyJustPressed(m.ebiten) {
			w.engine.Dispatch(KeyboardEvent{Action: KeyPressed, Key: m.key})
		}
		if inpututil.IsKeyJustReleased(m.ebiten) {
			w.engine.Dispatch(KeyboardEvent{Action: KeyReleased, Key: m.key})
		}
	}
}

func (w *Window) pollMouse() {
	x, y := ebiten.CursorPosition()
	cursor := Vec2{X: float64(x), Y: float64(y)}
	if cursor != w.lastCursor {
		w.lastCursor = cursor
		w.engine.Dispatch(MouseEvent{Action: MouseMoved, Position: cursor})
	}

	buttons := []struct {
		ebiten ebiten.MouseButton
		button MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			w.engine.Dispatch(MouseEvent{Action: MouseButtonPressed, Button: b.button, Position: cursor})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			w.engine.Dispatch(MouseEvent{Action: MouseButtonReleased, Button: b.button, Position: cursor})
		}
	}
}

// windowGame adapts a Window to the ebiten.Game interface.
type windowGame struct {
	window *Window
	last   time.Time
}

func (g *windowGame) Update() error {
	w := g.window
	if !w.engine.Running() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		w.engine.Dispatch(WindowEvent{Action: WindowClosed})
		w.engine.Quit()
		return ebiten.Termination
	}

	now := time.Now()
	delta := now.Sub(g.last)
	g.last = now
	w.engine.Tick(delta)
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	w := g.window
	w.renderer.setTarget(screen)
	w.renderer.Begin(w.clearColor)
	w.root.Draw(w.renderer)
	w.renderer.End()
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.width, g.window.height
}
