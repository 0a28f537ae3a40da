package arbor

import "slices"

// Widget is an [Object] with a 2D axis-aligned bounding box and hit testing.
// All widget coordinates are in the same space: a child's Position is not
// relative to its parent, and children are not clipped to the parent's
// bounds.
//
// A widget keeps a typed cache of its widget children, maintained through
// the typed attach path: widget children must be added with
// [Widget.AddWidget] or [Widget.CreateWidget], never the generic
// [Object.AddChild], so the cache stays exactly the widget-typed subsequence
// of [Object.Children] in the same order. Detachment through the generic
// [Object.Remove] prunes the cache automatically.
type Widget struct {
	Object

	// Position is the top-left corner of the widget's bounding box.
	Position Vec2
	// Size is the extent of the bounding box. Both default to zero.
	Size Vec2

	widgets []*Widget
	onDraw  Signal[Renderer]
}

// NewWidget creates a detached widget referencing the given engine.
func NewWidget(engine *Engine) *Widget {
	w := &Widget{}
	w.init(engine)
	return w
}

// init wires the engine reference and the cache-pruning hook. It is split
// out from NewWidget so types embedding Widget can initialize in place
// without copying the closure's receiver.
func (w *Widget) init(engine *Engine) {
	w.engine = engine
	w.childRemoved = func(child *Object) {
		for i, cw := range w.widgets {
			if &cw.Object == child {
				w.widgets = slices.Delete(w.widgets, i, i+1)
				break
			}
		}
	}
}

// Bounds returns the widget's bounding box as a [Rect].
func (w *Widget) Bounds() Rect {
	return Rect{X: w.Position.X, Y: w.Position.Y, Width: w.Size.X, Height: w.Size.Y}
}

// Contains reports whether p lies inside the widget's bounds. The interval
// is closed on all four edges: points exactly on an edge are inside, and a
// zero-size widget contains only its own corner point.
func (w *Widget) Contains(p Vec2) bool {
	return w.Bounds().Contains(p)
}

// AddWidget records child in the widget cache and transfers ownership of it
// through the generic attach path. A nil child is a no-op.
func (w *Widget) AddWidget(child *Widget) {
	if child == nil {
		return
	}
	w.widgets = append(w.widgets, child)
	w.AddChild(&child.Object)
}

// CreateWidget creates a new widget with the given name, attaches it as the
// last (topmost) widget child, and returns it.
func (w *Widget) CreateWidget(name string) *Widget {
	child := NewWidget(w.engine)
	child.Name = name
	w.AddWidget(child)
	return child
}

// ChildrenWidgets returns the widget children in insertion order: the
// widget-typed subsequence of [Object.Children]. The returned slice is a
// read-only view, valid until the next structural mutation.
func (w *Widget) ChildrenWidgets() []*Widget {
	return w.widgets
}

// WidgetAt returns the topmost widget in this widget's subtree that contains
// p, or nil if p is outside this widget's bounds.
//
// Widget children are scanned in reverse insertion order, so among
// overlapping siblings the most recently added one wins, matching draw order
// where later widgets draw on top. Any matching descendant, however deep, is
// preferred over this widget itself.
func (w *Widget) WidgetAt(p Vec2) *Widget {
	if !w.Contains(p) {
		return nil
	}
	for i := len(w.widgets) - 1; i >= 0; i-- {
		if hit := w.widgets[i].WidgetAt(p); hit != nil {
			return hit
		}
	}
	return w
}

// Draw emits the widget's draw callback against the given renderer, then
// draws the widget children in insertion order, so later-added children
// paint on top. [Widget.WidgetAt] resolves the same order in reverse.
func (w *Widget) Draw(renderer Renderer) {
	w.onDraw.Emit(renderer)
	for _, child := range w.widgets {
		child.Draw(renderer)
	}
}

// OnDraw registers the draw observer invoked by [Widget.Draw] before the
// widget's children are drawn. Re-registering replaces the previous
// observer; drawable widgets such as [Rectangle] and [Label] occupy this
// slot themselves.
func (w *Widget) OnDraw(fn func(Renderer)) {
	w.onDraw.Connect(fn)
}
