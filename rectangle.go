package arbor

// Rectangle is a widget that fills its bounding box with a solid color.
// It occupies the widget's draw slot; registering another OnDraw callback
// replaces the fill.
type Rectangle struct {
	Widget
	Color Color
}

// NewRectangle creates a white rectangle widget with zero bounds.
func NewRectangle(engine *Engine) *Rectangle {
	r := &Rectangle{Color: ColorWhite}
	r.Widget.init(engine)
	r.OnDraw(func(renderer Renderer) {
		renderer.DrawRectangle(r.Position.X, r.Position.Y, r.Size.X, r.Size.Y, r.Color)
	})
	return r
}
