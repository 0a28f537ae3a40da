package arbor

// DefaultFontSize is the font size a new [Label] draws with.
const DefaultFontSize = 20

// Label is a widget that draws a string at its position. Like [Rectangle]
// it occupies the widget's draw slot.
type Label struct {
	Widget
	Text     string
	FontSize float64
	Color    Color
}

// NewLabel creates a white label with the default font size and no text.
func NewLabel(engine *Engine) *Label {
	l := &Label{FontSize: DefaultFontSize, Color: ColorWhite}
	l.Widget.init(engine)
	l.OnDraw(func(renderer Renderer) {
		renderer.DrawText(l.Position.X, l.Position.Y, l.Text, l.FontSize, l.Color)
	})
	return l
}
