package arbor

// Color is an 8-bit RGBA color. It is not alpha-premultiplied;
// premultiplication happens in [Color.RGBA] so that Color satisfies the
// standard library's color.Color interface and can be handed directly to a
// rendering backend.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	ColorWhite       = Color{255, 255, 255, 255}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorTransparent = Color{0, 0, 0, 0}

	// ColorArbor is the project's signature moss green.
	ColorArbor = Color{86, 125, 70, 255}
)

// RGBA implements the color.Color interface, returning alpha-premultiplied
// 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}
