package arbor

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer is the draw contract the tree consumes. A concrete backend begins
// a frame with a clear color, accepts primitive draw calls issued during the
// tree's front-to-back traversal, and presents on End. The tree guarantees
// only the traversal order; what the primitives mean is entirely the
// backend's business.
type Renderer interface {
	// Begin starts a frame, clearing the drawing surface to the given color.
	Begin(clear Color)
	// End finishes the frame and presents it.
	End()
	// DrawRectangle fills an axis-aligned rectangle.
	DrawRectangle(x, y, width, height float64, color Color)
	// DrawText draws a string at the given position and font size.
	DrawText(x, y float64, str string, size float64, color Color)
}

// ebitenRenderer implements Renderer on an Ebitengine image target. The
// target is the screen image of the current frame, set by the window before
// Begin.
type ebitenRenderer struct {
	target     *ebiten.Image
	whitePixel *ebiten.Image
	fontSource *text.GoTextFaceSource
}

func newEbitenRenderer() (*ebitenRenderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("arbor: parse default font: %w", err)
	}
	whitePixel := ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite)
	return &ebitenRenderer{whitePixel: whitePixel, fontSource: source}, nil
}

func (r *ebitenRenderer) setTarget(img *ebiten.Image) {
	r.target = img
}

func (r *ebitenRenderer) Begin(clear Color) {
	r.target.Fill(clear)
}

func (r *ebitenRenderer) End() {
	// Presentation is handled by the Ebitengine frame loop.
}

func (r *ebitenRenderer) DrawRectangle(x, y, width, height float64, color Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color)
	r.target.DrawImage(r.whitePixel, op)
}

func (r *ebitenRenderer) DrawText(x, y float64, str string, size float64, color Color) {
	face := &text.GoTextFace{Source: r.fontSource, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color)
	text.Draw(r.target, str, face, op)
}
