package logo

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Placement is where a run of text lands on a canvas.
type Placement struct {
	// Dot is the pen origin on the baseline.
	Dot fixed.Point26_6
	// Box is the ink bounding box in canvas coordinates.
	Box image.Rectangle
}

// Shadow is a translucent copy of the text painted before the text itself.
type Shadow struct {
	Offset int
	Color  color.NRGBA
}

// Measure returns the ink bounds of text relative to a pen origin at (0, 0).
func Measure(face font.Face, text string) image.Rectangle {
	b, _ := font.BoundString(face, text)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// PlaceAt positions text so the top-left corner of its ink box is at pt.
func PlaceAt(face font.Face, text string, pt image.Point) Placement {
	ink := Measure(face, text)
	shift := pt.Sub(ink.Min)
	return Placement{
		Dot: fixed.P(shift.X, shift.Y),
		Box: ink.Add(shift),
	}
}

// Center positions text in the middle of bounds, raised by lift pixels.
func Center(face font.Face, text string, bounds image.Rectangle, lift int) Placement {
	ink := Measure(face, text)
	x := bounds.Min.X + (bounds.Dx()-ink.Dx())/2
	y := bounds.Min.Y + (bounds.Dy()-ink.Dy())/2 - lift
	return PlaceAt(face, text, image.Pt(x, y))
}

// CenterX positions text horizontally centered in bounds with its ink top at top.
func CenterX(face font.Face, text string, bounds image.Rectangle, top int) Placement {
	ink := Measure(face, text)
	x := bounds.Min.X + (bounds.Dx()-ink.Dx())/2
	return PlaceAt(face, text, image.Pt(x, top))
}

// DrawText composites text over dst at p.
func DrawText(dst draw.Image, face font.Face, text string, p Placement, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  p.Dot,
	}
	d.DrawString(text)
}

// DrawShadowed paints the shadow shifted down and right, then the text on top.
func DrawShadowed(dst draw.Image, face font.Face, text string, p Placement, c color.Color, shadow Shadow) {
	offset := fixed.P(shadow.Offset, shadow.Offset)
	DrawText(dst, face, text, Placement{Dot: p.Dot.Add(offset), Box: p.Box.Add(image.Pt(shadow.Offset, shadow.Offset))}, shadow.Color)
	DrawText(dst, face, text, p, c)
}
