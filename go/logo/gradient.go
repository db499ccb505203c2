package logo

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Direction selects how gradient progress is derived from a pixel position.
type Direction int

const (
	// Vertical progresses from the top row to the bottom row.
	Vertical Direction = iota
	// Diagonal progresses from the top-left corner to the bottom-right corner.
	Diagonal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Palette is an ordered list of color stops. Stop order is the spatial order of the gradient.
type Palette []color.RGBA

var (
	// VerticalPalette runs purple, pink, red, orange, yellow.
	VerticalPalette = Palette{
		MustHex("#9333EA"),
		MustHex("#EC4899"),
		MustHex("#EF4444"),
		MustHex("#F97316"),
		MustHex("#EAB308"),
	}

	// DiagonalPalette runs purple, magenta, red, orange, yellow.
	DiagonalPalette = Palette{
		MustHex("#9333EA"),
		MustHex("#DB2777"),
		MustHex("#EF4444"),
		MustHex("#F97316"),
		MustHex("#FACC15"),
	}
)

// At returns the opaque color at the given progress. Progress is clamped to [0,1].
func (p Palette) At(progress float64) color.RGBA {
	if progress < 0 || math.IsNaN(progress) {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	last := len(p) - 1
	idx := progress * float64(last)
	lower := int(math.Floor(idx))
	if lower > last {
		lower = last
	}
	upper := min(lower+1, last)
	t := idx - float64(lower)

	from, to := p[lower], p[upper]
	return color.RGBA{
		R: lerp(from.R, to.R, t),
		G: lerp(from.G, to.G, t),
		B: lerp(from.B, to.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	return uint8(max(0, min(255, v)))
}

// Progress returns the normalized gradient position of pixel (x, y) on an n×n canvas.
func Progress(direction Direction, x, y, n int) float64 {
	if n <= 1 {
		return 0
	}
	span := float64(n - 1)
	switch direction {
	case Diagonal:
		return float64(x+y) / (2 * span)
	default:
		return float64(y) / span
	}
}

// Gradient renders an n×n opaque canvas filled with the palette along direction.
func Gradient(n int, palette Palette, direction Direction) (*image.RGBA, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid canvas size %d", n)
	}
	if len(palette) < 2 {
		return nil, fmt.Errorf("palette needs at least 2 stops, got %d", len(palette))
	}

	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := palette.At(Progress(direction, x, y, n))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img, nil
}
