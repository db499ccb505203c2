// Package logo draws the lettered gradient logo: a palette gradient, centered bold
// lettering with a drop shadow, and a small highlight near the top-right of the letters.
package logo

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
)

// Lettering is the text drawn on the logo.
const Lettering = "BS"

const (
	// letterFraction is the lettering font size relative to the canvas.
	letterFraction = 0.55
	// liftFraction raises the lettering above the vertical center.
	liftFraction = 0.05
)

// Preset bundles the visual parameters that differ between logo variants.
type Preset struct {
	Name      string
	Direction Direction
	Palette   Palette
	Highlight HighlightStyle
	// HighlightX and HighlightY place the highlight as fractions of the canvas size.
	HighlightX, HighlightY float64
	// The shadow offset is max(ShadowMin, ShadowFraction*n) pixels.
	ShadowMin      int
	ShadowFraction float64
	ShadowAlpha    uint8
	// SplashTextFraction sizes the product name on the splash screen.
	SplashTextFraction float64
	// SplashMarginFraction separates the splash logo from the product name.
	SplashMarginFraction float64
}

var (
	// PresetGlow is the vertical gradient with a glow cluster highlight.
	PresetGlow = Preset{
		Name:                 "glow",
		Direction:            Vertical,
		Palette:              VerticalPalette,
		Highlight:            GlowCluster,
		HighlightX:           0.70,
		HighlightY:           0.23,
		ShadowMin:            2,
		ShadowAlpha:          80,
		SplashTextFraction:   0.08,
		SplashMarginFraction: 0.06,
	}

	// PresetShine is the diagonal gradient with a diagonal shine highlight.
	PresetShine = Preset{
		Name:                 "shine",
		Direction:            Diagonal,
		Palette:              DiagonalPalette,
		Highlight:            DiagonalShine,
		HighlightX:           0.685,
		HighlightY:           0.26,
		ShadowMin:            2,
		ShadowFraction:       0.003,
		ShadowAlpha:          60,
		SplashTextFraction:   0.07,
		SplashMarginFraction: 0.05,
	}
)

// Presets lists every known preset.
var Presets = []Preset{PresetGlow, PresetShine}

// PresetByName looks up a preset.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}

// HighlightCenter returns the highlight pixel on an n-pixel canvas.
func (p Preset) HighlightCenter(n int) image.Point {
	return image.Pt(int(float64(n)*p.HighlightX), int(float64(n)*p.HighlightY))
}

// Shadow returns the lettering shadow for an n-pixel canvas.
func (p Preset) Shadow(n int) Shadow {
	return Shadow{
		Offset: max(p.ShadowMin, int(float64(n)*p.ShadowFraction)),
		Color:  color.NRGBA{R: 100, G: 100, B: 100, A: p.ShadowAlpha},
	}
}

// Render draws the full logo on a fresh n×n canvas. Every proportion is derived from n,
// so small sizes are redrawn rather than downscaled.
func (p Preset) Render(n int, fonts []FontSource) (*image.RGBA, error) {
	img, err := Gradient(n, p.Palette, p.Direction)
	if err != nil {
		return nil, fmt.Errorf("rendering gradient: %w", err)
	}

	face, fontName := LoadFace(fonts, float64(int(float64(n)*letterFraction)))
	defer face.Close()
	slog.Debug("drawing lettering", "font", fontName, "size", n)

	placement := Center(face, Lettering, img.Bounds(), int(float64(n)*liftFraction))
	DrawShadowed(img, face, Lettering, placement, color.White, p.Shadow(n))
	DrawHighlight(img, p.Highlight, p.HighlightCenter(n), n)
	return img, nil
}
