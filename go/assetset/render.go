package assetset

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/besmile/brand-assets/go/logo"
)

// ProductName is written under the logo on the splash screen.
const ProductName = "BeSmile AI"

var (
	// BackgroundColor fills the adaptive icon background layer.
	BackgroundColor = logo.MustHex("#E6F4FE")
	splashColor     = color.White
	productColor    = color.Black
)

// The splash logo is 400 px on a 1024 px splash, sitting in the upper-middle area.
const (
	splashLogoFraction = 400.0 / 1024.0
	splashLogoDrop     = 0.35
)

// Render draws one asset in memory.
func (b *Builder) Render(spec Spec) (image.Image, error) {
	if spec.Size < 1 {
		return nil, fmt.Errorf("%s: invalid size %d", spec.Filename, spec.Size)
	}
	switch spec.Variant {
	case GradientLogo:
		return b.preset.Render(spec.Size, b.fonts)
	case SplashComposite:
		return b.renderSplash(spec.Size)
	case SolidBackground:
		return imaging.New(spec.Size, spec.Size, BackgroundColor), nil
	case GrayscaleDerivative:
		img, err := b.preset.Render(spec.Size, b.fonts)
		if err != nil {
			return nil, err
		}
		return imaging.Grayscale(img), nil
	default:
		return nil, fmt.Errorf("%s: unknown variant %v", spec.Filename, spec.Variant)
	}
}

func (b *Builder) renderSplash(size int) (image.Image, error) {
	logoSize := max(1, int(float64(size)*splashLogoFraction+0.5))
	mark, err := b.preset.Render(logoSize, b.fonts)
	if err != nil {
		return nil, fmt.Errorf("rendering splash logo: %w", err)
	}

	logoPos := image.Pt((size-logoSize)/2, int(float64(size-logoSize)*splashLogoDrop))
	canvas := imaging.Overlay(imaging.New(size, size, splashColor), mark, logoPos, 1)

	face, _ := logo.LoadFace(b.fonts, float64(int(float64(size)*b.preset.SplashTextFraction)))
	defer face.Close()
	top := logoPos.Y + logoSize + int(float64(size)*b.preset.SplashMarginFraction)
	placement := logo.CenterX(face, ProductName, canvas.Bounds(), top)
	logo.DrawText(canvas, face, ProductName, placement, productColor)
	return canvas, nil
}
