package assetset

import "fmt"

// Variant is the visual treatment of one asset.
type Variant int

const (
	// GradientLogo is the full lettered logo.
	GradientLogo Variant = iota
	// SplashComposite is the logo and product name on a white canvas.
	SplashComposite
	// SolidBackground is a flat fill of BackgroundColor.
	SolidBackground
	// GrayscaleDerivative is the logo reduced to luminance, fully opaque.
	GrayscaleDerivative
)

func (v Variant) String() string {
	switch v {
	case GradientLogo:
		return "gradient-logo"
	case SplashComposite:
		return "splash-composite"
	case SolidBackground:
		return "solid-background"
	case GrayscaleDerivative:
		return "grayscale-derivative"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Spec is one output file.
type Spec struct {
	Filename string
	Size     int
	Variant  Variant
}

// DefaultSpecs is the app icon set, in generation order.
var DefaultSpecs = []Spec{
	{Filename: "icon.png", Size: 1024, Variant: GradientLogo},
	{Filename: "splash-icon.png", Size: 1024, Variant: SplashComposite},
	{Filename: "android-icon-foreground.png", Size: 1024, Variant: GradientLogo},
	{Filename: "android-icon-background.png", Size: 1024, Variant: SolidBackground},
	{Filename: "android-icon-monochrome.png", Size: 1024, Variant: GrayscaleDerivative},
	{Filename: "favicon.png", Size: 192, Variant: GradientLogo},
}
