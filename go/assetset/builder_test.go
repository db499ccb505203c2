package assetset

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/besmile/brand-assets/go/logo"
)

var expectedFiles = map[string]int{
	"icon.png":                    1024,
	"splash-icon.png":             1024,
	"android-icon-foreground.png": 1024,
	"android-icon-background.png": 1024,
	"android-icon-monochrome.png": 1024,
	"favicon.png":                 192,
}

var embeddedBold = []logo.FontSource{{Name: "Go Bold", Data: gobold.TTF}}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func expectedNames() []string {
	var names []string
	for name := range expectedFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err, path)
	return img
}

func rgba8(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestBuildWritesAssetSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	report, err := New(Config{Dir: dir, Fonts: embeddedBold}).Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, dir, report.Dir)
	require.Len(t, report.Assets, len(DefaultSpecs))

	require.Equal(t, expectedNames(), listDir(t, dir))
	for name, size := range expectedFiles {
		img := decode(t, filepath.Join(dir, name))
		require.Equal(t, image.Rect(0, 0, size, size), img.Bounds(), name)
	}

	info, err := os.Stat(filepath.Join(dir, "icon.png"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestBackgroundIsSolid(t *testing.T) {
	dir := t.TempDir()
	specs := []Spec{{Filename: "android-icon-background.png", Size: 1024, Variant: SolidBackground}}
	_, err := New(Config{Dir: dir, Specs: specs}).Build(context.Background())
	require.NoError(t, err)

	img := decode(t, filepath.Join(dir, "android-icon-background.png"))
	want := color.RGBA{R: 230, G: 244, B: 254, A: 255}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			require.Equal(t, want, rgba8(img.At(x, y)))
		}
	}
}

func TestMonochromeIsGray(t *testing.T) {
	b := New(Config{Fonts: embeddedBold})
	img, err := b.Render(Spec{Filename: "mono.png", Size: 256, Variant: GrayscaleDerivative})
	require.NoError(t, err)

	var shades = map[uint8]bool{}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := rgba8(img.At(x, y))
			require.Equal(t, c.R, c.G)
			require.Equal(t, c.G, c.B)
			require.Equal(t, uint8(255), c.A)
			shades[c.R] = true
		}
	}
	require.Greater(t, len(shades), 10)
}

func TestSplashComposite(t *testing.T) {
	b := New(Config{Fonts: embeddedBold})
	img, err := b.Render(Spec{Filename: "splash.png", Size: 1024, Variant: SplashComposite})
	require.NoError(t, err)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// 400 px logo pasted at ((1024-400)/2, (1024-400)*0.35).
	require.Equal(t, white, rgba8(img.At(0, 0)))
	require.Equal(t, white, rgba8(img.At(311, 300)))
	require.Equal(t, logo.PresetShine.Palette[0], rgba8(img.At(312, 218)))
	require.Equal(t, white, rgba8(img.At(312, 217)))
	require.NotEqual(t, white, rgba8(img.At(711, 617)))
	require.Equal(t, white, rgba8(img.At(712, 617)))

	// Product name in black below the logo.
	var dark int
	for y := 618; y < 1024; y++ {
		for x := 0; x < 1024; x++ {
			if c := rgba8(img.At(x, y)); c.R < 40 && c.G < 40 && c.B < 40 {
				dark++
				require.GreaterOrEqual(t, y, 618+int(1024*logo.PresetShine.SplashMarginFraction)-1)
			}
		}
	}
	require.Greater(t, dark, 500)
}

func TestFaviconIsRedrawn(t *testing.T) {
	b := New(Config{Fonts: embeddedBold})
	img, err := b.Render(Spec{Filename: "favicon.png", Size: 192, Variant: GradientLogo})
	require.NoError(t, err)
	center := logo.PresetShine.HighlightCenter(192)
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba8(img.At(center.X, center.Y)))
}

func TestRebuildOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.png"), []byte("stale"), 0o644))
	builder := New(Config{Dir: dir, Fonts: embeddedBold})

	for i := 0; i < 2; i++ {
		_, err := builder.Build(context.Background())
		require.NoError(t, err)
		require.Equal(t, expectedNames(), listDir(t, dir))
	}
	decode(t, filepath.Join(dir, "icon.png"))
}

func TestBuildWithoutFonts(t *testing.T) {
	dir := t.TempDir()
	fonts := []logo.FontSource{
		{Name: "Arial Bold", Path: filepath.Join(dir, "missing", "arialbd.ttf")},
		{Name: "Arial", Path: filepath.Join(dir, "missing", "arial.ttf")},
	}
	_, err := New(Config{Dir: dir, Fonts: fonts}).Build(context.Background())
	require.NoError(t, err)
	for name, size := range expectedFiles {
		img := decode(t, filepath.Join(dir, name))
		require.Equal(t, size, img.Bounds().Dx())
	}
}

func TestBuildFailsWhenDirectoryCannotBeCreated(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	report, err := New(Config{Dir: filepath.Join(blocker, "assets")}).Build(context.Background())
	require.Error(t, err)
	require.Nil(t, report)
}

func TestBuildStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the second name makes the rename fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "splash-icon.png"), 0o755))
	specs := []Spec{
		{Filename: "android-icon-background.png", Size: 16, Variant: SolidBackground},
		{Filename: "splash-icon.png", Size: 16, Variant: SolidBackground},
		{Filename: "favicon.png", Size: 16, Variant: SolidBackground},
	}

	report, err := New(Config{Dir: dir, Specs: specs}).Build(context.Background())
	require.Error(t, err)
	require.Len(t, report.Assets, 1)
	require.Equal(t, []string{"android-icon-background.png", "splash-icon.png"}, listDir(t, dir))
}

func TestRenderRejectsBadSpecs(t *testing.T) {
	b := New(Config{})
	_, err := b.Render(Spec{Filename: "x.png", Size: 0, Variant: GradientLogo})
	require.Error(t, err)
	_, err = b.Render(Spec{Filename: "x.png", Size: 8, Variant: Variant(42)})
	require.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	b := New(Config{})
	require.Equal(t, DefaultDir, b.dir)
	require.Equal(t, logo.PresetShine.Name, b.preset.Name)
	require.Equal(t, DefaultSpecs, b.specs)
	require.Len(t, b.fonts, len(logo.DefaultFonts))
}
