package logo

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource describes one candidate in a font fallback chain.
// Path is read from disk when set, otherwise Data is used.
type FontSource struct {
	Name string
	Path string
	Data []byte
}

// BuiltinFontName names the fixed-size bitmap face that terminates every chain.
const BuiltinFontName = "basicfont 7x13"

// DefaultFonts is tried in order: bold system fonts, regular system fonts, then the embedded Go fonts.
var DefaultFonts = []FontSource{
	{Name: "DejaVu Sans Bold", Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
	{Name: "Liberation Sans Bold", Path: "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"},
	{Name: "Arial Bold", Path: `C:\Windows\Fonts\arialbd.ttf`},
	{Name: "Arial Bold", Path: "/System/Library/Fonts/Supplemental/Arial Bold.ttf"},
	{Name: "DejaVu Sans", Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
	{Name: "Liberation Sans", Path: "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf"},
	{Name: "Arial", Path: `C:\Windows\Fonts\arial.ttf`},
	{Name: "Arial", Path: "/System/Library/Fonts/Supplemental/Arial.ttf"},
	{Name: "Go Bold", Data: gobold.TTF},
	{Name: "Go Regular", Data: goregular.TTF},
}

// LoadFace returns a face of the given pixel size from the first source that loads,
// along with that source's name. It never fails: when every source is unusable the
// built-in bitmap face is returned and size is ignored.
func LoadFace(sources []FontSource, size float64) (font.Face, string) {
	for _, source := range sources {
		face, err := source.face(size)
		if err != nil {
			slog.Debug("skipping font", "font", source.Name, "path", source.Path, "error", err)
			continue
		}
		return face, source.Name
	}
	return basicfont.Face7x13, BuiltinFontName
}

func (s FontSource) face(size float64) (font.Face, error) {
	data := s.Data
	if s.Path != "" {
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		data = b
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no font data")
	}
	size = max(size, 1)

	// TrueType collections (.ttc) are only understood by opentype.
	if bytes.HasPrefix(data, []byte("ttcf")) {
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing collection: %w", err)
		}
		f, err := collection.Font(0)
		if err != nil {
			return nil, fmt.Errorf("reading first collection font: %w", err)
		}
		return newOpenTypeFace(f, size)
	}

	f, ttErr := truetype.Parse(data)
	if ttErr == nil {
		return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %v; %w", ttErr, err)
	}
	return newOpenTypeFace(otf, size)
}

func newOpenTypeFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return face, nil
}
