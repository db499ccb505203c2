package logo

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses a "#RRGGBB" or "#RRGGBBAA" string. The leading '#' is optional.
func ParseHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c := color.RGBA{A: 255}
	channels := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i*2 < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parsing channel %d of %q: %w", i, hex, err)
		}
		*channels[i] = uint8(v)
	}
	return c, nil
}

// MustHex is ParseHex for package-level color tables.
func MustHex(hex string) color.RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
