package logo

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// HighlightStyle selects the decorative marker drawn near the top-right of the lettering.
type HighlightStyle int

const (
	// GlowCluster is a filled core ellipse with fading ring outlines.
	GlowCluster HighlightStyle = iota
	// DiagonalShine is a pair of crossed diagonal strokes.
	DiagonalShine
)

func (s HighlightStyle) String() string {
	switch s {
	case GlowCluster:
		return "glow-cluster"
	case DiagonalShine:
		return "diagonal-shine"
	default:
		return fmt.Sprintf("HighlightStyle(%d)", int(s))
	}
}

const glowRings = 3

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// DrawHighlight overlays the highlight centered on pixel center of an n-pixel canvas.
// Every shape is composited over dst without reading it first.
func DrawHighlight(dst draw.Image, style HighlightStyle, center image.Point, n int) {
	// Shapes are traced around the middle of the center pixel.
	cx, cy := float64(center.X)+0.5, float64(center.Y)+0.5
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	switch style {
	case DiagonalShine:
		long := float64(max(15, int(float64(n)*0.045)))
		short := float64(max(8, int(float64(n)*0.025)))
		width := max(1, int(float64(n)*0.005))
		fill(dst, white, func(p *pen) {
			p.stroke(cx+long, cy-long, cx-long, cy+long, float64(width))
		})
		fill(dst, color.NRGBA{R: 255, G: 255, B: 255, A: 220}, func(p *pen) {
			p.stroke(cx-short, cy-short, cx+short, cy+short, float64(max(1, width-1)))
		})
		dot := float64(max(1, int(float64(n)*0.004)))
		fill(dst, white, func(p *pen) { p.ellipse(cx, cy, dot+0.5, dot+0.5, false) })

	default:
		rx := float64(max(4, int(float64(n)*0.035)))
		ry := float64(max(5, int(float64(n)*0.055)))
		fill(dst, white, func(p *pen) { p.ellipse(cx, cy, rx+0.5, ry+0.5, false) })
		for i := 0; i < glowRings; i++ {
			alpha := uint8(100 - 25*i)
			grow := float64(3 + i + 1)
			fill(dst, color.NRGBA{R: 255, G: 255, B: 255, A: alpha}, func(p *pen) {
				p.ring(cx, cy, rx+grow, ry+grow)
			})
		}
		dot := float64(max(2, int(float64(n)*0.005)))
		fill(dst, white, func(p *pen) { p.ellipse(cx, cy, dot+0.5, dot+0.5, false) })
	}
}

// pen traces paths in canvas coordinates onto a rasterizer covering the canvas.
type pen struct {
	z      *vector.Rasterizer
	ox, oy float64
}

func fill(dst draw.Image, c color.Color, trace func(p *pen)) {
	b := dst.Bounds()
	p := &pen{
		z:  vector.NewRasterizer(b.Dx(), b.Dy()),
		ox: float64(b.Min.X),
		oy: float64(b.Min.Y),
	}
	trace(p)
	p.z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func (p *pen) pt(x, y float64) (float32, float32) {
	return float32(x - p.ox), float32(y - p.oy)
}

func (p *pen) moveTo(x, y float64) { p.z.MoveTo(p.pt(x, y)) }

func (p *pen) lineTo(x, y float64) { p.z.LineTo(p.pt(x, y)) }

func (p *pen) cubeTo(x1, y1, x2, y2, x, y float64) {
	ax, ay := p.pt(x1, y1)
	bx, by := p.pt(x2, y2)
	cx, cy := p.pt(x, y)
	p.z.CubeTo(ax, ay, bx, by, cx, cy)
}

// ellipse traces a closed ellipse. reverse flips the winding so it can cut a hole.
func (p *pen) ellipse(cx, cy, rx, ry float64, reverse bool) {
	kx, ky := rx*kappa, ry*kappa
	p.moveTo(cx+rx, cy)
	if reverse {
		p.cubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		p.cubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		p.cubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		p.cubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	} else {
		p.cubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		p.cubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		p.cubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		p.cubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	}
	p.z.ClosePath()
}

// ring traces a one pixel wide ellipse outline with radii (rx, ry) measured to pixel centers.
func (p *pen) ring(cx, cy, rx, ry float64) {
	p.ellipse(cx, cy, rx+0.5, ry+0.5, false)
	p.ellipse(cx, cy, rx-0.5, ry-0.5, true)
}

// stroke traces a straight segment of the given width with square-cut ends.
func (p *pen) stroke(x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	p.moveTo(x0+nx, y0+ny)
	p.lineTo(x1+nx, y1+ny)
	p.lineTo(x1-nx, y1-ny)
	p.lineTo(x0-nx, y0-ny)
	p.z.ClosePath()
}
