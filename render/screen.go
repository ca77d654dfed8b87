// Package render draws a field onto an ebiten image.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/particlefield/field"
)

// Screen adapts an *ebiten.Image to field.Surface. Point it at the frame's target with
// Target before drawing.
type Screen struct {
	dst        *ebiten.Image
	background color.NRGBA
}

func NewScreen(background color.NRGBA) *Screen {
	return &Screen{background: background}
}

func (s *Screen) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) SetBackground(c color.NRGBA) {
	s.background = c
}

// Clear fills with the page background; the canvas itself is transparent over it.
func (s *Screen) Clear() {
	s.dst.Fill(s.background)
}

func (s *Screen) FillRadialGradient(cx, cy, r float64, stops []field.GradientStop) {
	tex := radialTexture(stops)
	s.drawDisc(tex, cx, cy, r, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 1)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), withAlpha(c, alpha), true)
}

// StrokePolyline draws each segment and caps the joints with discs to get round ends.
func (s *Screen) StrokePolyline(pts []field.Point, width float64, c color.NRGBA, alpha float64) {
	if len(pts) < 2 {
		return
	}
	clr := withAlpha(c, alpha)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
	first, last := pts[0], pts[len(pts)-1]
	vector.FillCircle(s.dst, float32(first.X), float32(first.Y), float32(width/2), clr, true)
	vector.FillCircle(s.dst, float32(last.X), float32(last.Y), float32(width/2), clr, true)
}

func (s *Screen) FillCircle(x, y, r float64, c color.NRGBA, alpha float64) {
	vector.FillCircle(s.dst, float32(x), float32(y), float32(r), withAlpha(c, alpha), true)
}

func (s *Screen) FillGlow(x, y, r float64, c color.NRGBA, alpha float64) {
	s.drawDisc(radialTexture(GlowStops), x, y, r, c, alpha)
}

func (s *Screen) drawDisc(tex texture, x, y, r float64, c color.NRGBA, alpha float64) {
	if tex.peak <= 0 || r <= 0 {
		return
	}
	size := float64(tex.img.Bounds().Dx())
	scale := 2 * r / size

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha * tex.peak))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(tex.img, op)
}

// withAlpha keeps 16 bits per channel so faint lines don't round to zero.
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA64 {
	a := uint16(min(max(alpha, 0), 1) * 0xffff)
	return color.NRGBA64{
		R: uint16(c.R) * 0x101,
		G: uint16(c.G) * 0x101,
		B: uint16(c.B) * 0x101,
		A: a,
	}
}

var _ field.Surface = (*Screen)(nil)
