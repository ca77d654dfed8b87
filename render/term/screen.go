// Package term renders a field into terminal cells with tcell. Each cell stands for a
// block of virtual pixels so the field keeps its pixel-based distances.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/particlefield/common"
	"github.com/milk9111/particlefield/field"
)

// Canvas is the part of tcell.Screen the renderer writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

const dot = '•'

type cell struct {
	bg    colorful.Color
	fg    colorful.Color
	glyph rune
}

// Screen accumulates a frame in memory and writes it to a Canvas on Present.
type Screen struct {
	canvas       Canvas
	cellW, cellH float64
	gain         float64
	background   colorful.Color

	cols, rows int
	cells      []cell
}

func NewScreen(canvas Canvas, cellW, cellH, gain float64, background color.NRGBA) *Screen {
	return &Screen{
		canvas:     canvas,
		cellW:      cellW,
		cellH:      cellH,
		gain:       gain,
		background: toColorful(background),
	}
}

// Resize sets the grid size in cells.
func (s *Screen) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
	s.Clear()
}

// PixelSize is the virtual surface size the field should be initialized with.
func (s *Screen) PixelSize() (float64, float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// CellAt maps a virtual pixel to its cell.
func (s *Screen) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// CellCenter maps a cell to the virtual pixel at its centre.
func (s *Screen) CellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * s.cellW, (float64(cy) + 0.5) * s.cellH
}

func (s *Screen) SetBackground(c color.NRGBA) {
	s.background = toColorful(c)
}

func (s *Screen) SetGain(gain float64) {
	s.gain = gain
}

// Color returns the accumulated background colour of a cell.
func (s *Screen) Color(cx, cy int) color.NRGBA {
	c, ok := s.at(cx, cy)
	if !ok {
		return color.NRGBA{}
	}
	r, g, b := c.bg.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Glyph returns the rune a cell will show.
func (s *Screen) Glyph(cx, cy int) rune {
	c, ok := s.at(cx, cy)
	if !ok {
		return 0
	}
	return c.glyph
}

func (s *Screen) at(cx, cy int) (*cell, bool) {
	if cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return nil, false
	}
	return &s.cells[cy*s.cols+cx], true
}

func (s *Screen) blend(cx, cy int, c colorful.Color, alpha float64) {
	p, ok := s.at(cx, cy)
	if !ok || alpha <= 0 {
		return
	}
	p.bg = p.bg.BlendRgb(c, common.Clamp(alpha*s.gain, 0, 1))
}

func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{bg: s.background, glyph: ' '}
	}
}

func (s *Screen) FillRadialGradient(cx, cy, r float64, stops []field.GradientStop) {
	if r <= 0 {
		return
	}
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			px, py := s.CellCenter(x, y)
			c, a := field.SampleGradient(stops, common.Dist(cx, cy, px, py)/r)
			s.blend(x, y, toColorful(c), a)
		}
	}
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64) {
	cc := toColorful(c)
	seen := make(map[[2]int]struct{})
	steps := int(math.Ceil(common.Dist(x0, y0, x1, y1)/(min(s.cellW, s.cellH)/2))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx, cy := s.CellAt(common.Lerp(x0, x1, t), common.Lerp(y0, y1, t))
		k := [2]int{cx, cy}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		s.blend(cx, cy, cc, alpha)
	}
}

func (s *Screen) StrokePolyline(pts []field.Point, width float64, c color.NRGBA, alpha float64) {
	for i := 1; i < len(pts); i++ {
		s.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, c, alpha)
	}
}

// FillCircle marks the cell under the centre with a dot and tints any other cell whose
// centre the circle covers.
func (s *Screen) FillCircle(x, y, r float64, c color.NRGBA, alpha float64) {
	cc := toColorful(c)
	hx, hy := s.CellAt(x, y)
	if p, ok := s.at(hx, hy); ok {
		p.glyph = dot
		p.fg = p.bg.BlendRgb(cc, common.Clamp(alpha*s.gain*2, 0, 1))
	}
	s.eachCellWithin(x, y, r, func(cx, cy int, _ float64) {
		if cx != hx || cy != hy {
			s.blend(cx, cy, cc, alpha)
		}
	})
}

func (s *Screen) FillGlow(x, y, r float64, c color.NRGBA, alpha float64) {
	cc := toColorful(c)
	s.eachCellWithin(x, y, r, func(cx, cy int, d float64) {
		s.blend(cx, cy, cc, alpha*(1-d/r))
	})
}

func (s *Screen) eachCellWithin(x, y, r float64, fn func(cx, cy int, d float64)) {
	if r <= 0 {
		return
	}
	x0, y0 := s.CellAt(x-r, y-r)
	x1, y1 := s.CellAt(x+r, y+r)
	for cy := max(y0, 0); cy <= min(y1, s.rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, s.cols-1); cx++ {
			px, py := s.CellCenter(cx, cy)
			if d := common.Dist(x, y, px, py); d < r {
				fn(cx, cy, d)
			}
		}
	}
}

// Label writes text over the frame starting at a cell. It must be called after the
// field has drawn and before Present.
func (s *Screen) Label(cx, cy int, text string, c color.NRGBA) {
	fg := toColorful(c)
	for _, r := range text {
		if p, ok := s.at(cx, cy); ok {
			p.glyph = r
			p.fg = fg
		}
		cx++
	}
}

// Present writes the frame to the canvas.
func (s *Screen) Present() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			c := s.cells[y*s.cols+x]
			style := tcell.StyleDefault.Background(toTcell(c.bg)).Foreground(toTcell(c.fg))
			s.canvas.SetContent(x, y, c.glyph, nil, style)
		}
	}
	s.canvas.Show()
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var _ field.Surface = (*Screen)(nil)
