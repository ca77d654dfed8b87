package field

import "image/color"

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// GradientStop is one colour stop of a radial gradient. Alpha is applied on top of Color.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
	Alpha  float64
}

// Surface is the 2D drawing target a Field renders to. Colours are opaque; alpha is
// passed separately the way a canvas global alpha works.
type Surface interface {
	Clear()
	// FillRadialGradient paints a gradient centred at (cx, cy) that reaches its last
	// stop at radius r.
	FillRadialGradient(cx, cy, r float64, stops []GradientStop)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64)
	// StrokePolyline strokes a connected path with round caps.
	StrokePolyline(pts []Point, width float64, c color.NRGBA, alpha float64)
	FillCircle(x, y, r float64, c color.NRGBA, alpha float64)
	// FillGlow paints a disc fading from c at the centre to transparent at r.
	FillGlow(x, y, r float64, c color.NRGBA, alpha float64)
}

// Rand is the random source particles are created from.
type Rand interface {
	Float64() float64
}
