package field

import "image/color"

type lineCall struct {
	x0, y0, x1, y1 float64
	width          float64
	c              color.NRGBA
	alpha          float64
}

type circleCall struct {
	x, y, r float64
	c       color.NRGBA
	alpha   float64
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	clears    int
	gradients int
	lines     []lineCall
	polylines [][]Point
	polyAlpha []float64
	circles   []circleCall
	glows     []circleCall
}

func (r *recorder) Clear() {
	r.clears++
	r.lines = r.lines[:0]
	r.polylines = r.polylines[:0]
	r.polyAlpha = r.polyAlpha[:0]
	r.circles = r.circles[:0]
	r.glows = r.glows[:0]
}

func (r *recorder) FillRadialGradient(cx, cy, radius float64, stops []GradientStop) {
	r.gradients++
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64) {
	r.lines = append(r.lines, lineCall{x0: x0, y0: y0, x1: x1, y1: y1, width: width, c: c, alpha: alpha})
}

func (r *recorder) StrokePolyline(pts []Point, width float64, c color.NRGBA, alpha float64) {
	r.polylines = append(r.polylines, append([]Point(nil), pts...))
	r.polyAlpha = append(r.polyAlpha, alpha)
}

func (r *recorder) FillCircle(x, y, radius float64, c color.NRGBA, alpha float64) {
	r.circles = append(r.circles, circleCall{x: x, y: y, r: radius, c: c, alpha: alpha})
}

func (r *recorder) FillGlow(x, y, radius float64, c color.NRGBA, alpha float64) {
	r.glows = append(r.glows, circleCall{x: x, y: y, r: radius, c: c, alpha: alpha})
}
