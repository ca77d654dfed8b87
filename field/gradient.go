package field

import (
	"image/color"
	"math"

	"github.com/milk9111/particlefield/common"
)

// SampleGradient evaluates a gradient at offset t. Colours are interpolated premultiplied,
// so fading to a transparent stop does not darken the colour.
func SampleGradient(stops []GradientStop, t float64) (color.NRGBA, float64) {
	if len(stops) == 0 {
		return color.NRGBA{}, 0
	}
	if t <= stops[0].Offset {
		return stops[0].Color, stops[0].Alpha
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color, last.Alpha
	}

	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		k := 0.0
		if span > 0 {
			k = (t - a.Offset) / span
		}
		alpha := common.Lerp(a.Alpha, b.Alpha, k)
		if alpha <= 0 {
			return b.Color, 0
		}
		mix := func(ca, cb uint8) uint8 {
			pre := common.Lerp(float64(ca)*a.Alpha, float64(cb)*b.Alpha, k)
			return uint8(math.Round(common.Clamp(pre/alpha, 0, 255)))
		}
		c := color.NRGBA{
			R: mix(a.Color.R, b.Color.R),
			G: mix(a.Color.G, b.Color.G),
			B: mix(a.Color.B, b.Color.B),
			A: 0xff,
		}
		return c, alpha
	}
	return last.Color, last.Alpha
}
