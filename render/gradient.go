package render

import (
	"image"
	"image/color"
	"math"

	"github.com/milk9111/particlefield/common"
	"github.com/milk9111/particlefield/field"
)

// BakeRadial renders stops into a size×size disc. Alpha is normalized to the strongest
// stop to keep precision for faint gradients; the peak is returned so the caller can
// scale it back when drawing.
func BakeRadial(stops []field.GradientStop, size int) (*image.NRGBA, float64) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	peak := 0.0
	for _, s := range stops {
		peak = max(peak, s.Alpha)
	}
	if peak <= 0 || size <= 0 {
		return img, 0
	}

	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := common.Dist(half, half, float64(x)+0.5, float64(y)+0.5)
			c, a := field.SampleGradient(stops, d/half)
			c.A = uint8(math.Round(common.Clamp(a/peak, 0, 1) * 255))
			img.SetNRGBA(x, y, c)
		}
	}
	return img, peak
}

// GlowStops fade a white core to transparent; the particle colour is applied at draw time.
var GlowStops = []field.GradientStop{
	{Offset: 0, Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, Alpha: 1},
	{Offset: 1, Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, Alpha: 0},
}
