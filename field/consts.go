package field

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	ParticleCount      = 80
	ConnectionDistance = 150.0
	MouseRadius        = 200.0

	// MaxConnections caps link lines per particle per frame.
	MaxConnections = 3
	// MaxTrail is the number of past positions kept for foreground particles.
	MaxTrail = 6
	// WrapMargin is how far outside the surface a particle may drift before wrapping.
	WrapMargin = 100.0

	// PointerSentinel is the pointer coordinate used when no pointer is over the surface.
	PointerSentinel = -1000.0

	Foreground = 2
	NumLayers  = 3

	springFactor    = 0.02
	repelFactor     = 0.05
	damping         = 0.92
	scrollSmoothing = 0.1

	orbitScrollBoost  = 30.0
	radiusScrollBoost = 12.0
	sizePulse         = 5.0
	opacityPulse      = 4.0

	trailMinVelocity = 0.003
	trailMaxAlpha    = 0.12
	trailWidthScale  = 0.6

	connectionAlpha = 0.1
	connectionWidth = 0.4

	glowScale           = 2.5
	foregroundGlowExtra = 2.0
	glowAlpha           = 0.15
)

var (
	LayerScrollSpeed = [NumLayers]float64{0.3, 0.7, 1.4}
	LayerSize        = [NumLayers]float64{0.7, 1.0, 1.6}
	LayerOpacity     = [NumLayers]float64{0.15, 0.3, 0.5}
)

// PaletteHex is the cool blue/teal palette particles pick their colour from.
var PaletteHex = [...]string{"#6bb8d0", "#8ccade", "#4a8fa8", "#a0d4e4", "#5ba0b8"}

// Palette holds PaletteHex decoded once at start-up.
var Palette = mustPalette(PaletteHex[:])

// AmbientStops describe the soft glow painted behind all particles.
var AmbientStops = []GradientStop{
	{Offset: 0, Color: color.NRGBA{R: 107, G: 184, B: 208, A: 255}, Alpha: 0.035},
	{Offset: 0.5, Color: color.NRGBA{R: 74, G: 143, B: 168, A: 255}, Alpha: 0.015},
	{Offset: 1, Color: color.NRGBA{A: 255}, Alpha: 0},
}

func mustPalette(hex []string) []color.NRGBA {
	out := make([]color.NRGBA, 0, len(hex))
	for _, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// ParseHex decodes "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("field: parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
