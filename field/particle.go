package field

import (
	"image/color"
	"math"
)

// Particle is one animated point of the field.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Radius, BaseRadius   float64
	Opacity, BaseOpacity float64
	Color                color.NRGBA

	// Connections counts the link lines drawn for this particle in the current frame.
	Connections int
	Layer       int

	AnchorX, AnchorY float64

	OrbitRadius float64
	OrbitSpeed  float64
	OrbitAngle  float64

	Trail []Point
}

// pickLayer maps one uniform draw to background 30%, mid 30%, foreground 40%.
func pickLayer(u float64) int {
	switch {
	case u < 0.3:
		return 0
	case u < 0.6:
		return 1
	default:
		return Foreground
	}
}

func createParticle(rng Rand, width, height float64) Particle {
	layer := pickLayer(rng.Float64())
	baseRadius := (rng.Float64()*1.5 + 0.5) * LayerSize[layer]
	baseOpacity := (rng.Float64()*0.3 + 0.1) * (LayerOpacity[layer] / 0.3)
	x := rng.Float64() * width
	y := rng.Float64() * height

	p := Particle{
		X:           x,
		Y:           y,
		VX:          (rng.Float64() - 0.5) * 0.3,
		VY:          (rng.Float64() - 0.5) * 0.3,
		Radius:      baseRadius,
		BaseRadius:  baseRadius,
		Opacity:     baseOpacity,
		BaseOpacity: baseOpacity,
		Layer:       layer,
		AnchorX:     x,
		AnchorY:     y,
	}

	idx := int(rng.Float64() * float64(len(Palette)))
	if idx >= len(Palette) {
		idx = len(Palette) - 1
	}
	p.Color = Palette[idx]

	p.OrbitRadius = rng.Float64()*30 + 10
	p.OrbitSpeed = rng.Float64()*0.005 + 0.002
	if layer == Foreground {
		p.OrbitSpeed *= 1.5
		p.Trail = make([]Point, 0, MaxTrail+1)
	}
	p.OrbitAngle = rng.Float64() * math.Pi * 2

	return p
}

// pushTrail appends the current position and drops the oldest beyond MaxTrail.
func (p *Particle) pushTrail() {
	p.Trail = append(p.Trail, Point{X: p.X, Y: p.Y})
	if len(p.Trail) > MaxTrail {
		copy(p.Trail, p.Trail[1:])
		p.Trail = p.Trail[:MaxTrail]
	}
}
