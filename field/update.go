package field

import (
	"math"

	"github.com/milk9111/particlefield/common"
)

// Update advances the simulation by one frame.
func (f *Field) Update() {
	f.scrollVelocity = f.scrollProgress - f.lastScrollProgress
	f.lastScrollProgress = common.Lerp(f.lastScrollProgress, f.scrollProgress, scrollSmoothing)

	absVel := math.Abs(f.scrollVelocity)
	for i := range f.particles {
		f.step(&f.particles[i], absVel)
	}
}

func (f *Field) step(p *Particle, absVel float64) {
	layerSpeed := LayerScrollSpeed[p.Layer]
	scrollOffset := f.scrollProgress * f.height * layerSpeed

	p.OrbitAngle += p.OrbitSpeed * (1 + absVel*orbitScrollBoost)
	orbit := p.OrbitRadius * (1 + absVel*radiusScrollBoost)

	targetX := p.AnchorX + math.Cos(p.OrbitAngle)*orbit
	targetY := p.AnchorY + math.Sin(p.OrbitAngle)*orbit - scrollOffset

	p.VX += (targetX - p.X) * springFactor
	p.VY += (targetY - p.Y) * springFactor

	dx := p.X - f.pointer.X
	dy := p.Y - f.pointer.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < MouseRadius && dist > 0 {
		force := (MouseRadius - dist) / MouseRadius * repelFactor * layerSpeed
		p.VX += dx / dist * force
		p.VY += dy / dist * force
	}

	p.VX *= damping
	p.VY *= damping

	p.X += p.VX
	p.Y += p.VY

	f.wrap(p)

	p.Radius = p.BaseRadius * (1 + absVel*sizePulse*layerSpeed)
	p.Opacity = p.BaseOpacity * (1 + absVel*opacityPulse)

	if p.Layer == Foreground {
		p.pushTrail()
	}
}

// wrap teleports particles that drift past the margin. A vertical wrap moves the anchor
// by the same span so the orbit continues around the new position.
func (f *Field) wrap(p *Particle) {
	span := f.height + WrapMargin*2
	if p.Y < -WrapMargin {
		p.Y = f.height + WrapMargin
		p.AnchorY += span
	}
	if p.Y > f.height+WrapMargin {
		p.Y = -WrapMargin
		p.AnchorY -= span
	}
	if p.X < -WrapMargin {
		p.X = f.width + WrapMargin
	}
	if p.X > f.width+WrapMargin {
		p.X = -WrapMargin
	}
}
