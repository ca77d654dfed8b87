package field

import "math"

// Draw renders the current frame: ambient glow, connections, then particles from the
// background layer forward.
func (f *Field) Draw(s Surface) {
	s.Clear()
	s.FillRadialGradient(f.width/2, f.height*0.3, f.width*0.7, AmbientStops)

	f.drawConnections(s)

	absVel := math.Abs(f.scrollVelocity)
	for layer := 0; layer < NumLayers; layer++ {
		for i := range f.particles {
			if f.particles[i].Layer == layer {
				f.drawParticle(s, &f.particles[i], absVel)
			}
		}
	}
}

func (f *Field) drawConnections(s Surface) {
	ps := f.particles
	for i := range ps {
		ps[i].Connections = 0
	}

	links := 0
	f.scan.eachPair(ps, func(i, j int) {
		a, b := &ps[i], &ps[j]
		if a.Layer-b.Layer > 1 || b.Layer-a.Layer > 1 {
			return
		}
		if a.Connections >= MaxConnections || b.Connections >= MaxConnections {
			return
		}
		dx := a.X - b.X
		dy := a.Y - b.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist >= ConnectionDistance {
			return
		}

		alpha := (1 - dist/ConnectionDistance) * connectionAlpha
		s.StrokeLine(a.X, a.Y, b.X, b.Y, connectionWidth, a.Color, alpha)
		a.Connections++
		b.Connections++
		links++
	})
	f.lastLinks = links
}

func (f *Field) drawParticle(s Surface, p *Particle, absVel float64) {
	if p.Layer == Foreground && len(p.Trail) > 1 && absVel > trailMinVelocity {
		pts := make([]Point, 0, len(p.Trail)+1)
		pts = append(pts, p.Trail...)
		pts = append(pts, Point{X: p.X, Y: p.Y})
		s.StrokePolyline(pts, p.Radius*trailWidthScale, p.Color, math.Min(absVel*2, trailMaxAlpha))
	}

	s.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Opacity)

	glow := glowScale
	if p.Layer == Foreground {
		glow += foregroundGlowExtra
	}
	s.FillGlow(p.X, p.Y, p.Radius*glow, p.Color, p.Opacity*glowAlpha)
}
