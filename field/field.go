// Package field implements the animated particle background: a fixed set of particles
// orbiting anchors, pushed around by scroll parallax and the pointer, and rendered with
// connection lines and soft glows onto a Surface.
package field

import "github.com/milk9111/particlefield/common"

// Field owns all animation state. It is not safe for concurrent use; hosts call its
// methods from a single goroutine.
type Field struct {
	width, height float64
	particles     []Particle

	rng Rand

	pointer Point

	scrollProgress     float64
	lastScrollProgress float64
	scrollVelocity     float64

	scan      connectionScanner
	lastLinks int
}

type Option func(*Field)

// WithGridScan makes the connection pass use a spatial grid instead of the pairwise scan.
// Both produce identical links.
func WithGridScan() Option {
	return func(f *Field) {
		f.scan = NewConnectionGrid(ConnectionDistance)
	}
}

func New(rng Rand, opts ...Option) *Field {
	f := &Field{
		rng:     rng,
		pointer: Point{X: PointerSentinel, Y: PointerSentinel},
		scan:    pairScan{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Init sizes the field to the viewport and creates a fresh particle set.
// Calling it again discards the previous set.
func (f *Field) Init(width, height float64) {
	f.Resize(width, height)
	particles := make([]Particle, ParticleCount)
	for i := range particles {
		particles[i] = createParticle(f.rng, f.width, f.height)
	}
	f.particles = particles
}

// Reseed swaps the random source and re-initializes at the current size.
func (f *Field) Reseed(rng Rand) {
	f.rng = rng
	f.Init(f.width, f.height)
}

// Resize changes the surface dimensions. Particles keep their positions and are
// wrapped back into range by later updates.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

func (f *Field) Particles() []Particle {
	return f.particles
}

func (f *Field) SetPointer(x, y float64) {
	f.pointer = Point{X: x, Y: y}
}

// ClearPointer moves the pointer to the off-surface sentinel.
func (f *Field) ClearPointer() {
	f.pointer = Point{X: PointerSentinel, Y: PointerSentinel}
}

func (f *Field) Pointer() Point {
	return f.pointer
}

// ScrollProgress returns offset as a fraction of the scrollable range, clamped to [0, 1].
// A document no taller than the viewport yields 0.
func ScrollProgress(offset, documentHeight, viewportHeight float64) float64 {
	scrollable := documentHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return common.Clamp(offset/scrollable, 0, 1)
}

// SetScroll records a scroll event.
func (f *Field) SetScroll(offset, documentHeight, viewportHeight float64) {
	f.scrollProgress = ScrollProgress(offset, documentHeight, viewportHeight)
}

// SetScrollProgress records progress directly, clamped to [0, 1].
func (f *Field) SetScrollProgress(p float64) {
	f.scrollProgress = common.Clamp(p, 0, 1)
}

func (f *Field) ScrollProgress() float64 {
	return f.scrollProgress
}

func (f *Field) ScrollVelocity() float64 {
	return f.scrollVelocity
}

// Animate runs one frame: Update followed by Draw.
func (f *Field) Animate(s Surface) {
	f.Update()
	f.Draw(s)
}

// Stats summarizes the field after the last frame.
type Stats struct {
	Particles      int
	PerLayer       [NumLayers]int
	Connections    int
	ScrollProgress float64
	ScrollVelocity float64
}

func (f *Field) Stats() Stats {
	st := Stats{
		Particles:      len(f.particles),
		Connections:    f.lastLinks,
		ScrollProgress: f.scrollProgress,
		ScrollVelocity: f.scrollVelocity,
	}
	for i := range f.particles {
		st.PerLayer[f.particles[i].Layer]++
	}
	return st
}
