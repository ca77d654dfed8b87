package field

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestConnections(t *testing.T) {
	cases := []struct {
		name      string
		particles []Particle
		wantLines int
		wantConns []int
	}{
		{
			name:      "triangle_same_layer",
			particles: []Particle{still(100, 100, 1), still(150, 100, 1), still(125, 140, 1)},
			wantLines: 3,
			wantConns: []int{2, 2, 2},
		},
		{
			name:      "adjacent_layers",
			particles: []Particle{still(100, 100, 0), still(120, 100, 1)},
			wantLines: 1,
			wantConns: []int{1, 1},
		},
		{
			name:      "layers_too_far_apart",
			particles: []Particle{still(100, 100, 0), still(120, 100, 2)},
			wantLines: 0,
			wantConns: []int{0, 0},
		},
		{
			name:      "just_out_of_range",
			particles: []Particle{still(100, 100, 1), still(100+ConnectionDistance, 100, 1)},
			wantLines: 0,
			wantConns: []int{0, 0},
		},
		{
			name: "hub_capped",
			particles: []Particle{
				still(300, 300, 1),
				still(310, 300, 1), still(290, 300, 1), still(300, 310, 1), still(300, 290, 1),
			},
			// The hub saturates after three spokes, the spokes fill up among themselves and
			// the last one is left over.
			wantLines: 6,
			wantConns: []int{3, 3, 3, 3, 0},
		},
	}

	for _, c := range cases {
		for _, grid := range []bool{false, true} {
			name := c.name
			var opts []Option
			if grid {
				name += "/grid"
				opts = append(opts, WithGridScan())
			}
			t.Run(name, func(t *testing.T) {
				f := newSeeded(1, opts...)
				f.Resize(800, 600)
				f.particles = append([]Particle(nil), c.particles...)

				rec := &recorder{}
				f.drawConnections(rec)

				if len(rec.lines) != c.wantLines {
					t.Fatalf("expected %d lines, got %d", c.wantLines, len(rec.lines))
				}
				got := make([]int, len(f.particles))
				for i, p := range f.particles {
					got[i] = p.Connections
				}
				if !reflect.DeepEqual(got, c.wantConns) {
					t.Fatalf("expected connections %v, got %v", c.wantConns, got)
				}
				if f.Stats().Connections != c.wantLines {
					t.Fatalf("stats should report %d links, got %d", c.wantLines, f.Stats().Connections)
				}
			})
		}
	}
}

func TestConnectionLineStyle(t *testing.T) {
	f := fieldWith(800, 600, still(100, 100, 1), still(175, 100, 1))
	f.particles[0].Color = Palette[0]
	f.particles[1].Color = Palette[1]

	rec := &recorder{}
	f.drawConnections(rec)

	if len(rec.lines) != 1 {
		t.Fatalf("expected one line, got %d", len(rec.lines))
	}
	l := rec.lines[0]
	if l.c != Palette[0] {
		t.Fatalf("line should take the first particle's colour")
	}
	if l.width != connectionWidth {
		t.Fatalf("expected width %v, got %v", connectionWidth, l.width)
	}
	if want := (1 - 75/ConnectionDistance) * connectionAlpha; l.alpha != want {
		t.Fatalf("expected alpha %v, got %v", want, l.alpha)
	}
}

func TestConnectionsResetEachFrame(t *testing.T) {
	f := fieldWith(800, 600, still(100, 100, 1), still(120, 100, 1))
	rec := &recorder{}

	for i := 0; i < 5; i++ {
		f.drawConnections(rec)
		for j, p := range f.particles {
			if p.Connections != 1 {
				t.Fatalf("pass %d: particle %d has %d connections, want 1", i, j, p.Connections)
			}
		}
	}

	f.particles[1].X = 700
	f.drawConnections(rec)
	for j, p := range f.particles {
		if p.Connections != 0 {
			t.Fatalf("particle %d should drop its stale link, got %d", j, p.Connections)
		}
	}
}

func TestConnectionsCollapsed(t *testing.T) {
	f := newSeeded(8)
	f.Init(800, 600)
	for i := range f.particles {
		f.particles[i].X = 400
		f.particles[i].Y = 300
	}

	rec := &recorder{}
	f.drawConnections(rec)

	total := 0
	for i, p := range f.particles {
		if p.Connections > MaxConnections {
			t.Fatalf("particle %d: %d connections", i, p.Connections)
		}
		total += p.Connections
	}
	if total != 2*len(rec.lines) {
		t.Fatalf("every line must count once on each end: lines=%d counters=%d", len(rec.lines), total)
	}
	if len(rec.lines) == 0 {
		t.Fatalf("collapsed particles should link")
	}
}

func TestGridMatchesPairScan(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	ps := make([]Particle, 300)
	for i := range ps {
		ps[i] = still(rng.Float64()*1400-100, rng.Float64()*900-100, rng.Intn(NumLayers))
	}

	pairs := fieldWith(1200, 700, append([]Particle(nil), ps...)...)
	grid := newSeeded(1, WithGridScan())
	grid.Resize(1200, 700)
	grid.particles = append([]Particle(nil), ps...)

	a, b := &recorder{}, &recorder{}
	for frame := 0; frame < 3; frame++ {
		pairs.drawConnections(a)
		grid.drawConnections(b)
	}
	if !reflect.DeepEqual(a.lines, b.lines) {
		t.Fatalf("grid scan drew %d lines, pair scan %d; sequences differ", len(b.lines), len(a.lines))
	}
	for i := range ps {
		if pairs.particles[i].Connections != grid.particles[i].Connections {
			t.Fatalf("particle %d: pair scan %d vs grid %d connections",
				i, pairs.particles[i].Connections, grid.particles[i].Connections)
		}
	}
}

// gridPairs collects every pair the grid would consider, in scan order.
func gridPairs(g *ConnectionGrid, ps []Particle) [][2]int {
	var out [][2]int
	g.eachPair(ps, func(i, j int) {
		out = append(out, [2]int{i, j})
	})
	return out
}

func TestGridCandidatesSorted(t *testing.T) {
	ps := []Particle{still(10, 10, 0), still(-20, 10, 0), still(5000, 5000, 0), still(140, 10, 0)}
	got := gridPairs(NewConnectionGrid(ConnectionDistance), ps)
	want := [][2]int{{0, 1}, {0, 3}, {1, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
