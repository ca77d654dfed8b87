package field

import (
	"math"
	"slices"
)

// connectionScanner enumerates candidate pairs i < j in ascending (i, j) order.
// It may skip pairs, but only ones at least a connection distance apart.
type connectionScanner interface {
	eachPair(ps []Particle, fn func(i, j int))
}

// pairScan is the all-pairs reference scan.
type pairScan struct{}

func (pairScan) eachPair(ps []Particle, fn func(i, j int)) {
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			fn(i, j)
		}
	}
}

type cellKey struct {
	cx, cy int
}

// ConnectionGrid buckets particles into square cells one connection distance wide so
// only neighbouring cells are searched.
type ConnectionGrid struct {
	cellSize float64
	cells    map[cellKey][]int
	keys     []cellKey
	scratch  []int
}

func NewConnectionGrid(cellSize float64) *ConnectionGrid {
	return &ConnectionGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

func (g *ConnectionGrid) key(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Floor(x / g.cellSize)),
		cy: int(math.Floor(y / g.cellSize)),
	}
}

func (g *ConnectionGrid) rebuild(ps []Particle) {
	for k, bucket := range g.cells {
		g.cells[k] = bucket[:0]
	}
	g.keys = g.keys[:0]
	for i := range ps {
		k := g.key(ps[i].X, ps[i].Y)
		g.cells[k] = append(g.cells[k], i)
		g.keys = append(g.keys, k)
	}
}

func (g *ConnectionGrid) eachPair(ps []Particle, fn func(i, j int)) {
	g.rebuild(ps)
	for i := range ps {
		k := g.keys[i]
		g.scratch = g.scratch[:0]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range g.cells[cellKey{cx: k.cx + dx, cy: k.cy + dy}] {
					if j > i {
						g.scratch = append(g.scratch, j)
					}
				}
			}
		}
		slices.Sort(g.scratch)
		for _, j := range g.scratch {
			fn(i, j)
		}
	}
}
