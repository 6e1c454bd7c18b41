// Package tiles implements the fixed-size tile grid every other floorsynth
// component reads or writes: a dense, row-major array of 8-bit tile codes.
package tiles

// Grid is a fixed-size, row-major byte matrix. Out-of-range writes clamp to
// the last valid row/column instead of panicking or wrapping — rooms that
// overhang the grid edge smear their wall onto the boundary row/column,
// which is the materializer's intended behavior, not a bug to guard against.
type Grid struct {
	size int
	data []uint8
}

// New allocates a size x size grid filled with fill.
func New(size int, fill uint8) *Grid {
	g := &Grid{size: size, data: make([]uint8, size*size)}
	for i := range g.data {
		g.data[i] = fill
	}
	return g
}

// Size returns the grid's width and height (grids are always square).
func (g *Grid) Size() int { return g.size }

func (g *Grid) index(x, y int) int { return y*g.size + x }

// Get returns the tile at (x, y). Callers must keep x, y in range; Get
// never clamps (reads happen only where the caller already knows the cell
// is valid — the extractor's row-major walk, the cost-field builder, etc).
func (g *Grid) Get(x, y int) uint8 {
	return g.data[g.index(x, y)]
}

// Set writes v at (x, y), clamping out-of-range coordinates to the nearest
// valid cell rather than failing.
func (g *Grid) Set(x, y int, v uint8) {
	if x < 0 {
		x = 0
	} else if x >= g.size {
		x = g.size - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.size {
		y = g.size - 1
	}
	g.data[g.index(x, y)] = v
}

// Data returns the flat row-major buffer backing the grid. Callers must
// not mutate it through a reference expected to outlive the grid's owner.
func (g *Grid) Data() []uint8 { return g.data }

// Clone returns an independent copy of the grid, used by the extractor's
// scratch walk so the original grid is never mutated.
func (g *Grid) Clone() *Grid {
	clone := &Grid{size: g.size, data: make([]uint8, len(g.data))}
	copy(clone.data, g.data)
	return clone
}
