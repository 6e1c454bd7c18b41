// Package costfield builds the per-cell traversal cost a materialized grid
// implies, consumed by the distance engine.
package costfield

import (
	"math"

	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/tiles"
)

// Field is a dense, row-major array of per-cell traversal costs, same shape
// as the grid it was built from.
type Field struct {
	Size int
	Cost []float32
}

// Build maps each tile to its traversal cost: FloorTile -> 1, DoorTile ->
// DoorMoveCost, WallTile -> +Inf, and any room-interior code t ->
// configs[t].MovementCost.
func Build(grid *tiles.Grid, configs []layout.RoomConfig) *Field {
	size := grid.Size()
	field := &Field{Size: size, Cost: make([]float32, size*size)}

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			field.Cost[y*size+x] = tileCost(grid.Get(x, y), configs)
		}
	}

	return field
}

func tileCost(tile uint8, configs []layout.RoomConfig) float32 {
	switch tile {
	case layout.FloorTile:
		return 1.0
	case layout.DoorTile:
		return layout.DoorMoveCost
	case layout.WallTile:
		return float32(math.Inf(1))
	default:
		return configs[tile].MovementCost
	}
}

// Clone returns an independent copy, used by the evaluator to zero a room's
// own interior before running Dijkstra from its center without disturbing
// the shared base field.
func (f *Field) Clone() *Field {
	clone := &Field{Size: f.Size, Cost: make([]float32, len(f.Cost))}
	copy(clone.Cost, f.Cost)
	return clone
}
