package pathfind

import (
	"math"
	"testing"

	"github.com/pixelwright/floorsynth/internal/costfield"
)

func flatField(size int, fill float32) *costfield.Field {
	cost := make([]float32, size*size)
	for i := range cost {
		cost[i] = fill
	}
	return &costfield.Field{Size: size, Cost: cost}
}

func TestDistancesSourceCostsItself(t *testing.T) {
	field := flatField(5, 1.0)
	dist := Distances(field, 2, 2)

	if got := dist[2*5+2]; got != 1.0 {
		t.Fatalf("dist at source = %v, want field cost 1.0", got)
	}
}

func TestDistancesMonotonicFromSource(t *testing.T) {
	field := flatField(10, 1.0)
	dist := Distances(field, 0, 0)

	source := dist[0]
	for i, d := range dist {
		if math.IsInf(float64(d), 1) {
			continue
		}
		if d < source {
			t.Fatalf("cell %d dist %v < source dist %v", i, d, source)
		}
	}
}

func TestDistancesUnreachableBehindWalls(t *testing.T) {
	size := 5
	field := flatField(size, 1.0)
	// Wall off (2, y) for all y, splitting the grid in two columns.
	for y := 0; y < size; y++ {
		field.Cost[y*size+2] = float32(math.Inf(1))
	}

	dist := Distances(field, 0, 0)

	if got := dist[0*size+4]; !math.IsInf(float64(got), 1) {
		t.Fatalf("dist across wall = %v, want +Inf", got)
	}
}
