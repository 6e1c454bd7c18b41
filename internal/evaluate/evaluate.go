// Package evaluate scores a materialized map: geometric room quality,
// adjacency cost via Dijkstra, and global per-type count constraints,
// combined into the single scalar the search driver optimizes.
package evaluate

import (
	"math"

	"github.com/pixelwright/floorsynth/internal/costfield"
	"github.com/pixelwright/floorsynth/internal/extract"
	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/pathfind"
	"github.com/pixelwright/floorsynth/internal/tiles"
)

// Score returns the grid's total score under configs. Higher is better:
// every term is a bonus (positive) or a penalty (negative), and the exact
// coefficients must not be retuned — the search driver's cooling schedule
// is calibrated to their magnitudes.
func Score(grid *tiles.Grid, configs []layout.RoomConfig) float32 {
	var score float32

	baseCost := costfield.Build(grid, configs)
	rooms := extract.Rooms(grid)

	typeCounts := make(map[uint8]int)

	for _, room := range rooms {
		if room.Size < layout.TooSmallRoomSize {
			score -= 100
			continue
		}

		typeCounts[room.TypeCode]++
		cfg := configs[room.TypeCode]

		score += sizeTerm(room, cfg)
		score += aspectTerm(room)
		score += shapeTerm(room)
		score += adjacencyTerm(room, rooms, cfg, baseCost, grid.Size())
	}

	score += countMismatchTerm(configs, typeCounts)
	score += tileCostTerm(grid)

	return score
}

func sizeTerm(room extract.Room, cfg layout.RoomConfig) float32 {
	minSize := cfg.MinimumSize
	maxRoomSize := minSize * layout.AboveMinimumCap

	switch {
	case room.Size < minSize:
		return -1000
	case room.Size < maxRoomSize:
		return float32(room.Size-minSize) * cfg.SizeScaling
	default:
		return 0
	}
}

func aspectTerm(room extract.Room) float32 {
	diff := room.Width - room.Height
	if diff < 0 {
		diff = -diff
	}
	score := float32(-10 * diff)
	if room.Width < 3 || room.Height < 3 {
		score -= 100
	}
	return score
}

func shapeTerm(room extract.Room) float32 {
	return -float32(room.Width*room.Height - room.Size)
}

// adjacencyTerm zeroes this room's own interior in a private copy of the
// base cost field so traversing it is free regardless of movement_cost,
// then runs Dijkstra from the room's center and charges the configured
// weight against every other room whose type is a key in cfg.Weights.
func adjacencyTerm(room extract.Room, allRooms []extract.Room, cfg layout.RoomConfig, baseCost *costfield.Field, size int) float32 {
	if len(cfg.Weights) == 0 {
		return 0
	}

	aux := baseCost.Clone()
	for _, c := range room.Coordinates {
		aux.Cost[c.Y*size+c.X] = 0
	}

	distances := pathfind.Distances(aux, room.CenterX, room.CenterY)

	var score float32
	for _, other := range allRooms {
		weight, ok := cfg.Weights[other.TypeCode]
		if !ok {
			continue
		}
		cost := distances[other.CenterY*size+other.CenterX]
		if math.IsInf(float64(cost), 1) {
			score -= layout.UnreachablePenalty
		} else {
			score -= cost * weight
		}
	}
	return score
}

func countMismatchTerm(configs []layout.RoomConfig, typeCounts map[uint8]int) float32 {
	var score float32
	for _, cfg := range configs {
		count := typeCounts[cfg.TypeCode]
		diff := count - cfg.Count
		if diff < 0 {
			diff = -diff
		}
		if diff != 0 {
			score -= layout.CountMismatchPenalty * float32(diff)
		}
	}
	return score
}

func tileCostTerm(grid *tiles.Grid) float32 {
	var score float32
	for _, tile := range grid.Data() {
		switch tile {
		case layout.WallTile:
			score -= layout.WallTilePenalty
		case layout.DoorTile:
			score -= layout.DoorTilePenalty
		}
	}
	return score
}
