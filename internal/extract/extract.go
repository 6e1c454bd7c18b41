// Package extract recovers the list of rooms a materialized grid actually
// contains, via row-major flood fill — the inverse of materialize.
package extract

import (
	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/tiles"
)

// Room is one maximal 4-connected region of same-type interior tiles.
type Room struct {
	TypeCode    uint8
	Size        int
	Width       int
	Height      int
	CenterX     int
	CenterY     int
	Coordinates []layout.Point
}

// Rooms walks grid in row-major order and flood-fills every unvisited
// interior cell (tile < FloorTile) into an extracted Room. Visited cells
// are overwritten with FloorTile in a scratch copy so the outer walk never
// revisits them — the input grid itself is never mutated.
func Rooms(grid *tiles.Grid) []Room {
	scratch := grid.Clone()
	size := scratch.Size()

	var rooms []Room
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tile := scratch.Get(x, y)
			if tile >= layout.FloorTile {
				continue
			}
			coords := floodFill(scratch, x, y)
			rooms = append(rooms, buildRoom(tile, coords))
		}
	}
	return rooms
}

// floodFill performs a 4-connected breadth-first walk from (startX, startY),
// collecting every cell of the same tile value and clearing it to FloorTile
// in scratch as it goes. The center computed downstream depends on this
// exact BFS collection order for reproducibility, so this must stay a FIFO
// queue, not a stack.
func floodFill(scratch *tiles.Grid, startX, startY int) []layout.Point {
	size := scratch.Size()
	target := scratch.Get(startX, startY)

	queue := []layout.Point{{X: startX, Y: startY}}
	var coords []layout.Point

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
			continue
		}
		if scratch.Get(p.X, p.Y) != target {
			continue
		}

		coords = append(coords, p)
		scratch.Set(p.X, p.Y, layout.FloorTile)

		queue = append(queue,
			layout.Point{X: p.X - 1, Y: p.Y},
			layout.Point{X: p.X + 1, Y: p.Y},
			layout.Point{X: p.X, Y: p.Y - 1},
			layout.Point{X: p.X, Y: p.Y + 1},
		)
	}

	return coords
}

func buildRoom(typeCode uint8, coords []layout.Point) Room {
	minX, minY := coords[0].X, coords[0].Y
	maxX, maxY := coords[0].X, coords[0].Y
	for _, c := range coords {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	center := coords[len(coords)/2]

	return Room{
		TypeCode:    typeCode,
		Size:        len(coords),
		Width:       maxX + 1 - minX,
		Height:      maxY + 1 - minY,
		CenterX:     center.X,
		CenterY:     center.Y,
		Coordinates: coords,
	}
}
