// Package materialize turns a symbolic room list into a concrete tile grid:
// walls, doors, and room-type interior tiles, following the same clamp-
// don't-reject rule the original C++ Map constructor used.
package materialize

import (
	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/tiles"
)

// Materialize paints size x size grid of FloorTile, then paints each room's
// rectangle in input order — later rooms overwrite earlier ones where they
// overlap. The search driver, not this package, is responsible for steering
// away from destructive overlap via the score.
func Materialize(size int, rooms []layout.Room) *tiles.Grid {
	grid := tiles.New(size, layout.FloorTile)

	for _, room := range rooms {
		paintRoom(grid, room)
	}

	return grid
}

// paintRoom paints one room's width x height rectangle starting at (x, y):
// boundary cells become WALL, interior cells become the room's type code,
// and active doors are written last so they override the wall beneath them.
func paintRoom(grid *tiles.Grid, room layout.Room) {
	for dx := 0; dx < room.Width; dx++ {
		for dy := 0; dy < room.Height; dy++ {
			x, y := room.X+dx, room.Y+dy
			boundary := dx == 0 || dy == 0 || dx == room.Width-1 || dy == room.Height-1
			if boundary {
				grid.Set(x, y, layout.WallTile)
			} else {
				grid.Set(x, y, room.TypeCode)
			}
		}
	}

	for _, door := range room.Doors {
		if !door.Active {
			continue
		}
		grid.Set(room.X+door.Dx, room.Y+door.Dy, layout.DoorTile)
	}
}
