// Package generate builds the search driver's starting room population:
// for each configured type, Count rooms placed uniformly at random with all
// four doors active, matching the reference generate_random_rooms.
package generate

import (
	"math/rand"

	"github.com/pixelwright/floorsynth/internal/layout"
)

// RandomRooms emits one Room per configured count, positions uniform on
// [0, MapSize], sizes uniform on [MinInitialRoomSize, MaxInitialRoomSize],
// all four doors active, each at a random local position with dx uniform on
// [0, width] and dy uniform on [0, height]. Door positions are not
// restricted to the rectangle's perimeter.
func RandomRooms(configs []layout.RoomConfig, rng *rand.Rand) []layout.Room {
	var rooms []layout.Room

	for _, cfg := range configs {
		for i := 0; i < cfg.Count; i++ {
			width := layout.MinInitialRoomSize + rng.Intn(layout.MaxInitialRoomSize-layout.MinInitialRoomSize+1)
			height := layout.MinInitialRoomSize + rng.Intn(layout.MaxInitialRoomSize-layout.MinInitialRoomSize+1)

			room := layout.Room{
				TypeCode: cfg.TypeCode,
				X:        rng.Intn(layout.MapSize + 1),
				Y:        rng.Intn(layout.MapSize + 1),
				Width:    width,
				Height:   height,
			}
			for d := range room.Doors {
				room.Doors[d] = layout.Door{
					Active: true,
					Dx:     rng.Intn(width + 1),
					Dy:     rng.Intn(height + 1),
				}
			}
			rooms = append(rooms, room)
		}
	}

	return rooms
}
