package extract

import (
	"testing"

	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/materialize"
)

func TestRoomsEmptyMapYieldsNoRooms(t *testing.T) {
	grid := materialize.Materialize(5, nil)
	rooms := Rooms(grid)
	if len(rooms) != 0 {
		t.Fatalf("got %d rooms, want 0", len(rooms))
	}
}

func TestRoomsSingleRoom(t *testing.T) {
	room := layout.Room{
		TypeCode: 25,
		X:        1, Y: 2,
		Width: 3, Height: 4,
	}
	grid := materialize.Materialize(10, []layout.Room{room})

	rooms := Rooms(grid)
	if len(rooms) != 1 {
		t.Fatalf("got %d rooms, want 1", len(rooms))
	}
	got := rooms[0]
	if got.TypeCode != 25 {
		t.Errorf("TypeCode = %d, want 25", got.TypeCode)
	}
	if got.Size != 2 {
		t.Errorf("Size = %d, want 2", got.Size)
	}
}

func TestRoomsDisjointUnion(t *testing.T) {
	rooms := []layout.Room{
		{TypeCode: 1, X: 1, Y: 1, Width: 5, Height: 5},
		{TypeCode: 2, X: 20, Y: 20, Width: 5, Height: 5},
	}
	grid := materialize.Materialize(40, rooms)
	extracted := Rooms(grid)
	if len(extracted) != 2 {
		t.Fatalf("got %d rooms, want 2", len(extracted))
	}

	seen := make(map[layout.Point]bool)
	for _, r := range extracted {
		for _, c := range r.Coordinates {
			if seen[c] {
				t.Fatalf("cell %v claimed by more than one room", c)
			}
			seen[c] = true
		}
	}
}
