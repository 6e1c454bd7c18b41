package perturb

import (
	"math/rand"
	"testing"

	"github.com/pixelwright/floorsynth/internal/layout"
)

func sampleRooms() []layout.Room {
	return []layout.Room{
		{TypeCode: 0, X: 10, Y: 10, Width: 6, Height: 6, Doors: [4]layout.Door{
			{Active: true, Dx: 6, Dy: 3}, {Active: true, Dx: 3, Dy: 6}, {}, {},
		}},
		{TypeCode: 1, X: 20, Y: 20, Width: 5, Height: 5},
	}
}

func TestPerturbProducesValidRooms(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rooms := sampleRooms()

	for i := 0; i < 500; i++ {
		rooms = Perturb(rooms, rng)
		for _, r := range rooms {
			if r.Width < layout.MinRoomWidth || r.Width > layout.MaxRoomWidth {
				t.Fatalf("width out of range: %d", r.Width)
			}
			if r.Height < layout.MinRoomHeight || r.Height > layout.MaxRoomHeight {
				t.Fatalf("height out of range: %d", r.Height)
			}
			if r.X < 0 || r.X >= layout.MapSize || r.Y < 0 || r.Y >= layout.MapSize {
				t.Fatalf("position out of range: (%d,%d)", r.X, r.Y)
			}
			for _, d := range r.Doors {
				if d.Dx < 0 || d.Dx > r.Width || d.Dy < 0 || d.Dy > r.Height {
					t.Fatalf("door out of bounds: %+v on room width=%d height=%d", d, r.Width, r.Height)
				}
			}
		}
	}
}

func TestPerturbDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	original := sampleRooms()
	snapshot := layout.CloneRooms(original)

	Perturb(original, rng)

	for i := range original {
		if original[i].TypeCode != snapshot[i].TypeCode ||
			original[i].X != snapshot[i].X || original[i].Y != snapshot[i].Y ||
			original[i].Width != snapshot[i].Width || original[i].Height != snapshot[i].Height {
			t.Fatalf("input room %d mutated by Perturb", i)
		}
	}
}

func TestPerturbEmptyRoomsIsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := Perturb(nil, rng)
	if len(got) != 0 {
		t.Fatalf("got %d rooms, want 0", len(got))
	}
}
