// Package perturb produces a neighbor room population from a current one —
// the move generator the search driver's worker replicas call every inner
// step. Every move is total given a non-empty room list: deterministic
// given the input *rand.Rand, and it always leaves the list valid.
package perturb

import (
	"math"
	"math/rand"

	"github.com/pixelwright/floorsynth/internal/layout"
)

// swapChance is the probability mass given to the type-swap move; every
// other draw falls through to a single-room adjustment.
const swapChance = 0.05

// Perturb clones rooms and applies exactly one mutation, chosen by a
// uniform draw against swapChance, then one of six equally-likely
// single-room adjustments. rng is advanced by the call.
func Perturb(rooms []layout.Room, rng *rand.Rand) []layout.Room {
	candidate := layout.CloneRooms(rooms)
	if len(candidate) == 0 {
		return candidate
	}

	if rng.Float64() < swapChance {
		swapTypes(candidate, rng)
		return candidate
	}

	i := rng.Intn(len(candidate))
	switch rng.Intn(6) {
	case 0:
		adjustX(&candidate[i], rng)
	case 1:
		adjustY(&candidate[i], rng)
	case 2:
		adjustWidth(&candidate[i], rng)
	case 3:
		adjustHeight(&candidate[i], rng)
	case 4:
		toggleDoor(&candidate[i], rng)
	case 5:
		moveDoor(&candidate[i], rng)
	}
	return candidate
}

// roundNormal draws from N(0, sigma) and rounds to the nearest integer,
// the "round(N(0, 3))" jitter every positional move shares.
func roundNormal(rng *rand.Rand, sigma float64) int {
	return int(math.Round(rng.NormFloat64() * sigma))
}

func swapTypes(rooms []layout.Room, rng *rand.Rand) {
	i := rng.Intn(len(rooms))
	j := rng.Intn(len(rooms))
	if i == j {
		j = (j + 1) % len(rooms)
	}
	rooms[i].TypeCode, rooms[j].TypeCode = rooms[j].TypeCode, rooms[i].TypeCode
}

func adjustX(room *layout.Room, rng *rand.Rand) {
	room.X = layout.Clamp(room.X+roundNormal(rng, 3), 0, layout.MapSize-1)
}

func adjustY(room *layout.Room, rng *rand.Rand) {
	room.Y = layout.Clamp(room.Y+roundNormal(rng, 3), 0, layout.MapSize-1)
}

// adjustWidth rebinds any door pinned to the right edge (dx == width)
// before resizing, so the door tracks the moving edge instead of being
// stranded mid-rectangle. After resizing, every other door's dx is clamped
// into the new width so no door is left outside the rectangle.
func adjustWidth(room *layout.Room, rng *rand.Rand) {
	delta := roundNormal(rng, 3)
	for i := range room.Doors {
		if room.Doors[i].Dx == room.Width {
			room.Doors[i].Dx = layout.Clamp(room.Doors[i].Dx+delta-1, layout.MinRoomWidth, layout.MaxRoomWidth-1)
		}
	}
	room.Width = layout.Clamp(room.Width+delta, layout.MinRoomWidth, layout.MaxRoomWidth)
	for i := range room.Doors {
		room.Doors[i].Dx = layout.Clamp(room.Doors[i].Dx, 0, room.Width)
	}
}

// adjustHeight is adjustWidth's symmetric counterpart on the bottom edge.
func adjustHeight(room *layout.Room, rng *rand.Rand) {
	delta := roundNormal(rng, 3)
	for i := range room.Doors {
		if room.Doors[i].Dy == room.Height {
			room.Doors[i].Dy = layout.Clamp(room.Doors[i].Dy+delta-1, layout.MinRoomHeight, layout.MaxRoomHeight-1)
		}
	}
	room.Height = layout.Clamp(room.Height+delta, layout.MinRoomHeight, layout.MaxRoomHeight)
	for i := range room.Doors {
		room.Doors[i].Dy = layout.Clamp(room.Doors[i].Dy, 0, room.Height)
	}
}

func toggleDoor(room *layout.Room, rng *rand.Rand) {
	slot := rng.Intn(4)
	room.Doors[slot].Active = !room.Doors[slot].Active
}

func moveDoor(room *layout.Room, rng *rand.Rand) {
	slot := rng.Intn(4)
	delta := roundNormal(rng, 3)
	if rng.Intn(2) == 0 {
		room.Doors[slot].Dx = layout.Clamp(room.Doors[slot].Dx+delta, 0, room.Width)
	} else {
		room.Doors[slot].Dy = layout.Clamp(room.Doors[slot].Dy+delta, 0, room.Height)
	}
}
