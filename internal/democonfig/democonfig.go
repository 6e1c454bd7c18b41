// Package democonfig builds the sample room-type catalogue the cmd/
// binaries run against. Config ingestion from a human-editable file is the
// out-of-scope collaborator's job; this is just the literal catalogue a
// demo run needs, the way cmd/mapgen hardcodes its terrain legend.
package democonfig

import (
	"image/color"

	"github.com/pixelwright/floorsynth/internal/layout"
)

// House returns a small four-room-type house catalogue: bedrooms,
// a kitchen and living room that want to be close together, and
// bathrooms that want to be near bedrooms.
func House() []layout.RoomConfig {
	return []layout.RoomConfig{
		{Name: "bedroom", TypeCode: 0, Count: 4, MinimumSize: 9, SizeScaling: 2, MovementCost: 1,
			Color: color.RGBA{R: 180, G: 90, B: 90, A: 255}},
		{Name: "kitchen", TypeCode: 1, Count: 1, MinimumSize: 16, SizeScaling: 1.5, MovementCost: 1,
			Color:   color.RGBA{R: 90, G: 180, B: 90, A: 255},
			Weights: map[uint8]float32{2: 3.0}},
		{Name: "living_room", TypeCode: 2, Count: 1, MinimumSize: 25, SizeScaling: 1, MovementCost: 1,
			Color:   color.RGBA{R: 90, G: 90, B: 180, A: 255},
			Weights: map[uint8]float32{0: 1.0, 1: 3.0}},
		{Name: "bathroom", TypeCode: 3, Count: 2, MinimumSize: 9, SizeScaling: 1, MovementCost: 1,
			Color:   color.RGBA{R: 180, G: 180, B: 90, A: 255},
			Weights: map[uint8]float32{0: 2.0}},
	}
}
