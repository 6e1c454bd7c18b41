package layout

import (
	"image/color"
)

// RoomConfig describes one configured room type. The core treats a
// []RoomConfig slice as canonical: the i-th entry's TypeCode is
// conventionally i, and Weights keys refer into this same slice by index.
type RoomConfig struct {
	Name         string
	TypeCode     uint8
	Count        int
	MinimumSize  int
	SizeScaling  float32
	MovementCost float32
	Color        color.RGBA
	Attributes   map[string]struct{}

	// Weights is a sparse map from another type's index to a non-negative
	// adjacency preference: higher means a shorter desired path to rooms
	// of that type.
	Weights map[uint8]float32
}

// Palette derives the tile-code -> RGB mapping an outbound map snapshot
// carries: the three reserved codes take fixed colors, and each configured
// room type contributes its own Color.
func Palette(configs []RoomConfig) map[uint8]color.RGBA {
	palette := map[uint8]color.RGBA{
		FloorTile: {R: 255, G: 255, B: 255, A: 255},
		DoorTile:  {R: 127, G: 127, B: 127, A: 255},
		WallTile:  {R: 0, G: 0, B: 0, A: 255},
	}
	for _, cfg := range configs {
		palette[cfg.TypeCode] = cfg.Color
	}
	return palette
}
