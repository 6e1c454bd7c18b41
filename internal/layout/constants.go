// Package layout holds the data model shared by every other floorsynth
// package: room configuration, the room-list population the search driver
// mutates, and the tile-code constants that tie them to a materialized map.
package layout

// MapSize is the fixed width and height of every materialized map, in tiles.
const MapSize = 100

// Reserved tile codes. Room-type codes occupy 0..T-1 and must stay below
// FloorTile so the extractor's tile < FloorTile test cleanly separates
// room interiors from the reserved codes.
const (
	FloorTile uint8 = 253 // traversable open space
	DoorTile  uint8 = 254 // traversable, high move-cost
	WallTile  uint8 = 255 // impassable
)

// Room rectangle bounds enforced by the perturbation operator.
const (
	MinRoomWidth  = 4
	MaxRoomWidth  = 15
	MinRoomHeight = 4
	MaxRoomHeight = 15
)

// Initial random-room generator bounds (wider than the perturbation bounds).
const (
	MinInitialRoomSize = 4
	MaxInitialRoomSize = 20
)

// Evaluator constants.
const (
	TooSmallRoomSize  = 9    // rooms below this tile count score -100 and are skipped entirely
	AboveMinimumCap   = 4    // size bonus only applies up to this multiple of minimum_size
	DoorMoveCost      = 25.0 // per-tile traversal cost of a DOOR tile
	WallTilePenalty   = 0.1  // per-WALL-tile score penalty
	DoorTilePenalty   = 1.0  // per-DOOR-tile score penalty
	UnreachablePenalty = 500.0
	CountMismatchPenalty = 15000.0
)

// Search driver constants.
const (
	OuterRounds       = 500
	InnerSteps        = 1000
	WorkerCount       = 16
	InitialThreshold  = 10000.0
	CoolingFactor     = 0.9
)
