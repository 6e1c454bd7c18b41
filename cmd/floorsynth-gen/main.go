// Command floorsynth-gen runs the full search loop to completion and dumps
// the final map as ASCII — a thin driver over the core package, not part of it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pixelwright/floorsynth/internal/democonfig"
	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/materialize"
	"github.com/pixelwright/floorsynth/internal/search"
	"github.com/pixelwright/floorsynth/internal/tiles"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "root RNG seed; reruns with the same seed reproduce the same trajectory")
	reportEvery := flag.Int("report-every", 50, "print a progress line every N outer rounds")
	flag.Parse()

	configs := democonfig.House()

	driver := search.NewDriver(configs, *seed)
	driver.Progress = func(round int, threshold, score float32) {
		if round%(*reportEvery) != 0 {
			return
		}
		pct := 100 * float32(round) / float32(driver.OuterRounds)
		log.Printf("round %d/%d (%.0f%%) threshold=%.1f score=%.1f", round, driver.OuterRounds, pct, threshold, score)
	}

	final := driver.Run(context.Background())
	log.Printf("done: final score=%.1f", final.Score)

	grid := materialize.Materialize(layout.MapSize, final.Rooms)
	printASCII(grid, configs)
}

// typeGlyphs picks a printable rune for each configured room type, falling
// back to "?" if there are more types than glyphs on hand.
var typeGlyphs = []rune("abcdefghijklmnopqrstuvwxyz")

// printASCII dumps grid as a character map: '.' for floor, '+' for door,
// '#' for wall, and a per-type letter for room interiors — the same spirit
// as cmd/mapgen's terrain-character dump.
func printASCII(grid *tiles.Grid, configs []layout.RoomConfig) {
	glyph := make(map[uint8]rune, len(configs))
	for _, cfg := range configs {
		g := '?'
		if int(cfg.TypeCode) < len(typeGlyphs) {
			g = typeGlyphs[cfg.TypeCode]
		}
		glyph[cfg.TypeCode] = g
	}

	for y := 0; y < grid.Size(); y++ {
		for x := 0; x < grid.Size(); x++ {
			switch tile := grid.Get(x, y); tile {
			case layout.FloorTile:
				fmt.Print(".")
			case layout.DoorTile:
				fmt.Print("+")
			case layout.WallTile:
				fmt.Print("#")
			default:
				if g, ok := glyph[tile]; ok {
					fmt.Printf("%c", g)
				} else {
					fmt.Print("?")
				}
			}
		}
		fmt.Println()
	}
}
