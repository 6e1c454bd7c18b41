// Command floorsynth-img runs the search loop and writes the final map as a
// PNG snapshot, pixelsPerTile x pixelsPerTile pixels per tile — a rendering collaborator kept outside
// the core, since bitmap rendering is not the optimizer's job.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/pixelwright/floorsynth/internal/democonfig"
	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/materialize"
	"github.com/pixelwright/floorsynth/internal/search"
	"github.com/pixelwright/floorsynth/internal/tiles"
)

const pixelsPerTile = 4

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "root RNG seed")
	out := flag.String("out", "floorplan.png", "output PNG path")
	flag.Parse()

	configs := democonfig.House()
	driver := search.NewDriver(configs, *seed)

	final := driver.Run(context.Background())
	grid := materialize.Materialize(layout.MapSize, final.Rooms)

	img := render(grid, layout.Palette(configs))

	if err := writePNG(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "floorsynth-img: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%dx%d px), final score=%.1f\n", *out, img.Bounds().Dx(), img.Bounds().Dy(), final.Score)
}

// render blits one pixelsPerTile x pixelsPerTile block per cell, coloring
// by the tile-code -> RGB palette. golang.org/x/image/draw does the
// per-tile scale-up instead of a hand-rolled nested pixel loop.
func render(grid *tiles.Grid, palette map[uint8]color.RGBA) *image.RGBA {
	size := grid.Size()
	src := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			src.SetRGBA(x, y, palette[grid.Get(x, y)])
		}
	}

	dstSize := size * pixelsPerTile
	dst := image.NewRGBA(image.Rect(0, 0, dstSize, dstSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
