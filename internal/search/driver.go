// Package search implements the parallel threshold-accepting optimizer:
// each outer round forks WorkerCount independent worker replicas over a
// bounded errgroup, joins them, and keeps the best-scoring replica as the
// new current state before cooling the acceptance threshold. Run honors
// context cancellation between rounds and between a worker's inner steps,
// returning the state reached so far rather than running to completion.
package search

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/pixelwright/floorsynth/internal/evaluate"
	"github.com/pixelwright/floorsynth/internal/generate"
	"github.com/pixelwright/floorsynth/internal/layout"
	"github.com/pixelwright/floorsynth/internal/materialize"
	"github.com/pixelwright/floorsynth/internal/perturb"
)

// State is a room population paired with its evaluated score.
type State struct {
	Rooms []layout.Room
	Score float32
}

// ProgressFunc is the out-of-scope "report progress" collaborator: the
// driver calls it once per outer round with the round index, the current
// threshold, and the current score. A nil ProgressFunc is a no-op.
type ProgressFunc func(round int, threshold, score float32)

// Driver holds everything a Run needs: the room-type configuration and the
// root RNG seed every worker's seed is derived from, so a replay with the
// same RootSeed reproduces the same trajectory.
type Driver struct {
	Configs  []layout.RoomConfig
	RootSeed int64
	Progress ProgressFunc

	// OuterRounds, Workers, and InnerSteps default to the contract constants
	// (layout.OuterRounds/WorkerCount/InnerSteps) via NewDriver. Tests and
	// smaller exploratory runs may override them directly.
	OuterRounds int
	Workers     int
	InnerSteps  int
}

// NewDriver constructs a Driver over configs, seeded from rootSeed, sized
// to the default contract constants.
func NewDriver(configs []layout.RoomConfig, rootSeed int64) *Driver {
	return &Driver{
		Configs:     configs,
		RootSeed:    rootSeed,
		OuterRounds: layout.OuterRounds,
		Workers:     layout.WorkerCount,
		InnerSteps:  layout.InnerSteps,
	}
}

// Run executes OuterRounds rounds of WorkerCount-wide parallel threshold
// acceptance and returns the final state. Workers share no mutable state:
// each receives a by-value copy of the current rooms, score, configs, and
// threshold, and the driver's own state is mutated only between rounds, on
// the calling goroutine.
func (d *Driver) Run(ctx context.Context) State {
	rootRNG := rand.New(rand.NewSource(d.RootSeed))
	rooms := generate.RandomRooms(d.Configs, rootRNG)
	score := evaluate.Score(materialize.Materialize(layout.MapSize, rooms), d.Configs)
	threshold := float32(layout.InitialThreshold)

	for round := 0; round < d.OuterRounds; round++ {
		if ctx.Err() != nil {
			break
		}
		if d.Progress != nil {
			d.Progress(round, threshold, score)
		}

		results := d.runRound(ctx, rooms, score, threshold, round)
		best := selectBest(results)
		rooms, score = best.Rooms, best.Score

		threshold *= layout.CoolingFactor
	}

	return State{Rooms: rooms, Score: score}
}

// runRound forks WorkerCount replicas, each seeded independently from the
// root seed mixed with the round and worker index, and joins them.
func (d *Driver) runRound(ctx context.Context, rooms []layout.Room, score, threshold float32, round int) []State {
	results := make([]State, d.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < d.Workers; w++ {
		w := w
		seed := mixSeed(d.RootSeed, round, w)
		workerRooms := layout.CloneRooms(rooms)
		g.Go(func() error {
			results[w] = runWorker(gctx, workerRooms, score, d.Configs, threshold, seed, d.InnerSteps)
			return nil
		})
	}
	// Workers never return an error; a worker that cannot produce a result
	// (panic, arithmetic fault) is a programming error and is left to crash
	// the process rather than be swallowed here.
	_ = g.Wait()

	return results
}

// runWorker runs InnerSteps threshold-acceptance steps starting from rooms
// and score, and returns its final state: the last accepted candidate, which
// may score below an earlier accepted one. It checks ctx between steps so a
// canceled Run returns the current state instead of running the remaining
// steps to completion.
func runWorker(ctx context.Context, rooms []layout.Room, score float32, configs []layout.RoomConfig, threshold float32, seed int64, innerSteps int) State {
	rng := rand.New(rand.NewSource(seed))

	for step := 0; step < innerSteps; step++ {
		if ctx.Err() != nil {
			break
		}
		k := 1 + rng.Intn(3)

		// Perturb repeatedly from the same base rooms; only the last of the
		// k perturbations becomes the candidate. This discards the first
		// k-1 draws rather than chaining them — wasteful-looking, but it
		// keeps a round's candidate distribution matched to a single-step
		// round regardless of k.
		var candidate []layout.Room
		for i := 0; i < k; i++ {
			candidate = perturb.Perturb(rooms, rng)
		}

		grid := materialize.Materialize(layout.MapSize, candidate)
		newScore := evaluate.Score(grid, configs)

		if score-newScore < threshold {
			rooms = candidate
			score = newScore
		}
	}

	return State{Rooms: rooms, Score: score}
}

// selectBest picks the arg-max over final scores; the first worker reaching
// the maximum wins ties, a stable and deterministic tie-break.
func selectBest(results []State) State {
	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best
}

// mixSeed derives a per-(round, worker) seed from the root seed so replays
// with the same root seed reproduce the same per-worker RNG streams, while
// distinct rounds and workers never collide. This is a splitmix64-style
// finalizer, not a cryptographic mix — determinism, not unpredictability,
// is the requirement.
func mixSeed(root int64, round, worker int) int64 {
	x := uint64(root) + uint64(round)*0x9E3779B97F4A7C15 + uint64(worker)*0xBF58476D1CE4E5B9
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)
	return int64(x)
}
