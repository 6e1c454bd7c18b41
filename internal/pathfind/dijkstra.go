// Package pathfind runs single-source Dijkstra over a costfield.Field,
// the distance engine the evaluator uses for adjacency scoring.
package pathfind

import (
	"container/heap"
	"math"

	"github.com/pixelwright/floorsynth/internal/costfield"
)

// Distances returns the dense array of best-known arrival costs from
// (sx, sy), same shape as field, initialized to +Inf for every cell never
// reached. No third-party priority-queue library appears anywhere in the
// retrieved example pack, so the queue below is built on the standard
// library's container/heap, the same way the original C++ implementation
// reached for std::priority_queue.
func Distances(field *costfield.Field, sx, sy int) []float32 {
	size := field.Size
	dist := make([]float32, size*size)
	for i := range dist {
		dist[i] = float32(math.Inf(1))
	}

	visited := make([]bool, size*size)
	pq := &priorityQueue{{cell: sy*size + sx, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		entry := heap.Pop(pq).(pqEntry)
		if visited[entry.cell] {
			continue
		}
		visited[entry.cell] = true

		arrival := entry.cost + field.Cost[entry.cell]
		dist[entry.cell] = arrival

		x, y := entry.cell%size, entry.cell/size
		relax(pq, field, visited, size, x-1, y, arrival)
		relax(pq, field, visited, size, x+1, y, arrival)
		relax(pq, field, visited, size, x, y-1, arrival)
		relax(pq, field, visited, size, x, y+1, arrival)
	}

	return dist
}

func relax(pq *priorityQueue, field *costfield.Field, visited []bool, size, x, y int, cost float32) {
	if x < 0 || x >= size || y < 0 || y >= size {
		return
	}
	cell := y*size + x
	if visited[cell] {
		return
	}
	if math.IsInf(float64(field.Cost[cell]), 1) {
		return
	}
	heap.Push(pq, pqEntry{cell: cell, cost: cost})
}

type pqEntry struct {
	cell int
	cost float32
}

// priorityQueue is a min-heap of pqEntry keyed by accumulated cost. Ties
// break by insertion/heap order; Dijkstra's correctness never depends on
// which of two equal-cost entries pops first.
type priorityQueue []pqEntry

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqEntry)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]
	return entry
}
