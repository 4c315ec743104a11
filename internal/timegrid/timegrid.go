// Package timegrid builds the sparse set of days at which descriptors are
// evaluated (spec.md §4.3). It is the only place that decides "when" the
// simulation looks at the world; everything downstream treats the grid as
// fixed and ordered.
package timegrid

import (
	"container/heap"
	"fmt"
	"sort"
)

// VisibleRange bounds a non-uniform grid's density window.
type VisibleRange struct {
	Start float64
	End   float64
}

// Params are the time-grid builder's inputs.
type Params struct {
	StartDay     float64
	EndDay       float64
	Interval     float64
	VisibleRange *VisibleRange // nil when Interval is uniform (365 or 182.5)
	CurrentDay   *float64
	MaxPoints    int
}

// isUniformInterval reports whether interval is one of the two values the
// grid builder treats as "uniform calendar steps" (spec.md §4.3).
func isUniformInterval(interval float64) bool {
	return interval == 365 || interval == 182.5
}

// Build constructs the sorted, deduplicated grid for p.
func Build(p Params) ([]float64, error) {
	if p.Interval <= 0 {
		return nil, fmt.Errorf("timegrid: interval must be positive, got %v", p.Interval)
	}
	if p.EndDay < p.StartDay {
		return nil, fmt.Errorf("timegrid: end_day %v before start_day %v", p.EndDay, p.StartDay)
	}

	var sources [][]float64
	if isUniformInterval(p.Interval) {
		sources = append(sources, uniformPoints(p.StartDay, p.EndDay, p.Interval))
	} else {
		pts := []float64{p.StartDay}
		if p.VisibleRange != nil {
			pts = append(pts, rangePoints(p.VisibleRange.Start, p.VisibleRange.End, p.Interval)...)
		}
		pts = append(pts, p.EndDay)
		sources = append(sources, pts)
	}

	grid := mergeSorted(sources, p.MaxPoints)

	if p.CurrentDay != nil {
		grid = insertSorted(grid, *p.CurrentDay)
	}
	if n := len(grid); n == 0 || grid[n-1] != p.EndDay {
		grid = insertSorted(grid, p.EndDay)
	}

	if p.MaxPoints > 0 && len(grid) > p.MaxPoints {
		return nil, fmt.Errorf("timegrid: grid of %d points exceeds MaxGridPoints=%d", len(grid), p.MaxPoints)
	}
	return grid, nil
}

func uniformPoints(start, end, interval float64) []float64 {
	var out []float64
	for t := start; t < end; t += interval {
		out = append(out, t)
	}
	if len(out) == 0 || out[len(out)-1] != end {
		out = append(out, end)
	}
	return out
}

func rangePoints(start, end, interval float64) []float64 {
	var out []float64
	for t := start; t <= end; t += interval {
		out = append(out, t)
	}
	return out
}

// mergeSorted k-way merges already-sorted point sources via container/heap
// — the pattern the teacher's event-queue core uses for ordered merging —
// and dedupes equal values as it drains the heap.
func mergeSorted(sources [][]float64, hint int) []float64 {
	h := &pointHeap{}
	if hint > 0 {
		*h = make(pointHeap, 0, hint)
	}
	for si, s := range sources {
		if len(s) == 0 {
			continue
		}
		heap.Push(h, pointItem{value: s[0], source: si, index: 0})
	}
	heap.Init(h)

	var out []float64
	for h.Len() > 0 {
		item := heap.Pop(h).(pointItem)
		if len(out) == 0 || out[len(out)-1] != item.value {
			out = append(out, item.value)
		}
		src := sources[item.source]
		if item.index+1 < len(src) {
			heap.Push(h, pointItem{value: src[item.index+1], source: item.source, index: item.index + 1})
		}
	}
	return out
}

func insertSorted(grid []float64, t float64) []float64 {
	i := sort.SearchFloat64s(grid, t)
	if i < len(grid) && grid[i] == t {
		return grid
	}
	grid = append(grid, 0)
	copy(grid[i+1:], grid[i:])
	grid[i] = t
	return grid
}

type pointItem struct {
	value  float64
	source int
	index  int
}

type pointHeap []pointItem

func (h pointHeap) Len() int            { return len(h) }
func (h pointHeap) Less(i, j int) bool  { return h[i].value < h[j].value }
func (h pointHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pointHeap) Push(x interface{}) { *h = append(*h, x.(pointItem)) }
func (h *pointHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
