package virtual

import "fmt"

// Range is an inclusive span of item indices. An empty collection yields a
// Range with End < Start.
type Range struct {
	Start, End int
}

// emptyRange is the degenerate range returned for empty collections.
var emptyRange = Range{Start: 0, End: -1}

// Empty reports whether the range covers no items.
func (r Range) Empty() bool {
	return r.End < r.Start
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether index lies inside the range.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index <= r.End
}

func (r Range) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d..%d]", r.Start, r.End)
}

// Calculator maps a scroll position and viewport height to the range of items
// that must be mounted.
type Calculator interface {
	// Compute returns the mounted range, overscan included.
	Compute(scroll, viewport float32) Range
	// OffsetOf returns the sum of the heights of items [0, index).
	OffsetOf(index int) float32
	// TotalHeight returns the sum of all item heights.
	TotalHeight() float32
	// Invalidate tells the calculator that heights at index >= from changed.
	Invalidate(from int)
	// SetLen replaces the collection length and drops all derived offsets.
	SetLen(n int)
	// Len returns the collection length.
	Len() int
}

// LinearCalculator walks cumulative heights from index 0 on every query.
// The cost is proportional to the number of items before the end of the
// viewport, which is fine for order lists and team rosters.
type LinearCalculator struct {
	heights  HeightSource
	n        int
	overscan int

	total      float32
	totalValid bool
}

// NewLinearCalculator creates a calculator over n items.
func NewLinearCalculator(heights HeightSource, n, overscan int) *LinearCalculator {
	return &LinearCalculator{heights: heights, n: n, overscan: overscan}
}

// Compute implements Calculator.
//
// The raw start is the first item whose bottom edge lies strictly below the
// scroll offset, so an item starting exactly at the offset is the first one
// counted. The raw end is the first item at or after the start whose bottom
// edge lies strictly below scroll+viewport, or the last item when the walk
// runs off the end.
func (c *LinearCalculator) Compute(scroll, viewport float32) Range {
	if c.n == 0 {
		return emptyRange
	}

	start := -1
	var acc, startOffset float32
	for i := 0; i < c.n; i++ {
		top := acc
		bottom := top + c.heights.HeightOf(i)
		startOffset = top
		if bottom > scroll {
			start = i
			break
		}
		acc = bottom
	}
	if start < 0 {
		// Scrolled past the content: keep the last item mounted.
		start = c.n - 1
	}

	end := c.n - 1
	limit := scroll + viewport
	acc = startOffset
	for j := start; j < c.n; j++ {
		bottom := acc + c.heights.HeightOf(j)
		if bottom > limit {
			end = j
			break
		}
		acc = bottom
	}

	return applyOverscan(start, end, c.overscan, c.n)
}

// OffsetOf implements Calculator.
func (c *LinearCalculator) OffsetOf(index int) float32 {
	var acc float32
	for i := 0; i < index && i < c.n; i++ {
		acc += c.heights.HeightOf(i)
	}
	return acc
}

// TotalHeight implements Calculator.
func (c *LinearCalculator) TotalHeight() float32 {
	if !c.totalValid {
		c.total = c.OffsetOf(c.n)
		c.totalValid = true
	}
	return c.total
}

// Invalidate implements Calculator. Offsets are never stored, only the total.
func (c *LinearCalculator) Invalidate(from int) {
	c.totalValid = false
}

// SetLen implements Calculator.
func (c *LinearCalculator) SetLen(n int) {
	c.n = n
	c.totalValid = false
}

// Len implements Calculator.
func (c *LinearCalculator) Len() int {
	return c.n
}

// applyOverscan widens a raw range by overscan items on both sides, clamped to
// the collection bounds.
func applyOverscan(start, end, overscan, n int) Range {
	start -= overscan
	if start < 0 {
		start = 0
	}
	end += overscan
	if end > n-1 {
		end = n - 1
	}
	return Range{Start: start, End: end}
}
