package virtual

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// IndexedCalculator answers range queries from a cumulative-offset index
// instead of walking from index 0 every time.
//
// Prefix sums are extended lazily, only as far as a query needs them, and an
// ordered tree maps every item's bottom edge to its index so that "first item
// whose bottom edge is below y" is a ceiling lookup. A height change at index i
// truncates the index at i; it is rebuilt on the next query that reaches it.
// Results are identical to LinearCalculator.
type IndexedCalculator struct {
	heights  HeightSource
	n        int
	overscan int

	// prefix[i] is the offset of item i. len(prefix)-1 items are indexed.
	prefix []float32
	// ends maps a bottom edge to the smallest index ending there. Zero-height
	// items share the bottom edge of their predecessor.
	ends *redblacktree.Tree
}

// NewIndexedCalculator creates an indexed calculator over n items.
func NewIndexedCalculator(heights HeightSource, n, overscan int) *IndexedCalculator {
	return &IndexedCalculator{
		heights:  heights,
		n:        n,
		overscan: overscan,
		prefix:   []float32{0},
		ends:     redblacktree.NewWith(utils.Float32Comparator),
	}
}

// Compute implements Calculator.
func (c *IndexedCalculator) Compute(scroll, viewport float32) Range {
	if c.n == 0 {
		return emptyRange
	}

	start, ok := c.firstEndingBelow(scroll)
	if !ok {
		start = c.n - 1
	}
	end, ok := c.firstEndingBelow(scroll + viewport)
	if !ok {
		end = c.n - 1
	}
	if end < start {
		end = start
	}

	return applyOverscan(start, end, c.overscan, c.n)
}

// firstEndingBelow returns the smallest index whose bottom edge is strictly
// greater than y.
func (c *IndexedCalculator) firstEndingBelow(y float32) (int, bool) {
	for c.indexed() < c.n && c.prefix[c.indexed()] <= y {
		c.extend()
	}
	node, found := c.ends.Ceiling(math.Nextafter32(y, float32(math.Inf(1))))
	if !found {
		return 0, false
	}
	return node.Value.(int), true
}

// OffsetOf implements Calculator.
func (c *IndexedCalculator) OffsetOf(index int) float32 {
	if index > c.n {
		index = c.n
	}
	for c.indexed() < index {
		c.extend()
	}
	return c.prefix[index]
}

// TotalHeight implements Calculator.
func (c *IndexedCalculator) TotalHeight() float32 {
	return c.OffsetOf(c.n)
}

// Invalidate implements Calculator.
func (c *IndexedCalculator) Invalidate(from int) {
	if from < 0 {
		from = 0
	}
	if from >= c.indexed() {
		return
	}
	for i := from; i < c.indexed(); i++ {
		bottom := c.prefix[i+1]
		if v, found := c.ends.Get(bottom); found && v.(int) >= from {
			c.ends.Remove(bottom)
		}
	}
	c.prefix = c.prefix[:from+1]
}

// SetLen implements Calculator.
func (c *IndexedCalculator) SetLen(n int) {
	c.n = n
	c.prefix = c.prefix[:1]
	c.ends.Clear()
}

// Len implements Calculator.
func (c *IndexedCalculator) Len() int {
	return c.n
}

// Indexed returns how many items currently have a cached offset.
func (c *IndexedCalculator) Indexed() int {
	return c.indexed()
}

func (c *IndexedCalculator) indexed() int {
	return len(c.prefix) - 1
}

// extend indexes one more item.
func (c *IndexedCalculator) extend() {
	i := c.indexed()
	bottom := c.prefix[i] + c.heights.HeightOf(i)
	c.prefix = append(c.prefix, bottom)
	if _, found := c.ends.Get(bottom); !found {
		c.ends.Put(bottom, i)
	}
}
