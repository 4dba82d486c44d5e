// SPDX-License-Identifier: MIT

package metrics

import (
	"sort"

	"github.com/samber/lo"
)

// Collector keeps the best Solutions seen so far, ordered by Less.
//
// With a positive limit the buffer is bounded: a candidate that does not
// beat the current worst is dropped, otherwise the worst is evicted. With
// Unique set, candidates whose Topology renders identically to a kept one
// are dropped; the earlier one wins because it ranks first on ties.
type Collector struct {
	limit  int
	unique bool
	items  []Solution
	keys   map[string]int
	seen   int
}

// NewCollector returns a Collector keeping at most limit solutions;
// limit <= 0 means unbounded.
func NewCollector(limit int) *Collector {
	if limit < 0 {
		limit = 0
	}

	return &Collector{limit: limit}
}

// Unique enables dropping candidates with an already kept Topology string.
// It returns c for chaining.
func (c *Collector) Unique() *Collector {
	c.unique = true
	if c.keys == nil {
		c.keys = make(map[string]int)
	}

	return c
}

// Add offers s to the buffer and reports whether it was kept.
// Complexity: O(log k + k) for k kept solutions.
func (c *Collector) Add(s Solution) bool {
	c.seen++
	var key string
	if c.unique && s.Topology != nil {
		key = s.Topology.String()
		if c.keys[key] > 0 {
			return false
		}
	}
	if c.limit > 0 && len(c.items) == c.limit && !Less(s, c.items[len(c.items)-1]) {
		return false
	}

	pos := sort.Search(len(c.items), func(i int) bool { return Less(s, c.items[i]) })
	c.items = append(c.items, Solution{})
	copy(c.items[pos+1:], c.items[pos:])
	c.items[pos] = s
	if c.unique && s.Topology != nil {
		c.keys[key]++
	}

	if c.limit > 0 && len(c.items) > c.limit {
		evicted := c.items[len(c.items)-1]
		c.items = c.items[:len(c.items)-1]
		if c.unique && evicted.Topology != nil {
			k := evicted.Topology.String()
			if c.keys[k]--; c.keys[k] <= 0 {
				delete(c.keys, k)
			}
		}
	}

	return true
}

// Len returns the number of kept solutions.
func (c *Collector) Len() int { return len(c.items) }

// Offered returns how many candidates were passed to Add.
func (c *Collector) Offered() int { return c.seen }

// BestError returns the smallest absolute error kept, or +Inf if empty.
func (c *Collector) BestError() float64 {
	if len(c.items) == 0 {
		return RelativeErrorUndefined
	}

	return c.items[0].AbsoluteError
}

// Solutions returns a ranked copy of the kept solutions.
func (c *Collector) Solutions() []Solution {
	out := make([]Solution, len(c.items))
	copy(out, c.items)

	return out
}

// Result is the outcome of one search.
type Result struct {
	Solutions []Solution // ranked best first, truncated to the requested size
	Processed int        // work units completed
	Total     int        // work units planned, 0 if unknown
	Cancelled bool       // the progress callback or context stopped the run
}

// Best returns the top-ranked solution, if any.
func (r Result) Best() (Solution, bool) {
	if len(r.Solutions) == 0 {
		return Solution{}, false
	}

	return r.Solutions[0], true
}

// WithinTolerance returns the solutions flagged within tolerance, in rank
// order.
func (r Result) WithinTolerance() []Solution {
	return lo.Filter(r.Solutions, func(s Solution, _ int) bool { return s.WithinTolerance })
}

// Values returns the Ceq of every solution in rank order.
func (r Result) Values() []float64 {
	return lo.Map(r.Solutions, func(s Solution, _ int) float64 { return s.Ceq })
}
