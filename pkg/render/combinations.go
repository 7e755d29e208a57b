package render

import (
	"github.com/arthur-debert/snippet/pkg/arguments"
)

// Combination assigns a value index to each multi-valued name
type Combination map[string]int

// Index returns the value index chosen for name, 0 when name is not multi-valued
func (c Combination) Index(name string) int {
	return c[name]
}

// Combinations iterates the cartesian product of the multi-valued names'
// index ranges. The last name varies fastest.
//
//	it := NewCombinations(bindings)
//	for it.Next() {
//		combo := it.Current()
//	}
type Combinations struct {
	names   []string
	sizes   []int
	indices []int
	started bool
	done    bool
}

// NewCombinations builds the iterator for bindings
func NewCombinations(bindings *arguments.Bindings) *Combinations {
	names := bindings.MultiValued()
	sizes := make([]int, len(names))
	for i, name := range names {
		values, _ := bindings.Values(name)
		sizes[i] = len(values)
	}
	return &Combinations{
		names:   names,
		sizes:   sizes,
		indices: make([]int, len(names)),
	}
}

// Next advances to the next combination and reports whether there is one.
// With no multi-valued names there is exactly one, empty, combination.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		return true
	}

	for i := len(c.indices) - 1; i >= 0; i-- {
		c.indices[i]++
		if c.indices[i] < c.sizes[i] {
			return true
		}
		c.indices[i] = 0
	}

	c.done = true
	return false
}

// Current returns the combination at the iterator position
func (c *Combinations) Current() Combination {
	combo := make(Combination, len(c.names))
	for i, name := range c.names {
		combo[name] = c.indices[i]
	}
	return combo
}

// Names returns the multi-valued names, outermost first
func (c *Combinations) Names() []string {
	return append([]string(nil), c.names...)
}

// Count returns the total number of combinations
func (c *Combinations) Count() int {
	count := 1
	for _, size := range c.sizes {
		count *= size
	}
	return count
}
