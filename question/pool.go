package question

import (
	"math/rand"
	"time"
)

// Pool holds the loaded items and the active category filter
// Pool is owned by the loop goroutine and is not safe for concurrent use
type Pool struct {
	items  []Item
	filter Filter
	rng    *rand.Rand
}

// NewPool creates an empty pool with the given filter
// seed 0 seeds from the clock
func NewPool(filter Filter, seed int64) *Pool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Pool{
		filter: filter,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Load replaces the pool contents
func (p *Pool) Load(items []Item) {
	p.items = make([]Item, len(items))
	copy(p.items, items)
}

// Loaded reports whether any item is available
func (p *Pool) Loaded() bool {
	return len(p.items) > 0
}

// Len returns the number of loaded items
func (p *Pool) Len() int {
	return len(p.items)
}

// Filter returns the active filter
func (p *Pool) Filter() Filter {
	return p.filter
}

// SetFilter replaces the active filter
func (p *Pool) SetFilter(f Filter) {
	p.filter = f
}

// ToggleCategory applies Filter.Toggle to the active filter and returns the result
func (p *Pool) ToggleCategory(tag string) Filter {
	p.filter = p.filter.Toggle(tag)
	return p.filter
}

// SelectRandom picks one item uniformly from those matching the filter
// Falls back to the whole pool when nothing matches, and to Placeholder when empty
func (p *Pool) SelectRandom() Item {
	if len(p.items) == 0 {
		return Placeholder
	}

	candidates := p.items
	if !p.filter.IsAll() {
		matched := make([]Item, 0, len(p.items))
		for _, it := range p.items {
			if p.filter.Matches(it.Category) {
				matched = append(matched, it)
			}
		}
		if len(matched) > 0 {
			candidates = matched
		}
	}

	return candidates[int(p.rng.Float64()*float64(len(candidates)))]
}
