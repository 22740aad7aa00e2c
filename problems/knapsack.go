package problems

import "fmt"

// Item is a knapsack item.
type Item struct {
	Weight int
	Value  int
}

// Knapsack is a 0/1 selection over items under a weight capacity.
// Every state produced by Successors stays within capacity.
type Knapsack struct {
	items    []Item
	capacity int
	take     []bool
}

// NewKnapsack validates the instance and the initial selection.
// A nil take starts from the empty selection.
func NewKnapsack(items []Item, capacity int, take []bool) (Knapsack, error) {
	if capacity < 0 {
		return Knapsack{}, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	for i, it := range items {
		if it.Weight < 0 || it.Value < 0 {
			return Knapsack{}, fmt.Errorf("%w: item %d = %+v", ErrInvalidItem, i, it)
		}
	}
	if take == nil {
		take = make([]bool, len(items))
	}
	if len(take) != len(items) {
		return Knapsack{}, fmt.Errorf("%w: %d flags for %d items", ErrDimensionMismatch, len(take), len(items))
	}

	k := Knapsack{
		items:    append([]Item(nil), items...),
		capacity: capacity,
		take:     append([]bool(nil), take...),
	}
	if w := k.Weight(); w > capacity {
		return Knapsack{}, fmt.Errorf("%w: weight %d > capacity %d", ErrOverCapacity, w, capacity)
	}

	return k, nil
}

// Weight returns the total weight of the selected items.
func (k Knapsack) Weight() int {
	w := 0
	for i, it := range k.items {
		if k.take[i] {
			w += it.Weight
		}
	}

	return w
}

// Taken returns the indices of the selected items, ascending.
func (k Knapsack) Taken() []int {
	var out []int
	for i, t := range k.take {
		if t {
			out = append(out, i)
		}
	}

	return out
}

// Successors flips one item at a time, dropping selections over capacity.
func (k Knapsack) Successors() []Knapsack {
	w := k.Weight()
	out := make([]Knapsack, 0, len(k.items))
	for i, it := range k.items {
		if !k.take[i] && w+it.Weight > k.capacity {
			continue
		}
		next := append([]bool(nil), k.take...)
		next[i] = !next[i]
		out = append(out, Knapsack{items: k.items, capacity: k.capacity, take: next})
	}

	return out
}

// Evaluate returns the total value of the selection.
func (k Knapsack) Evaluate() int {
	v := 0
	for i, it := range k.items {
		if k.take[i] {
			v += it.Value
		}
	}

	return v
}
