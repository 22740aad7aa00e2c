package problems

// Quadratic is an integer state on the parabola -x(x-2)+1, which peaks at
// x=1 with score 2. Its neighbours are x-1 and x+1.
type Quadratic int

// Successors returns x-1 and x+1, in that order.
func (q Quadratic) Successors() []Quadratic {
	return []Quadratic{q - 1, q + 1}
}

// Evaluate returns -x(x-2)+1.
func (q Quadratic) Evaluate() int {
	x := int(q)

	return -x*(x-2) + 1
}
