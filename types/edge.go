package types

// Edge is an undirected connection between two point indices, always
// stored with the smaller index first so Edge{a,b} == Edge{b,a} compares
// equal and can key a map.
type Edge [2]int

// NewEdge builds an Edge in canonical (min, max) order.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// A returns the smaller endpoint.
func (e Edge) A() int { return e[0] }

// B returns the larger endpoint.
func (e Edge) B() int { return e[1] }
