package advanced

// A directed edge between two face corners. Either end may be an outer corner.
type edge struct {
	start, end Vertex
}

// Edges are keyed without regard to direction, so the edge a cavity face
// shares with its neighbour produces the same key from both sides. The larger
// id goes first.
type edgeKey struct {
	hi, lo int
}

func keyOf(e edge) edgeKey {
	a, b := e.start.ID, e.end.ID
	if a < b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// cavityBoundary collects the edges of the cavity faces. Adding an edge that is
// already present removes it instead: an edge seen twice is shared by two
// cavity faces, so it's inside the cavity. Whatever survives is the boundary.
//
// The surviving edges keep the order in which they were first added, so
// insertion results don't depend on map iteration order.
type cavityBoundary struct {
	edges []edge
	live  []bool
	index map[edgeKey]int
	count int
}

func newCavityBoundary() *cavityBoundary {
	return &cavityBoundary{index: make(map[edgeKey]int)}
}

func (b *cavityBoundary) toggle(e edge) {
	key := keyOf(e)
	if i, ok := b.index[key]; ok {
		b.live[i] = false
		delete(b.index, key)
		b.count--
		return
	}
	b.index[key] = len(b.edges)
	b.edges = append(b.edges, e)
	b.live = append(b.live, true)
	b.count++
}

func (b *cavityBoundary) addFace(f Face) {
	for _, e := range f.edges() {
		b.toggle(e)
	}
}

func (b *cavityBoundary) Len() int {
	return b.count
}

// Edges returns the surviving boundary edges, still directed as they were in
// their cavity face (counterclockwise around the cavity).
func (b *cavityBoundary) Edges() []edge {
	result := make([]edge, 0, b.count)
	for i, e := range b.edges {
		if b.live[i] {
			result = append(result, e)
		}
	}
	return result
}
