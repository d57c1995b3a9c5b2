package delaunay

import (
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
)

// The registry pairs each user value with its position and an identity. The
// identity is the record's index, so identities are dense and follow
// insertion order.
type record[V any] struct {
	value  V
	vertex advanced.Vertex
}

type registry[V any] struct {
	records []record[V]
}

// Register a value, returning the new registry and the vertex the engine
// should insert. The receiver is left alone. Appending through a full slice
// expression always copies, so two triangulations grown from the same one
// never write into a shared backing array.
func (r registry[V]) register(value V, position geom.Point) (registry[V], advanced.Vertex) {
	vertex := advanced.Vertex{ID: len(r.records), Position: position}
	records := append(r.records[:len(r.records):len(r.records)], record[V]{value: value, vertex: vertex})
	return registry[V]{records: records}, vertex
}

// Find the record at exactly this position, if any. This is a linear scan;
// insertion is already linear in the face count, so it doesn't change the
// complexity.
func (r registry[V]) find(position geom.Point) (record[V], bool) {
	for _, rec := range r.records {
		if rec.vertex.Position == position {
			return rec, true
		}
	}
	return record[V]{}, false
}

func (r registry[V]) Len() int {
	return len(r.records)
}

func (r registry[V]) value(id int) V {
	return r.records[id].value
}

func (r registry[V]) position(id int) geom.Point {
	return r.records[id].vertex.Position
}
