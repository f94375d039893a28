package build

import (
	"slices"

	"adaptive-mapper/internal/metadata"
)

// nodeKey identifies a position in the payload. Items with an id share a
// position by id; new items without one are keyed by identity.
type nodeKey struct {
	id   int
	node *metadata.Node
}

func keyOf(e metadata.Entity) nodeKey {
	m := e.Meta()
	if m.ID > 0 {
		return nodeKey{id: m.ID}
	}

	return nodeKey{node: m}
}

type node[T metadata.Entity] struct {
	entity   metadata.Entity
	item     T
	full     bool
	children []*node[T]
}

// forest is the payload shape before it is written out.
type forest[T metadata.Entity] struct {
	nodes  map[nodeKey]*node[T]
	roots  []*node[T]
	placed map[*metadata.Node]bool
}

func newForest[T metadata.Entity]() *forest[T] {
	return &forest[T]{
		nodes:  map[nodeKey]*node[T]{},
		placed: map[*metadata.Node]bool{},
	}
}

// place adds e and every missing ancestor. An ancestor already placed keeps
// its position; if it is reached again as a working-set item it is upgraded
// to a full element.
func (f *forest[T]) place(e T) {
	if f.placed[e.Meta()] {
		return
	}

	f.placed[e.Meta()] = true

	chain := append([]metadata.Entity{e}, metadata.Ancestors(e)...)
	slices.Reverse(chain)

	var parent *node[T]

	for _, x := range chain {
		k := keyOf(x)

		n, ok := f.nodes[k]
		if !ok {
			n = &node[T]{entity: x}
			f.nodes[k] = n

			if parent == nil {
				f.roots = append(f.roots, n)
			} else {
				parent.children = append(parent.children, n)
			}
		}

		parent = n
	}

	parent.entity = e
	parent.item = e
	parent.full = true
}
