package metadata

import (
	"iter"
	"slices"
)

// List is an ordered collection of items of one type. Insertion order is
// kept; duplicates are allowed unless AppendUnique is used.
type List[T Entity] struct {
	items []T
}

// NewList creates a List holding items in the given order.
func NewList[T Entity](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Append adds items at the end.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// AppendUnique adds e unless an equal item is already present.
// It returns true if e was added.
func (l *List[T]) AppendUnique(e T) bool {
	if l.Contains(e) {
		return false
	}

	l.items = append(l.items, e)

	return true
}

// Remove deletes the first item equal to e.
func (l *List[T]) Remove(e T) error {
	i := l.IndexOf(e)
	if i < 0 {
		return &NotFoundError{What: "list item", ID: e.Meta().ID}
	}

	l.items = slices.Delete(l.items, i, i+1)

	return nil
}

// IndexOf returns the position of the first item equal to e, or -1.
func (l *List[T]) IndexOf(e T) int {
	if l == nil {
		return -1
	}

	return slices.IndexFunc(l.items, func(it T) bool {
		return Equal(it, e)
	})
}

// Contains returns true if an item equal to e is present.
func (l *List[T]) Contains(e T) bool {
	return l.IndexOf(e) >= 0
}

// At returns the item at position i. It panics when i is out of range.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return len(l.items)
}

// Items returns a copy of the items in insertion order.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}

	return slices.Clone(l.items)
}

// All iterates over positions and items in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}

		for i, it := range l.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Equal returns true if both lists hold equal items in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.Len() != other.Len() {
		return false
	}

	for i := range l.Len() {
		if !Equal(l.items[i], other.items[i]) {
			return false
		}
	}

	return true
}

// FindByID returns the first item with the given identifier.
func (l *List[T]) FindByID(id int) (T, bool) {
	if l != nil {
		for _, it := range l.items {
			if it.Meta().ID == id {
				return it, true
			}
		}
	}

	var zero T

	return zero, false
}

// IDs returns the identifiers of all items in order.
func (l *List[T]) IDs() []int {
	out := make([]int, 0, l.Len())
	for _, it := range l.Items() {
		out = append(out, it.Meta().ID)
	}

	return out
}
