package metadata

import (
	"fmt"
	"slices"
)

// Entity is implemented by every hierarchical item type through an embedded Node.
type Entity interface {
	Meta() *Node
}

// Equaler is implemented by item types that compare by value rather than identity.
type Equaler interface {
	Equal(other Entity) bool
}

// Node holds the structural part of an item.
//
// ID is 0 until the remote system assigns one on creation.
type Node struct {
	ID int

	parent     Entity
	children   []Entity
	attributes []Attribute
}

// Meta returns n itself; embedding Node makes a type an Entity.
func (n *Node) Meta() *Node {
	return n
}

// Parent returns the parent item, or nil for a root.
func (n *Node) Parent() Entity {
	return n.parent
}

// ParentID returns the parent's identifier, or 0 for a root.
func (n *Node) ParentID() int {
	if n.parent == nil {
		return 0
	}

	return n.parent.Meta().ID
}

// Children returns the items that list n as their parent, in registration order.
func (n *Node) Children() []Entity {
	return slices.Clone(n.children)
}

// Attributes returns a copy of the attribute overlays in insertion order.
func (n *Node) Attributes() []Attribute {
	return slices.Clone(n.attributes)
}

// Attribute returns the overlay stored for attributeID.
func (n *Node) Attribute(attributeID int) (Attribute, bool) {
	i := n.attributeIndex(attributeID)
	if i < 0 {
		return Attribute{}, false
	}

	return n.attributes[i], true
}

// SetAttribute stores a copy of a, replacing any overlay with the same AttributeID.
func (n *Node) SetAttribute(a Attribute) {
	if i := n.attributeIndex(a.AttributeID); i >= 0 {
		n.attributes[i] = a
		return
	}

	n.attributes = append(n.attributes, a)
}

// RemoveAttribute replaces the overlay for attributeID with a cleared copy.
// The slot stays so the removal is sent to the remote system.
func (n *Node) RemoveAttribute(attributeID int) error {
	i := n.attributeIndex(attributeID)
	if i < 0 {
		return &NotFoundError{What: "attribute", ID: attributeID}
	}

	n.attributes[i] = n.attributes[i].Cleared()

	return nil
}

// SameMeta compares identifiers and overlays; links are not compared.
func (n *Node) SameMeta(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.ID == other.ID && slices.Equal(n.attributes, other.attributes)
}

func (n *Node) attributeIndex(attributeID int) int {
	return slices.IndexFunc(n.attributes, func(a Attribute) bool {
		return a.AttributeID == attributeID
	})
}

func (n *Node) removeChild(child *Node) {
	n.children = slices.DeleteFunc(n.children, func(e Entity) bool {
		return e.Meta() == child
	})
}

func (n *Node) hasChild(child *Node) bool {
	return slices.ContainsFunc(n.children, func(e Entity) bool {
		return e.Meta() == child
	})
}

// SetParent makes parent the parent of child and registers child in
// parent's children. A nil parent detaches child. Assignments that would
// close a cycle are rejected and leave both items untouched.
func SetParent(child, parent Entity) error {
	c := child.Meta()

	if parent != nil {
		for p := parent; p != nil; p = p.Meta().parent {
			if p.Meta() == c {
				return fmt.Errorf("set parent of %d to %d: %w", c.ID, parent.Meta().ID, ErrCycle)
			}
		}
	}

	if c.parent != nil {
		c.parent.Meta().removeChild(c)
	}

	c.parent = parent

	if parent != nil && !parent.Meta().hasChild(c) {
		pm := parent.Meta()
		pm.children = append(pm.children, child)
	}

	return nil
}

// Ancestors returns the parent chain of e, nearest first.
func Ancestors(e Entity) []Entity {
	var out []Entity
	for p := e.Meta().parent; p != nil; p = p.Meta().parent {
		out = append(out, p)
	}

	return out
}

// Depth returns the number of ancestors of e.
func Depth(e Entity) int {
	d := 0
	for p := e.Meta().parent; p != nil; p = p.Meta().parent {
		d++
	}

	return d
}

// Root returns the top of e's parent chain, e itself for a root.
func Root(e Entity) Entity {
	for e.Meta().parent != nil {
		e = e.Meta().parent
	}

	return e
}

// Equal reports whether a and b are the same item, by value when the type
// implements Equaler and by identity otherwise.
func Equal(a, b Entity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}

	return a.Meta() == b.Meta()
}
