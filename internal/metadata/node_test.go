package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	Node
	Name string
}

func (t *testItem) Equal(other Entity) bool {
	o, ok := other.(*testItem)
	return ok && t.Name == o.Name && t.SameMeta(&o.Node)
}

func newItem(id int, name string) *testItem {
	return &testItem{Node: Node{ID: id}, Name: name}
}

func TestSetParent_Bidirectional(t *testing.T) {
	parent := newItem(1, "parent")
	child := newItem(2, "child")

	require.NoError(t, SetParent(child, parent))

	assert.Same(t, parent, child.Parent())
	require.Len(t, parent.Children(), 1)
	assert.Same(t, child, parent.Children()[0])
	assert.Equal(t, 1, child.ParentID())

	// A change made through the child's view is visible on the parent.
	through, ok := child.Parent().(*testItem)
	require.True(t, ok)
	through.Name = "new parent"
	assert.Equal(t, "new parent", parent.Name)
}

func TestSetParent_Reparent(t *testing.T) {
	first := newItem(1, "first")
	second := newItem(2, "second")
	child := newItem(3, "child")

	require.NoError(t, SetParent(child, first))
	require.NoError(t, SetParent(child, second))

	assert.Empty(t, first.Children())
	assert.Equal(t, []Entity{child}, second.Children())
	assert.Same(t, second, child.Parent())
}

func TestSetParent_Idempotent(t *testing.T) {
	parent := newItem(1, "parent")
	child := newItem(2, "child")

	require.NoError(t, SetParent(child, parent))
	require.NoError(t, SetParent(child, parent))

	assert.Len(t, parent.Children(), 1)
}

func TestSetParent_Detach(t *testing.T) {
	parent := newItem(1, "parent")
	child := newItem(2, "child")

	require.NoError(t, SetParent(child, parent))
	require.NoError(t, SetParent(child, nil))

	assert.Nil(t, child.Parent())
	assert.Empty(t, parent.Children())
	assert.Equal(t, 0, child.ParentID())
}

func TestSetParent_RejectsCycle(t *testing.T) {
	a := newItem(1, "a")
	b := newItem(2, "b")
	c := newItem(3, "c")

	require.NoError(t, SetParent(b, a))
	require.NoError(t, SetParent(c, b))

	err := SetParent(a, c)
	require.ErrorIs(t, err, ErrCycle)
	assert.Nil(t, a.Parent())

	require.ErrorIs(t, SetParent(a, a), ErrCycle)
}

func TestAncestorsDepthRoot(t *testing.T) {
	a := newItem(1, "a")
	b := newItem(2, "b")
	c := newItem(3, "c")

	require.NoError(t, SetParent(b, a))
	require.NoError(t, SetParent(c, b))

	assert.Equal(t, []Entity{b, a}, Ancestors(c))
	assert.Equal(t, 2, Depth(c))
	assert.Equal(t, 0, Depth(a))
	assert.Same(t, a, Root(c))
	assert.Same(t, a, Root(a))
}

func TestSetAttribute_ReplacesSameID(t *testing.T) {
	item := newItem(1, "item")
	first := Attribute{AttributeID: 7, Name: "color", ValueID: "20", Value: "blue"}
	second := Attribute{AttributeID: 7, Name: "color", ValueID: "21", Value: "red"}
	other := Attribute{AttributeID: 8, Name: "size", ValueID: "30", Value: "medium"}

	item.SetAttribute(first)
	item.SetAttribute(other)
	item.SetAttribute(second)

	attrs := item.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, second, attrs[0])
	assert.Equal(t, other, attrs[1])
}

func TestSetAttribute_CopiesValue(t *testing.T) {
	a := newItem(1, "a")
	b := newItem(2, "b")
	attr := Attribute{AttributeID: 1, Name: "color", ValueID: "20", Value: "blue"}

	a.SetAttribute(attr)
	b.SetAttribute(attr)
	require.NoError(t, a.RemoveAttribute(1))

	got, ok := b.Attribute(1)
	require.True(t, ok)
	assert.Equal(t, "20", got.ValueID)
}

func TestRemoveAttribute_KeepsCallerValue(t *testing.T) {
	attr := Attribute{AttributeID: 1, Name: "Test", ValueID: "2", Value: "Test Value"}
	item := newItem(1, "")

	item.SetAttribute(attr)
	assert.Equal(t, attr, item.Attributes()[0])

	require.NoError(t, item.RemoveAttribute(1))

	stored := item.Attributes()[0]
	assert.NotEqual(t, attr, stored)
	assert.Equal(t, ClearedValueID, stored.ValueID)
	assert.Equal(t, "Test", stored.Name)
	assert.True(t, stored.IsCleared())
	assert.Equal(t, "2", attr.ValueID)
}

func TestRemoveAttribute_Unknown(t *testing.T) {
	item := newItem(1, "")

	err := item.RemoveAttribute(99)
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 99, nf.ID)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(newItem(1, "x"), newItem(1, "x")))
	assert.False(t, Equal(newItem(1, "x"), newItem(1, "y")))
	assert.False(t, Equal(newItem(1, "x"), nil))
	assert.True(t, Equal(nil, nil))

	withAttr := newItem(1, "x")
	withAttr.SetAttribute(Attribute{AttributeID: 1, Name: "n"})
	assert.False(t, Equal(withAttr, newItem(1, "x")))

	plain := &Node{ID: 1}
	assert.True(t, Equal(plain, plain))
	assert.False(t, Equal(plain, &Node{ID: 1}))
}
