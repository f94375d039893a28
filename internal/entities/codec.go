package entities

import (
	"github.com/beevik/etree"

	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/xmltree"
)

// Field maps one scalar wire attribute to accessors on T.
type Field[T any] struct {
	Wire string
	Get  func(T) string
	Set  func(T, string)
}

// Codec is the field mapping of one item type.
type Codec[T metadata.Entity] struct {
	Name      string
	Item      string
	Container string
	Export    string
	Update    string
	New       func() T
	Fields    []Field[T]
}

// ItemTag returns the element name of one item.
func (c *Codec[T]) ItemTag() string { return c.Item }

// ContainerTag returns the element name wrapping top-level items.
func (c *Codec[T]) ContainerTag() string { return c.Container }

// ExportMethod returns the XML API method that exports items of this type.
func (c *Codec[T]) ExportMethod() string { return c.Export }

// UpdateMethod returns the XML API method that applies changes.
func (c *Codec[T]) UpdateMethod() string { return c.Update }

// Decode builds an item from el's own attributes.
func (c *Codec[T]) Decode(el *etree.Element) (T, error) {
	e := c.New()

	id, _, err := xmltree.IntAttr(el, xmltree.AttrID)
	if err != nil {
		var zero T
		return zero, err
	}

	e.Meta().ID = id

	for _, f := range c.Fields {
		f.Set(e, el.SelectAttrValue(f.Wire, ""))
	}

	return e, nil
}

// Encode returns the declared scalar fields of e in declaration order, empty
// ones included. The identifier is written by the builder and is not included.
func (c *Codec[T]) Encode(e T) []etree.Attr {
	out := make([]etree.Attr, 0, len(c.Fields))
	for _, f := range c.Fields {
		out = append(out, etree.Attr{Key: f.Wire, Value: f.Get(e)})
	}

	return out
}

// FieldValues returns the scalar fields of e keyed by wire name.
func (c *Codec[T]) FieldValues(e T) map[string]string {
	out := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		out[f.Wire] = f.Get(e)
	}

	return out
}
