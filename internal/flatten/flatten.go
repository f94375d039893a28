package flatten

import (
	"fmt"

	"github.com/beevik/etree"

	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/xmltree"
)

// Codec decodes one item element of a concrete type.
type Codec[T metadata.Entity] interface {
	// ItemTag is the element name of a single item, e.g. "account".
	ItemTag() string
	// Decode builds an item from el's own XML attributes. Nested elements
	// are handled by the flattener and must not be read.
	Decode(el *etree.Element) (T, error)
}

// Pair ties a decoded item to the element it was decoded from.
type Pair[T metadata.Entity] struct {
	Item    T
	Element *etree.Element
}

// Flatten returns every item below root in pre-order.
func Flatten[T metadata.Entity](root *etree.Element, codec Codec[T]) (*metadata.List[T], error) {
	pairs, err := Pairs(root, codec)
	if err != nil {
		return nil, err
	}

	list := metadata.NewList[T]()
	for _, p := range pairs {
		list.Append(p.Item)
	}

	return list, nil
}

// Pairs is Flatten that also returns the source element of each item.
func Pairs[T metadata.Entity](root *etree.Element, codec Codec[T]) ([]Pair[T], error) {
	if root == nil {
		return nil, nil
	}

	f := &flattener[T]{codec: codec, tag: codec.ItemTag()}
	if err := f.scan(root); err != nil {
		return nil, err
	}

	return f.out, nil
}

type flattener[T metadata.Entity] struct {
	codec Codec[T]
	tag   string
	out   []Pair[T]
}

// scan looks for the first item layer below el.
func (f *flattener[T]) scan(el *etree.Element) error {
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case f.tag:
			if err := f.item(child, nil); err != nil {
				return err
			}
		case xmltree.TagAttributes:
			// overlays outside an item have nothing to attach to
		default:
			if err := f.scan(child); err != nil {
				return err
			}
		}
	}

	return nil
}

func (f *flattener[T]) item(el *etree.Element, parent metadata.Entity) error {
	e, err := f.codec.Decode(el)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", xmltree.Path(el), err)
	}

	if parent != nil {
		if err := metadata.SetParent(e, parent); err != nil {
			return fmt.Errorf("linking %s: %w", xmltree.Path(el), err)
		}
	}

	f.out = append(f.out, Pair[T]{Item: e, Element: el})

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case f.tag:
			if err := f.item(child, e); err != nil {
				return err
			}
		case xmltree.TagAttributes:
			if err := attachAttributes(e.Meta(), child); err != nil {
				return err
			}
		}
	}

	return nil
}

func attachAttributes(n *metadata.Node, container *etree.Element) error {
	for _, el := range container.SelectElements(xmltree.TagAttribute) {
		a, err := DecodeAttribute(el)
		if err != nil {
			return err
		}

		n.SetAttribute(a)
	}

	return nil
}

// DecodeAttribute reads one <attribute attributeId name valueId value/> element.
func DecodeAttribute(el *etree.Element) (metadata.Attribute, error) {
	id, ok, err := xmltree.IntAttr(el, xmltree.AttrAttributeID)
	if err != nil {
		return metadata.Attribute{}, err
	}

	if !ok {
		return metadata.Attribute{}, fmt.Errorf("%s: missing %s", xmltree.Path(el), xmltree.AttrAttributeID)
	}

	return metadata.Attribute{
		AttributeID: id,
		Name:        el.SelectAttrValue(xmltree.AttrName, ""),
		ValueID:     el.SelectAttrValue(xmltree.AttrValueID, ""),
		Value:       el.SelectAttrValue(xmltree.AttrValue, ""),
	}, nil
}
