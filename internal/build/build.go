package build

import (
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/xmltree"
)

// Codec encodes the scalar fields of a concrete item type.
type Codec[T metadata.Entity] interface {
	ItemTag() string
	ContainerTag() string
	// Encode returns the declared scalar fields, without the id.
	Encode(e T) []etree.Attr
}

// Option configures a Builder.
type Option func(*settings)

type settings struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for validation warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Builder serializes working sets of one item type.
type Builder[T metadata.Entity] struct {
	codec  Codec[T]
	logger *zap.Logger
}

// New creates a Builder for codec.
func New[T metadata.Entity](codec Codec[T], opts ...Option) *Builder[T] {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	return &Builder[T]{codec: codec, logger: s.logger}
}

// Build is shorthand for New(codec).Build(ws, op).
func Build[T metadata.Entity](ws *metadata.List[T], op Operation, codec Codec[T]) (*etree.Element, error) {
	return New(codec).Build(ws, op)
}

// Validate checks ws without building anything.
func (b *Builder[T]) Validate(ws *metadata.List[T], op Operation) *ValidationError {
	diags := Validate(ws, op, b.codec.ItemTag())

	for _, w := range diags.Warnings {
		b.logger.Warn("working set warning",
			zap.String("code", w.Code),
			zap.String("item", w.Subject),
			zap.String("message", w.Message))
	}

	for _, i := range diags.Infos {
		b.logger.Debug("working set info",
			zap.String("code", i.Code),
			zap.String("item", i.Subject),
			zap.String("path", i.Path))
	}

	if diags.HasErrors() {
		return &ValidationError{Op: op, Diagnostics: diags}
	}

	return nil
}

// Build validates ws and returns the payload tree rooted at the codec's
// container tag.
func (b *Builder[T]) Build(ws *metadata.List[T], op Operation) (*etree.Element, error) {
	if verr := b.Validate(ws, op); verr != nil {
		return nil, verr
	}

	f := newForest[T]()
	for _, e := range ws.Items() {
		f.place(e)
	}

	root := etree.NewElement(b.codec.ContainerTag())

	stubs := 0
	for _, n := range f.roots {
		stubs += b.write(root, n)
	}

	b.logger.Debug("built payload",
		zap.String("operation", string(op)),
		zap.String("container", b.codec.ContainerTag()),
		zap.Int("items", len(f.placed)),
		zap.Int("stubs", stubs))

	return root, nil
}

// Preview returns the indented payload for review before it is sent.
func (b *Builder[T]) Preview(ws *metadata.List[T], op Operation) (string, error) {
	root, err := b.Build(ws, op)
	if err != nil {
		return "", err
	}

	return xmltree.String(root, xmltree.DefaultIndent)
}

// write appends n's element under parent and returns the number of stubs written.
func (b *Builder[T]) write(parent *etree.Element, n *node[T]) int {
	el := parent.CreateElement(b.codec.ItemTag())

	m := n.entity.Meta()
	if m.ID > 0 {
		el.CreateAttr(xmltree.AttrID, strconv.Itoa(m.ID))
	}

	stubs := 0
	if n.full {
		for _, a := range b.codec.Encode(n.item) {
			el.CreateAttr(a.Key, a.Value)
		}

		for _, a := range m.Attributes() {
			value := a.Value
			if a.IsCleared() {
				value = ""
			}

			ae := el.CreateElement(xmltree.TagAttribute)
			ae.CreateAttr(xmltree.AttrName, a.Name)
			ae.CreateAttr(xmltree.AttrValue, value)
		}
	} else {
		stubs++
	}

	for _, c := range n.children {
		stubs += b.write(el, c)
	}

	return stubs
}
