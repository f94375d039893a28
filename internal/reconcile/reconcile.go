package reconcile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"adaptive-mapper/internal/flatten"
	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/xmltree"
)

// Codec decodes the items echoed back in a write response.
type Codec[T metadata.Entity] interface {
	flatten.Codec[T]
}

// Option configures a Reconciler.
type Option func(*settings)

type settings struct {
	logger *zap.Logger
	byType bool
}

// WithLogger sets the logger used for the per-response summary.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMessagesByType files response messages under their type attribute
// instead of DefaultMessageCategory.
func WithMessagesByType() Option {
	return func(s *settings) {
		s.byType = true
	}
}

// Reconciler classifies write responses for one item type.
type Reconciler[T metadata.Entity] struct {
	codec  Codec[T]
	logger *zap.Logger
	byType bool
}

// New creates a Reconciler for codec.
func New[T metadata.Entity](codec Codec[T], opts ...Option) *Reconciler[T] {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	return &Reconciler[T]{codec: codec, logger: s.logger, byType: s.byType}
}

// Reconcile matches the response to the requested working set. requested is
// only read.
func (r *Reconciler[T]) Reconcile(requested *metadata.List[T], response *etree.Element) (*Outcome[T], error) {
	if response == nil {
		return nil, &ProtocolError{Reason: "empty response"}
	}

	flag, ok := xmltree.StringAttr(response, xmltree.AttrSuccess)
	if !ok {
		return nil, &ProtocolError{Path: xmltree.Path(response), Reason: "missing success attribute"}
	}

	out := newOutcome[T](flag == "true")

	if err := r.readMessages(response, out); err != nil {
		return nil, err
	}

	pairs, err := flatten.Pairs(response, r.codec)
	if err != nil {
		return nil, fmt.Errorf("reading returned %s items: %w", r.codec.ItemTag(), err)
	}

	m := newMatcher(requested)

	for _, p := range pairs {
		out.All.Append(p.Item)

		if err := r.classify(p, m, out); err != nil {
			return nil, err
		}
	}

	r.logger.Info("reconciled write response",
		zap.String("item", r.codec.ItemTag()),
		zap.Bool("success", out.Success),
		zap.Int("returned", out.All.Len()),
		zap.Int("modified", out.Modified.Len()),
		zap.Int("failed", out.Failed().Len()))

	return out, nil
}

func (r *Reconciler[T]) readMessages(response *etree.Element, out *Outcome[T]) error {
	for _, el := range response.FindElements(".//messages/" + xmltree.TagMessage) {
		kind, ok := xmltree.StringAttr(el, xmltree.AttrType)
		if !ok {
			return &ProtocolError{Path: xmltree.Path(el), Reason: "message without type"}
		}

		text := strings.TrimSpace(el.Text())
		if text == "" {
			return &ProtocolError{Path: xmltree.Path(el), Reason: "message without text"}
		}

		category := DefaultMessageCategory
		if r.byType {
			category = kind
		}

		out.addMessage(category, text)
	}

	return nil
}

// classify files one returned item by its own status, then by the status of
// each of its attribute overlays. Any failure keeps it out of Modified.
func (r *Reconciler[T]) classify(p flatten.Pair[T], m *matcher, out *Outcome[T]) error {
	id := p.Item.Meta().ID
	if !m.match(id) {
		return &ProtocolError{Path: xmltree.Path(p.Element), ID: id, Reason: "returned item was not requested"}
	}

	status, err := statusOf(p.Element, id)
	if err != nil {
		return err
	}

	failed := false

	switch status {
	case StatusAccepted:
		out.accept(p.Item)
	case StatusFailed:
		reason, err := failureOf(p.Element, id)
		if err != nil {
			return err
		}

		out.fail(reason, p.Item)
		failed = true
	}

	for _, a := range p.Item.Meta().Attributes() {
		el := attributeElement(p.Element, a.AttributeID)
		if el == nil {
			return &ProtocolError{
				Path:   xmltree.Path(p.Element),
				ID:     id,
				Reason: fmt.Sprintf("attribute %d not found", a.AttributeID),
			}
		}

		// an overlay without a status was left as is
		if _, ok := xmltree.StringAttr(el, xmltree.AttrStatus); !ok {
			continue
		}

		status, err := statusOf(el, id)
		if err != nil {
			return err
		}

		switch status {
		case StatusAccepted:
			if !failed {
				out.accept(p.Item)
			}
		case StatusFailed:
			reason, err := failureOf(el, id)
			if err != nil {
				return err
			}

			out.fail(reason, p.Item)
			failed = true
		}
	}

	if failed {
		r.logger.Debug("item failed",
			zap.String("item", r.codec.ItemTag()),
			zap.Int("id", id),
			zap.Strings("reasons", out.ErrorFor(p.Item)))
	}

	return nil
}

func statusOf(el *etree.Element, id int) (Status, error) {
	raw, ok := xmltree.StringAttr(el, xmltree.AttrStatus)
	if !ok {
		return 0, &ProtocolError{Path: xmltree.Path(el), ID: id, Reason: "missing status attribute"}
	}

	status, ok := ParseStatus(raw)
	if !ok {
		return 0, &ProtocolError{Path: xmltree.Path(el), ID: id, Reason: fmt.Sprintf("unknown status %q", raw)}
	}

	return status, nil
}

func failureOf(el *etree.Element, id int) (string, error) {
	msg, ok := xmltree.StringAttr(el, xmltree.AttrMessage)
	if !ok || msg == "" {
		return "", &ProtocolError{Path: xmltree.Path(el), ID: id, Reason: "error status without message"}
	}

	return msg, nil
}

// attributeElement finds the overlay element for attributeID among el's own
// <attributes> children.
func attributeElement(el *etree.Element, attributeID int) *etree.Element {
	want := strconv.Itoa(attributeID)

	for _, container := range el.SelectElements(xmltree.TagAttributes) {
		for _, a := range container.SelectElements(xmltree.TagAttribute) {
			if strings.TrimSpace(a.SelectAttrValue(xmltree.AttrAttributeID, "")) == want {
				return a
			}
		}
	}

	return nil
}

// matcher decides whether a returned id was part of the request: a
// working-set item, or an ancestor sent as a stub. Each unsaved item in the
// request may account for one returned id the request did not carry.
type matcher struct {
	ids     map[int]bool
	unsaved int
}

func newMatcher[T metadata.Entity](requested *metadata.List[T]) *matcher {
	m := &matcher{ids: map[int]bool{}}

	for _, e := range requested.Items() {
		if id := e.Meta().ID; id > 0 {
			m.ids[id] = true
		} else {
			m.unsaved++
		}

		for _, anc := range metadata.Ancestors(e) {
			if id := anc.Meta().ID; id > 0 {
				m.ids[id] = true
			}
		}
	}

	return m
}

func (m *matcher) match(id int) bool {
	if id > 0 && m.ids[id] {
		return true
	}

	if m.unsaved > 0 && id > 0 {
		m.unsaved--
		m.ids[id] = true

		return true
	}

	return false
}
