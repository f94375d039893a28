package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"adaptive-mapper/internal/build"
	"adaptive-mapper/internal/flatten"
	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/reconcile"
	"adaptive-mapper/internal/xmltree"
)

// Transport sends one XML API call and returns the parsed response root.
type Transport interface {
	Call(ctx context.Context, method string, payload *etree.Element) (*etree.Element, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, method string, payload *etree.Element) (*etree.Element, error)

func (f TransportFunc) Call(ctx context.Context, method string, payload *etree.Element) (*etree.Element, error) {
	return f(ctx, method, payload)
}

// Codec is everything a Service needs to know about one item type.
type Codec[T metadata.Entity] interface {
	build.Codec[T]
	flatten.Codec[T]
	ExportMethod() string
	UpdateMethod() string
}

// Include selects what an export returns.
type Include struct {
	Attributes                bool
	AttributeValueNames       bool
	AttributeValueDisplayName bool
}

// DefaultInclude asks for everything.
func DefaultInclude() Include {
	return Include{Attributes: true, AttributeValueNames: true, AttributeValueDisplayName: true}
}

func (i Include) element() *etree.Element {
	el := etree.NewElement("include")
	el.CreateAttr("attributes", strconv.FormatBool(i.Attributes))
	el.CreateAttr("include_attribute_value_names", strconv.FormatBool(i.AttributeValueNames))
	el.CreateAttr("include_attribute_value_display_names", strconv.FormatBool(i.AttributeValueDisplayName))

	return el
}

// Service exports and writes items of one type.
type Service[T metadata.Entity] struct {
	codec      Codec[T]
	transport  Transport
	builder    *build.Builder[T]
	reconciler *reconcile.Reconciler[T]
	logger     *zap.Logger
	indent     int
}

// Config holds the optional settings of a Service.
type Config struct {
	Logger         *zap.Logger
	Indent         int
	MessagesByType bool
}

// New creates a Service. A nil logger disables logging.
func New[T metadata.Entity](codec Codec[T], transport Transport, cfg Config) *Service[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger = logger.With(zap.String("item", codec.ItemTag()))

	ropts := []reconcile.Option{reconcile.WithLogger(logger)}
	if cfg.MessagesByType {
		ropts = append(ropts, reconcile.WithMessagesByType())
	}

	indent := cfg.Indent
	if indent <= 0 {
		indent = xmltree.DefaultIndent
	}

	return &Service[T]{
		codec:      codec,
		transport:  transport,
		builder:    build.New[T](codec, build.WithLogger(logger)),
		reconciler: reconcile.New[T](codec, ropts...),
		logger:     logger,
		indent:     indent,
	}
}

// Export fetches every item of the type as a flat collection.
func (s *Service[T]) Export(ctx context.Context, include Include) (*metadata.List[T], error) {
	method := s.codec.ExportMethod()
	log := s.logger.With(zap.String("method", method), zap.String("operation_id", uuid.NewString()))

	log.Debug("exporting")

	response, err := s.transport.Call(ctx, method, include.element())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if response == nil {
		return nil, fmt.Errorf("%s: empty response", method)
	}

	if response.SelectAttrValue(xmltree.AttrSuccess, "") != "true" {
		ferr := &FailedRequestError{Method: method, Messages: messagesOf(response)}
		log.Warn("export failed", zap.Error(ferr))

		return nil, ferr
	}

	list, err := flatten.Flatten[T](response, s.codec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	log.Info("exported", zap.Int("count", list.Len()))

	return list, nil
}

// PreviewUpdate returns the update payload for ws without sending it.
func (s *Service[T]) PreviewUpdate(ws *metadata.List[T]) (string, error) {
	root, err := s.builder.Build(ws, build.OpUpdate)
	if err != nil {
		return "", err
	}

	return xmltree.String(root, s.indent)
}

// Update writes changes to existing items.
func (s *Service[T]) Update(ctx context.Context, ws *metadata.List[T]) (*reconcile.Outcome[T], error) {
	return s.write(ctx, ws, build.OpUpdate)
}

// Create writes items that may not have an id yet.
func (s *Service[T]) Create(ctx context.Context, ws *metadata.List[T]) (*reconcile.Outcome[T], error) {
	return s.write(ctx, ws, build.OpCreate)
}

// write validates and builds before touching the transport, so a rejected
// working set is never sent.
func (s *Service[T]) write(ctx context.Context, ws *metadata.List[T], op build.Operation) (*reconcile.Outcome[T], error) {
	method := s.codec.UpdateMethod()
	log := s.logger.With(
		zap.String("method", method),
		zap.String("operation", string(op)),
		zap.String("operation_id", uuid.NewString()))

	payload, err := s.builder.Build(ws, op)
	if err != nil {
		log.Warn("working set rejected", zap.Error(err))
		return nil, err
	}

	log.Debug("sending", zap.Int("items", ws.Len()))

	response, err := s.transport.Call(ctx, method, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out, err := s.reconciler.Reconcile(ws, response)
	if err != nil {
		log.Error("unexpected write response", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if out.HasFailures() {
		log.Warn("write finished with failures",
			zap.Int("modified", out.Modified.Len()),
			zap.Int("failed", out.Failed().Len()))
	}

	return out, nil
}
