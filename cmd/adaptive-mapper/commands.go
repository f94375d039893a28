package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"adaptive-mapper/internal/build"
	"adaptive-mapper/internal/config"
	"adaptive-mapper/internal/entities"
	"adaptive-mapper/internal/flatten"
	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/reconcile"
	"adaptive-mapper/internal/report"
	"adaptive-mapper/internal/selector"
	"adaptive-mapper/internal/xmltree"
)

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func (a *app) flagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	typ := fs.String("type", a.cfg.DefaultType, "item type, see the types command")

	return fs, typ
}

func (a *app) types() error {
	return report.Write(a.stdout, entities.Types())
}

func (a *app) flatten(args []string) error {
	fs, typ := a.flagSet("flatten")
	in := fs.String("in", "", "export response to read")

	if err := fs.Parse(args); err != nil {
		return err
	}

	h, err := a.handlerFor(*typ)
	if err != nil {
		return err
	}

	root, err := readTree(*in, "-in")
	if err != nil {
		return err
	}

	items, err := h.flatten(root)
	if err != nil {
		return err
	}

	return report.Write(a.stdout, items)
}

func (a *app) build(args []string) error {
	fs, typ := a.flagSet("build")
	in := fs.String("in", "", "export response to select from")
	where := fs.String("where", "", "selection expression, empty selects every item")
	opName := fs.String("op", string(build.OpUpdate), "payload flavor: update or create")

	if err := fs.Parse(args); err != nil {
		return err
	}

	op, err := build.ParseOperation(*opName)
	if err != nil {
		return err
	}

	h, err := a.handlerFor(*typ)
	if err != nil {
		return err
	}

	root, err := readTree(*in, "-in")
	if err != nil {
		return err
	}

	payload, err := h.build(root, *where, op)
	if err != nil {
		return err
	}

	return xmltree.Write(a.stdout, payload, a.cfg.Indent)
}

func (a *app) reconcile(args []string) (bool, error) {
	fs, typ := a.flagSet("reconcile")
	request := fs.String("request", "", "payload that was sent")
	response := fs.String("response", "", "write response that came back")

	if err := fs.Parse(args); err != nil {
		return false, err
	}

	h, err := a.handlerFor(*typ)
	if err != nil {
		return false, err
	}

	req, err := readTree(*request, "-request")
	if err != nil {
		return false, err
	}

	resp, err := readTree(*response, "-response")
	if err != nil {
		return false, err
	}

	out, err := h.reconcile(req, resp)
	if err != nil {
		return false, err
	}

	if err := report.Write(a.stdout, out); err != nil {
		return false, err
	}

	return len(out.Errors) > 0, nil
}

func readTree(path, flagName string) (*etree.Element, error) {
	if path == "" {
		return nil, fmt.Errorf("%s is required", flagName)
	}

	return xmltree.ParseFile(path)
}

// handler runs the commands for one item type.
type handler interface {
	flatten(root *etree.Element) ([]report.Item, error)
	build(root *etree.Element, where string, op build.Operation) (*etree.Element, error)
	reconcile(request, response *etree.Element) (report.Outcome, error)
}

var errNoHandler = errors.New("no handler for item type")

func (a *app) handlerFor(name string) (handler, error) {
	info, err := entities.Lookup(name)
	if err != nil {
		return nil, err
	}

	switch info.Name {
	case entities.TypeAccount:
		return newTyped(entities.Accounts, a), nil
	case entities.TypeLevel:
		return newTyped(entities.Levels, a), nil
	case entities.TypeDimensionValue:
		return newTyped(entities.DimensionValues, a), nil
	default:
		return nil, fmt.Errorf("%w %q", errNoHandler, info.Name)
	}
}

type typed[T metadata.Entity] struct {
	codec  *entities.Codec[T]
	logger *zap.Logger
	byType bool
}

func newTyped[T metadata.Entity](codec *entities.Codec[T], a *app) *typed[T] {
	return &typed[T]{
		codec:  codec,
		logger: a.logger.With(zap.String("item", codec.Item)),
		byType: a.cfg.MessagesByType,
	}
}

func (t *typed[T]) flatten(root *etree.Element) ([]report.Item, error) {
	list, err := flatten.Flatten[T](root, t.codec)
	if err != nil {
		return nil, err
	}

	return report.Items(list, t.codec.FieldValues), nil
}

func (t *typed[T]) build(root *etree.Element, where string, op build.Operation) (*etree.Element, error) {
	list, err := flatten.Flatten[T](root, t.codec)
	if err != nil {
		return nil, err
	}

	ws, err := selector.Select(list, where, t.codec.FieldValues)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("selected working set", zap.Int("exported", list.Len()), zap.Int("selected", ws.Len()))

	return build.New[T](t.codec, build.WithLogger(t.logger)).Build(ws, op)
}

func (t *typed[T]) reconcile(request, response *etree.Element) (report.Outcome, error) {
	requested, err := flatten.Flatten[T](request, t.codec)
	if err != nil {
		return report.Outcome{}, fmt.Errorf("reading request: %w", err)
	}

	opts := []reconcile.Option{reconcile.WithLogger(t.logger)}
	if t.byType {
		opts = append(opts, reconcile.WithMessagesByType())
	}

	out, err := reconcile.New[T](t.codec, opts...).Reconcile(requested, response)
	if err != nil {
		return report.Outcome{}, err
	}

	return report.FromOutcome(out), nil
}
