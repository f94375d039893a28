package selector

import (
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"adaptive-mapper/internal/metadata"
)

// FieldFunc returns the scalar fields of an item keyed by wire name.
type FieldFunc[T metadata.Entity] func(T) map[string]string

// Env is what an expression sees for one item.
type Env struct {
	ID         int               `expr:"id"`
	ParentID   int               `expr:"parentId"`
	Depth      int               `expr:"depth"`
	Fields     map[string]string `expr:"fields"`
	Attributes map[string]string `expr:"attributes"`
}

// EnvOf builds the expression environment for e. fields may be nil.
func EnvOf[T metadata.Entity](e T, fields FieldFunc[T]) Env {
	m := e.Meta()

	env := Env{
		ID:         m.ID,
		ParentID:   m.ParentID(),
		Depth:      metadata.Depth(e),
		Fields:     map[string]string{},
		Attributes: map[string]string{},
	}

	if fields != nil {
		env.Fields = fields(e)
	}

	for _, a := range m.Attributes() {
		value := a.Value
		if a.IsCleared() {
			value = ""
		}

		env.Attributes[a.Name] = value
	}

	return env
}

// Selector is a compiled selection expression.
type Selector struct {
	expression string
	program    *exprvm.Program
}

// Compile checks expression against Env. An empty expression selects
// everything.
func Compile(expression string) (*Selector, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Selector{}, nil
	}

	program, err := exprlang.Compile(expression, exprlang.Env(Env{}), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling selection %q: %w", expression, err)
	}

	return &Selector{expression: expression, program: program}, nil
}

// String returns the source expression.
func (s *Selector) String() string {
	return s.expression
}

// Match evaluates the selector against one environment.
func (s *Selector) Match(env Env) (bool, error) {
	if s.program == nil {
		return true, nil
	}

	out, err := exprlang.Run(s.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q for id %d: %w", s.expression, env.ID, err)
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("selection %q returned %T, want bool", s.expression, out)
	}

	return ok, nil
}

// Filter keeps the items of list the selector matches, in list order.
func Filter[T metadata.Entity](s *Selector, list *metadata.List[T], fields FieldFunc[T]) (*metadata.List[T], error) {
	out := metadata.NewList[T]()

	for _, e := range list.Items() {
		ok, err := s.Match(EnvOf(e, fields))
		if err != nil {
			return nil, err
		}

		if ok {
			out.Append(e)
		}
	}

	return out, nil
}

// Select compiles expression and filters list with it.
func Select[T metadata.Entity](list *metadata.List[T], expression string, fields FieldFunc[T]) (*metadata.List[T], error) {
	s, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	return Filter(s, list, fields)
}
