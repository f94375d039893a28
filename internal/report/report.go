// Package report renders flat collections and write outcomes as YAML.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/reconcile"
)

// Attribute is the printed form of one overlay.
type Attribute struct {
	AttributeID int    `yaml:"attribute_id"`
	Name        string `yaml:"name"`
	ValueID     string `yaml:"value_id,omitempty"`
	Value       string `yaml:"value"`
	Cleared     bool   `yaml:"cleared,omitempty"`
}

// Item is the printed form of one item.
type Item struct {
	ID         int               `yaml:"id"`
	ParentID   int               `yaml:"parent_id,omitempty"`
	Depth      int               `yaml:"depth"`
	Fields     map[string]string `yaml:"fields,omitempty"`
	Attributes []Attribute       `yaml:"attributes,omitempty"`
}

// Items converts list in order. fields may be nil.
func Items[T metadata.Entity](list *metadata.List[T], fields func(T) map[string]string) []Item {
	out := make([]Item, 0, list.Len())

	for _, e := range list.Items() {
		m := e.Meta()

		it := Item{ID: m.ID, ParentID: m.ParentID(), Depth: metadata.Depth(e)}
		if fields != nil {
			it.Fields = fields(e)
		}

		for _, a := range m.Attributes() {
			it.Attributes = append(it.Attributes, Attribute{
				AttributeID: a.AttributeID,
				Name:        a.Name,
				ValueID:     a.ValueID,
				Value:       a.Value,
				Cleared:     a.IsCleared(),
			})
		}

		out = append(out, it)
	}

	return out
}

// Entry is one key of an Ordered mapping.
type Entry[V any] struct {
	Key   string
	Value V
}

// Ordered is a mapping that keeps its key order when printed.
type Ordered[V any] []Entry[V]

// MarshalYAML implements yaml.Marshaler.
func (o Ordered[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range o {
		var value yaml.Node
		if err := value.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", e.Key, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&value)
	}

	return node, nil
}

// Outcome is the printed form of a write outcome. Items are listed by id.
type Outcome struct {
	Success  bool              `yaml:"success"`
	Messages Ordered[[]string] `yaml:"messages"`
	Modified []int             `yaml:"modified"`
	All      []int             `yaml:"all"`
	Errors   Ordered[[]int]    `yaml:"errors"`
}

// FromOutcome converts o, keeping message and error order.
func FromOutcome[T metadata.Entity](o *reconcile.Outcome[T]) Outcome {
	out := Outcome{
		Success:  o.Success,
		Messages: Ordered[[]string]{},
		Modified: o.Modified.IDs(),
		All:      o.All.IDs(),
		Errors:   Ordered[[]int]{},
	}

	for pair := o.Messages.Oldest(); pair != nil; pair = pair.Next() {
		out.Messages = append(out.Messages, Entry[[]string]{Key: pair.Key, Value: pair.Value})
	}

	for pair := o.Errors.Oldest(); pair != nil; pair = pair.Next() {
		out.Errors = append(out.Errors, Entry[[]int]{Key: pair.Key, Value: pair.Value.IDs()})
	}

	return out
}

// Write encodes v as YAML with two-space indentation.
func Write(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return enc.Close()
}
