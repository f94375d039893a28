package entities

import (
	"fmt"
	"strings"

	"adaptive-mapper/internal/match"
	"adaptive-mapper/internal/metadata"
)

// Type names accepted by Lookup.
const (
	TypeAccount        = "account"
	TypeLevel          = "level"
	TypeDimensionValue = "dimension_value"
)

// Info describes a registered item type.
type Info struct {
	Name      string
	Item      string
	Container string
	Export    string
	Update    string
}

// Types returns the registered item types in a stable order.
func Types() []Info {
	return []Info{
		infoOf(Accounts),
		infoOf(Levels),
		infoOf(DimensionValues),
	}
}

func infoOf[T metadata.Entity](c *Codec[T]) Info {
	return Info{Name: c.Name, Item: c.Item, Container: c.Container, Export: c.Export, Update: c.Update}
}

// Lookup resolves a user-supplied type name to a registered one. Case,
// underscores and a trailing plural "s" are ignored; item tags are accepted
// too ("dimensionValue").
func Lookup(name string) (Info, error) {
	want := match.Normalize(name)
	types := Types()

	for _, t := range types {
		for _, alias := range []string{t.Name, t.Item, t.Container} {
			if n := match.Normalize(alias); n == want || n+"s" == want {
				return t, nil
			}
		}
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}

	if s := match.Suggest(name, names, 2); len(s) > 0 {
		return Info{}, fmt.Errorf("unknown item type %q (did you mean %s?)", name, strings.Join(s, " or "))
	}

	return Info{}, fmt.Errorf("unknown item type %q (known: %s)", name, strings.Join(names, ", "))
}
