package xmltree

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// Equal reports whether a and b are structurally equal: same tags, same
// attribute sets, same trimmed text and equal child elements in order.
func Equal(a, b *etree.Element) bool {
	return Diff(a, b) == ""
}

// Diff describes the first structural difference between a and b, or
// returns "" when they are equal.
func Diff(a, b *etree.Element) string {
	if a == nil || b == nil {
		if a == b {
			return ""
		}

		return fmt.Sprintf("one side is nil: %v vs %v", a != nil, b != nil)
	}

	if a.Tag != b.Tag {
		return fmt.Sprintf("%s: tag %q vs %q", Path(a), a.Tag, b.Tag)
	}

	if d := diffAttrs(a, b); d != "" {
		return d
	}

	if ta, tb := strings.TrimSpace(a.Text()), strings.TrimSpace(b.Text()); ta != tb {
		return fmt.Sprintf("%s: text %q vs %q", Path(a), ta, tb)
	}

	ca, cb := a.ChildElements(), b.ChildElements()
	if len(ca) != len(cb) {
		return fmt.Sprintf("%s: %d child elements vs %d", Path(a), len(ca), len(cb))
	}

	for i := range ca {
		if d := Diff(ca[i], cb[i]); d != "" {
			return d
		}
	}

	return ""
}

func diffAttrs(a, b *etree.Element) string {
	am, bm := attrMap(a), attrMap(b)
	if maps.Equal(am, bm) {
		return ""
	}

	keys := slices.Sorted(maps.Keys(am))
	for _, k := range keys {
		if v, ok := bm[k]; !ok || v != am[k] {
			return fmt.Sprintf("%s: attribute %s=%q vs %q (present=%v)", Path(a), k, am[k], v, ok)
		}
	}

	for _, k := range slices.Sorted(maps.Keys(bm)) {
		if _, ok := am[k]; !ok {
			return fmt.Sprintf("%s: unexpected attribute %s=%q", Path(b), k, bm[k])
		}
	}

	return ""
}

func attrMap(el *etree.Element) map[string]string {
	m := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		m[a.FullKey()] = a.Value
	}

	return m
}
