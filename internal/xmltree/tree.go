package xmltree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("document has no root element")

// DefaultIndent is the indent width used when writing trees.
const DefaultIndent = 2

// Parse reads an XML document and returns its root element.
func Parse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing xml: %w", err)
	}

	return rootOf(doc)
}

// ParseString is Parse for string input.
func ParseString(s string) (*etree.Element, error) {
	return Parse([]byte(s))
}

// ParseReader reads an XML document from r.
func ParseReader(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing xml: %w", err)
	}

	return rootOf(doc)
}

// ParseFile reads the XML document at path.
func ParseFile(path string) (*etree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	root, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

func rootOf(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}

	return root, nil
}

// Write serializes a copy of root to w with an XML declaration.
// indent <= 0 writes the tree without added whitespace.
func Write(w io.Writer, root *etree.Element, indent int) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root.Copy())

	if indent > 0 {
		doc.Indent(indent)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing xml: %w", err)
	}

	return nil
}

// String returns the serialized form of root without an XML declaration.
func String(root *etree.Element, indent int) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(root.Copy())

	if indent > 0 {
		doc.Indent(indent)
	}

	return doc.WriteToString()
}

// IntAttr reads an integer attribute. ok is false when the attribute is absent.
func IntAttr(el *etree.Element, key string) (value int, ok bool, err error) {
	a := el.SelectAttr(key)
	if a == nil {
		return 0, false, nil
	}

	s := strings.TrimSpace(a.Value)
	if s == "" {
		return 0, false, nil
	}

	value, err = strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("%s: attribute %s=%q is not an integer", Path(el), key, a.Value)
	}

	return value, true, nil
}

// StringAttr returns the attribute value and whether it was present.
func StringAttr(el *etree.Element, key string) (string, bool) {
	a := el.SelectAttr(key)
	if a == nil {
		return "", false
	}

	return a.Value, true
}

// Path returns a readable location of el for error messages.
func Path(el *etree.Element) string {
	if el == nil {
		return "<nil>"
	}

	var parts []string
	for e := el; e != nil && e.Tag != ""; e = e.Parent() {
		seg := e.Tag
		if id := e.SelectAttrValue("id", ""); id != "" {
			seg += "[@id='" + id + "']"
		}

		parts = append([]string{seg}, parts...)
	}

	return "/" + strings.Join(parts, "/")
}
