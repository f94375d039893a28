package build

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"adaptive-mapper/internal/diagnostic"
	"adaptive-mapper/internal/metadata"
)

// Operation selects the payload flavor.
type Operation string

const (
	OpUpdate Operation = "update"
	OpCreate Operation = "create"
)

// ParseOperation parses "update" or "create".
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case OpUpdate, OpCreate:
		return op, nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}

// Diagnostic codes reported by Validate.
const (
	CodeUnknownOperation   = "unknown_operation"
	CodeMissingID          = "missing_id"
	CodeInvalidAncestorID  = "invalid_ancestor_id"
	CodeEmptyAttributeName = "empty_attribute_name"
	CodeDuplicateID        = "duplicate_id"
	CodeDuplicateItem      = "duplicate_item"
	CodeAncestorStub       = "ancestor_stub"
)

// ErrInvalid is matched by every *ValidationError.
var ErrInvalid = errors.New("invalid working set")

// ValidationError carries every problem found in a rejected working set.
type ValidationError struct {
	Op          Operation
	Diagnostics *diagnostic.Diagnostics
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s payload rejected: %v", e.Op, e.Diagnostics.Error())
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate checks the shape constraints a working set must meet before it is
// serialized: identifiers on items and on every ancestor, and named overlays.
// With OpCreate, working-set items may still lack an identifier. Every
// ancestor that will be sent as an id-only stub is reported as an info.
func Validate[T metadata.Entity](ws *metadata.List[T], op Operation, itemTag string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if op != OpUpdate && op != OpCreate {
		res.AddError(CodeUnknownOperation, fmt.Sprintf("unknown operation %q", op), "", "")
		return res
	}

	seen := map[*metadata.Node]bool{}
	byID := map[int]*metadata.Node{}
	stubbed := map[*metadata.Node]bool{}

	inSet := map[*metadata.Node]bool{}
	for _, e := range ws.Items() {
		inSet[e.Meta()] = true
	}

	for _, e := range ws.Items() {
		m := e.Meta()
		subject := subjectOf(itemTag, m)
		path := chainPath(e)

		if seen[m] {
			res.AddWarning(CodeDuplicateItem, "item listed more than once; later entries are ignored", subject, path)
			continue
		}

		seen[m] = true

		switch {
		case m.ID < 0, m.ID == 0 && op == OpUpdate:
			res.AddError(CodeMissingID, "id must be a positive integer", subject, path)
		case m.ID > 0:
			if other, ok := byID[m.ID]; ok && other != m {
				res.AddError(CodeDuplicateID, "another item in the working set has the same id", subject, path)
			}

			byID[m.ID] = m
		}

		for _, anc := range metadata.Ancestors(e) {
			am := anc.Meta()
			if am.ID <= 0 {
				res.AddError(CodeInvalidAncestorID,
					fmt.Sprintf("ancestor id %d must be a positive integer", am.ID), subject, path)

				continue
			}

			if !inSet[am] && !stubbed[am] {
				stubbed[am] = true
				res.AddInfo(CodeAncestorStub, "sent as an id-only stub", subjectOf(itemTag, am), chainPath(anc))
			}
		}

		for _, a := range m.Attributes() {
			if a.Name == "" {
				res.AddError(CodeEmptyAttributeName,
					fmt.Sprintf("attribute %d has no name", a.AttributeID), subject, path)
			}
		}
	}

	return res
}

func subjectOf(itemTag string, m *metadata.Node) string {
	if m.ID == 0 {
		return itemTag + " <new>"
	}

	return itemTag + " " + strconv.Itoa(m.ID)
}

// chainPath renders the ids from the root down to e.
func chainPath(e metadata.Entity) string {
	chain := append([]metadata.Entity{e}, metadata.Ancestors(e)...)
	slices.Reverse(chain)

	parts := make([]string, 0, len(chain))
	for _, x := range chain {
		parts = append(parts, strconv.Itoa(x.Meta().ID))
	}

	return strings.Join(parts, "/")
}
