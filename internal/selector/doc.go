// Package selector narrows a flat collection to a working set with a boolean
// expression.
//
// Expressions are written in the expr language and see one item at a time:
//
//	id, parentId, depth       int
//	fields                    map[string]string, keyed by wire name
//	attributes                map[string]string, overlay name to value
//
// For example: depth > 0 && fields.accountTypeCode == "A".
package selector
