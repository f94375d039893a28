// Package xmltree holds the element-tree helpers shared by the flattener,
// the builder and the reconciler: reading vendor XML into an
// github.com/beevik/etree element, writing it back, typed attribute access
// and structural comparison.
//
// Structural comparison ignores attribute order and whitespace-only text,
// which is what the remote system ignores as well.
package xmltree
