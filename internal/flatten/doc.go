// Package flatten turns a nested vendor export into a flat, ordered
// collection of items with parent links restored.
//
// Items are found by tag. Wrapper elements above the first item layer
// (response, output, the plural container, a dimension) are descended
// transparently. Inside an item, nested items of the same tag become its
// children and <attributes>/<attribute> elements become its overlays; any
// other child element is ignored. The output is pre-order, so an ancestor
// always precedes its descendants.
package flatten
