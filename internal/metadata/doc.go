// Package metadata provides the in-memory model for hierarchical metadata
// items exported by the planning vendor: accounts, levels, dimension values.
//
// Every concrete item type embeds Node, which carries the identifier, the
// parent relation, the ordered children and the attribute overlays. Items are
// always handled through pointers, so a change made through one reference is
// visible through every other reference to the same item.
//
// Key types:
//   - Node: identifier, parent/children links and attribute overlays
//   - Entity: capability interface satisfied by embedding Node
//   - Attribute: a classification value assigned to an item
//   - List: ordered collection with equality-based membership
package metadata
