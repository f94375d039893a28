// Package entities declares the concrete item types exchanged with the
// vendor's XML API and the field mapping for each of them.
//
// A Codec pairs a type with its wire names: the item and container tags, the
// export and update method names and an ordered table of scalar fields. The
// same Codec value satisfies the flatten, build and reconcile codec
// interfaces, so one declaration drives parsing and serialization.
package entities
