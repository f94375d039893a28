// Package build serializes a working set of items into the smallest element
// tree that places every item at its true position in the hierarchy.
//
// The remote system applies updates by position, not by parent reference, so
// every ancestor of a working-set item must be present in the payload.
// Ancestors that are not themselves part of the working set are written as
// stub elements carrying only their id. Items sharing an ancestor become
// siblings in the order they were first reached while walking the working
// set.
//
// The working set is validated before anything is built; a payload is either
// complete or not produced at all.
package build
