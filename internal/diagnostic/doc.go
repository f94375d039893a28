// Package diagnostic provides structured findings produced while checking a
// working set before it is serialized for the remote system.
//
// Each finding carries a stable code, the item it concerns and the item's
// ancestor path, so callers can report every problem at once instead of
// stopping at the first one.
package diagnostic
