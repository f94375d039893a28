// Package reconcile classifies the response to a write request.
//
// A response lists the items the remote system touched, each with a status
// and optional per-attribute statuses. Reconcile partitions them into
// accepted items and failed items keyed by failure message. Business
// failures are data on the Outcome; only protocol violations are errors.
package reconcile
