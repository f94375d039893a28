// Package service runs the export and write workflows of one item type over
// an XML API transport. The transport performs the call; this package builds
// the payload, checks the response envelope and classifies the result.
package service
