package reconcile

import (
	"errors"
	"fmt"
)

// ErrProtocol is matched by every *ProtocolError.
var ErrProtocol = errors.New("write response protocol violation")

// ProtocolError reports a response that does not follow the write protocol.
// No partial Outcome is returned alongside it.
type ProtocolError struct {
	// Path locates the offending element, when there is one.
	Path string
	// ID is the returned item's identifier, or 0.
	ID     int
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Path == "" {
		return "protocol violation: " + e.Reason
	}

	return fmt.Sprintf("protocol violation at %s: %s", e.Path, e.Reason)
}

func (e *ProtocolError) Unwrap() error {
	return ErrProtocol
}
