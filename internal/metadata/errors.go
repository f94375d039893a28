package metadata

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrCycle    = errors.New("parent cycle")
)

// NotFoundError reports a lookup or removal that matched nothing.
type NotFoundError struct {
	What string
	ID   int
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d: %v", e.What, e.ID, ErrNotFound)
	}

	return fmt.Sprintf("%s: %v", e.What, ErrNotFound)
}

// Unwrap makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
