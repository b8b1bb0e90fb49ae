package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a status change is not allowed by
// the record's transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

func invalidTransition(kind string, from, to any) error {
	return fmt.Errorf("%w: %s %v -> %v", ErrInvalidTransition, kind, from, to)
}
