package usecase

import (
	"errors"
	"fmt"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrUnauthenticated      = errors.New("no signed-in user")
	ErrForbidden            = errors.New("operation not allowed for this role")
	ErrDeleteNotConfirmed   = fmt.Errorf("%w: delete requires confirmation", ErrValidation)
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrIDSpaceExhausted     = errors.New("could not generate a free id")

	ErrCorruptSession    = interfaces.ErrCorruptSession
	ErrCorruptCollection = interfaces.ErrCorruptCollection
	ErrInvalidTransition = entities.ErrInvalidTransition
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundError(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}
