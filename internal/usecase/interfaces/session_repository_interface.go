package interfaces

import (
	"context"

	"bengal_portal/internal/domain/entities"
)

// ISessionRepository persists the single signed-in user of this device.
// Load wraps ErrCorruptSession when the stored user cannot be parsed.

type ISessionRepository interface {
	Load(ctx context.Context) (user entities.User, found bool, err error)
	Save(ctx context.Context, user entities.User) error
	Clear(ctx context.Context) error
}
