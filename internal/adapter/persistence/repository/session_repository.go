package repository

import (
	"context"
	"fmt"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

// SessionRepository stores the signed-in user of this device.
type SessionRepository struct {
	store interfaces.IStore
	key   string
}

var _ interfaces.ISessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(store interfaces.IStore, keyPrefix string) *SessionRepository {
	return &SessionRepository{store: store, key: storeKey(keyPrefix, KeySession)}
}

// Load also reports a decodable payload without an id or a known role as
// corrupt, since nothing downstream can act on it.
func (r *SessionRepository) Load(ctx context.Context) (entities.User, bool, error) {
	var u entities.User
	found, err := loadJSON(ctx, r.store, r.key, &u, interfaces.ErrCorruptSession)
	if err != nil || !found {
		return entities.User{}, false, err
	}
	if u.ID == "" || !u.Role.IsValid() {
		return entities.User{}, false, fmt.Errorf("%w: key=%s: missing id or role", interfaces.ErrCorruptSession, r.key)
	}
	return u, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, user entities.User) error {
	return saveJSON(ctx, r.store, r.key, user)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, r.key)
}
