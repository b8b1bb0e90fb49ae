package repository

import (
	"context"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

// ChatHistoryRepository stores the assistant conversation in turn order.
type ChatHistoryRepository struct {
	store interfaces.IStore
	key   string
}

var _ interfaces.IChatHistoryRepository = (*ChatHistoryRepository)(nil)

func NewChatHistoryRepository(store interfaces.IStore, keyPrefix string) *ChatHistoryRepository {
	return &ChatHistoryRepository{store: store, key: storeKey(keyPrefix, KeyChatHistory)}
}

// Load returns an empty history when nothing is stored.
func (r *ChatHistoryRepository) Load(ctx context.Context) ([]entities.ChatTurn, error) {
	var turns []entities.ChatTurn
	if _, err := loadJSON(ctx, r.store, r.key, &turns, interfaces.ErrCorruptCollection); err != nil {
		return nil, err
	}
	if turns == nil {
		turns = []entities.ChatTurn{}
	}
	return turns, nil
}

func (r *ChatHistoryRepository) Save(ctx context.Context, turns []entities.ChatTurn) error {
	if turns == nil {
		turns = []entities.ChatTurn{}
	}
	return saveJSON(ctx, r.store, r.key, turns)
}

func (r *ChatHistoryRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, r.key)
}
