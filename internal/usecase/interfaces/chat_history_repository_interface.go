package interfaces

import (
	"context"

	"bengal_portal/internal/domain/entities"
)

// IChatHistoryRepository persists the assistant conversation kept on the device.

type IChatHistoryRepository interface {
	Load(ctx context.Context) ([]entities.ChatTurn, error)
	Save(ctx context.Context, turns []entities.ChatTurn) error
	Clear(ctx context.Context) error
}
