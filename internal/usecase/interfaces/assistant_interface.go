package interfaces

import (
	"context"

	"bengal_portal/internal/domain/entities"
)

// IAssistant is the conversational collaborator. Given a fixed system
// directive and the ordered turns so far it returns one assistant reply.
type IAssistant interface {
	Reply(ctx context.Context, directive string, turns []entities.ChatTurn) (string, error)
}
