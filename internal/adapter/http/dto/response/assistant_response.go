package response

import (
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
)

type ChatTurnResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AssistantExchangeResponse struct {
	Reply    ChatTurnResponse   `json:"reply"`
	History  []ChatTurnResponse `json:"history"`
	Degraded bool               `json:"degraded"`
}

func FromChatTurns(turns []entities.ChatTurn) []ChatTurnResponse {
	out := make([]ChatTurnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, ChatTurnResponse{Role: string(t.Role), Content: t.Content})
	}
	return out
}

func FromAssistantExchange(e usecase.AssistantExchange) AssistantExchangeResponse {
	return AssistantExchangeResponse{
		Reply:    ChatTurnResponse{Role: string(e.Reply.Role), Content: e.Reply.Content},
		History:  FromChatTurns(e.History),
		Degraded: e.Degraded,
	}
}
