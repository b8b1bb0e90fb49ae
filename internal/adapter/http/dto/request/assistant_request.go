package request

type AssistantMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
