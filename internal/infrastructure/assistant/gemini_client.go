package assistant

import (
	"context"
	"errors"
	"log"
	"strings"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAssistant answers chat turns through the Gemini API.
type GeminiAssistant struct {
	models contentGenerator
	model  string
}

var _ interfaces.IAssistant = (*GeminiAssistant)(nil)

func NewGeminiAssistant(ctx context.Context, apiKey, model string) (*GeminiAssistant, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		log.Printf("[assistant][gemini] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[assistant][gemini] client init failed err=%v", err)
		return nil, err
	}
	log.Printf("[assistant][gemini] client initialized model=%s", model)
	return &GeminiAssistant{models: client.Models, model: model}, nil
}

// Reply sends the whole conversation and returns the text of the first
// candidate. Assistant turns are sent with the model role.
func (a *GeminiAssistant) Reply(ctx context.Context, directive string, turns []entities.ChatTurn) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := genai.RoleUser
		if t.Role == entities.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}

	cfg := &genai.GenerateContentConfig{}
	if directive != "" {
		cfg.SystemInstruction = genai.NewContentFromText(directive, genai.RoleUser)
	}

	resp, err := a.models.GenerateContent(ctx, a.model, contents, cfg)
	if err != nil {
		log.Printf("[assistant][gemini] generate failed turns=%d err=%v", len(turns), err)
		return "", err
	}
	text := resp.Text()
	log.Printf("[assistant][gemini] generate success turns=%d reply_len=%d", len(turns), len(text))
	return text, nil
}
