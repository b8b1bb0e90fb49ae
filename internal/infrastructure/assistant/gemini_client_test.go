package assistant

import (
	"context"
	"errors"
	"testing"

	"bengal_portal/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
	resp        *genai.GenerateContentResponse
	err         error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = config
	return f.resp, f.err
}

func TestNewGeminiAssistant_MissingKey(t *testing.T) {
	_, err := NewGeminiAssistant(context.Background(), " ", "gemini-3-flash-preview")
	assert.ErrorIs(t, err, ErrMissingGeminiAPIKey)
}

func TestGeminiAssistant_Reply(t *testing.T) {
	fake := &fakeGenerator{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText("Every six months.", genai.RoleModel)}},
	}}
	a := &GeminiAssistant{models: fake, model: "test-model"}

	turns := []entities.ChatTurn{
		{Role: entities.ChatRoleUser, Content: "hi"},
		{Role: entities.ChatRoleAssistant, Content: "hello"},
		{Role: entities.ChatRoleUser, Content: "how often?"},
	}
	got, err := a.Reply(context.Background(), "be brief", turns)
	require.NoError(t, err)
	assert.Equal(t, "Every six months.", got)

	assert.Equal(t, "test-model", fake.gotModel)
	require.Len(t, fake.gotContents, 3)
	assert.Equal(t, "model", fake.gotContents[1].Role)
	assert.Equal(t, "user", fake.gotContents[2].Role)
	require.NotNil(t, fake.gotConfig.SystemInstruction)
	assert.Equal(t, "be brief", fake.gotConfig.SystemInstruction.Parts[0].Text)
}

func TestGeminiAssistant_ReplyError(t *testing.T) {
	a := &GeminiAssistant{models: &fakeGenerator{err: errors.New("quota")}, model: "m"}
	_, err := a.Reply(context.Background(), "", []entities.ChatTurn{{Role: entities.ChatRoleUser, Content: "x"}})
	assert.EqualError(t, err, "quota")
}
