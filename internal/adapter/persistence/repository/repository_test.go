package repository

import (
	"context"
	"errors"
	"testing"

	"bengal_portal/internal/adapter/persistence/store"
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
	mock_interfaces "bengal_portal/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJobRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewJobRepository(s, DefaultKeyPrefix)

	_, found, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	jobs := []entities.Job{{
		ID:              "J-1000",
		Title:           "Hood",
		Description:     "Canopy install",
		CustomerID:      "CUST-1000",
		CustomerName:    "Rose Diner",
		CustomerEmail:   "rose@example.com",
		CustomerPhone:   "0111",
		CustomerAddress: "1 High St",
		Status:          entities.JobStatusInProgress,
		StartDate:       "2025-01-10",
		WarrantyEndDate: "2024-12-31",
		PaymentStatus:   entities.PaymentStatusPartial,
		Amount:          99.5,
		Notes: []entities.JobNote{
			{ID: "N-1", Text: "measured", Timestamp: "2025-01-10T09:00:00Z", Author: entities.NoteAuthorStaff, Images: []string{"a.jpg"}},
		},
	}}
	require.NoError(t, repo.SaveAll(ctx, jobs))

	raw, found, err := s.Get(ctx, "bengal_jobs")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(raw), `"customerId":"CUST-1000"`)
	assert.Contains(t, string(raw), `"warrantyEndDate":"2024-12-31"`)

	got, found, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, jobs, got)
}

func TestJobRepository_EmptyAndCorrupt(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewJobRepository(s, "")

	require.NoError(t, repo.SaveAll(ctx, nil))
	got, found, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, s.Set(ctx, KeyJobs, []byte(`{"not":"a list"`)))
	_, found, err = repo.LoadAll(ctx)
	assert.False(t, found)
	assert.ErrorIs(t, err, interfaces.ErrCorruptCollection)
}

func TestQuoteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteRepository(store.NewMemoryStore(), DefaultKeyPrefix)

	price := 120.0
	quotes := []entities.QuoteRequest{
		{ID: "Q-2000", ProductName: "Stockpot", ProductImage: "pot.jpg", CustomerID: "u1", CustomerName: "John", CustomerEmail: "j@x.com", Date: "2025-01-01T00:00:00Z", Status: entities.QuoteStatusQuoted, Price: &price, AdminNotes: "incl. VAT", CustomerNotes: "asap", ApplianceImage: "old.jpg"},
		{ID: "Q-1000", ProductName: "Cooker", CustomerID: "u1", Status: entities.QuoteStatusNew},
	}
	require.NoError(t, repo.SaveAll(ctx, quotes))

	got, found, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, quotes, got)
	assert.Nil(t, got[1].Price)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewSessionRepository(s, DefaultKeyPrefix)

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	user := entities.User{ID: "u1", Name: "John", Email: "j@x.com", Role: entities.UserRoleCustomer, Phone: "0111"}
	require.NoError(t, repo.Save(ctx, user))
	got, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, user, got)

	require.NoError(t, repo.Clear(ctx))
	_, found, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	for _, payload := range []string{`nope`, `{"id":"u1","role":"GUEST"}`, `{"role":"ADMIN"}`} {
		require.NoError(t, s.Set(ctx, "bengal_session", []byte(payload)))
		_, found, err = repo.Load(ctx)
		assert.False(t, found, payload)
		assert.ErrorIs(t, err, interfaces.ErrCorruptSession, payload)
	}
}

func TestChatHistoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewChatHistoryRepository(store.NewMemoryStore(), DefaultKeyPrefix)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	turns := []entities.ChatTurn{
		{Role: entities.ChatRoleUser, Content: "hi"},
		{Role: entities.ChatRoleAssistant, Content: "hello"},
	}
	require.NoError(t, repo.Save(ctx, turns))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, turns, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepositories_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_interfaces.NewMockIStore(ctrl)
	ctx := context.Background()
	boom := errors.New("store down")

	s.EXPECT().Get(gomock.Any(), "p_jobs").Return(nil, false, boom)
	_, _, err := NewJobRepository(s, "p_").LoadAll(ctx)
	assert.ErrorIs(t, err, boom)

	s.EXPECT().Set(gomock.Any(), "p_quotes", gomock.Any()).Return(boom)
	assert.ErrorIs(t, NewQuoteRepository(s, "p_").SaveAll(ctx, nil), boom)

	s.EXPECT().Remove(gomock.Any(), "p_session").Return(boom)
	assert.ErrorIs(t, NewSessionRepository(s, "p_").Clear(ctx), boom)
}
