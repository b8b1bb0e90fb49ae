package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bengal_portal/internal/domain/entities"
	mock_interfaces "bengal_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssistantUseCase_Ask(t *testing.T) {
	prior := []entities.ChatTurn{
		{Role: entities.ChatRoleUser, Content: "hi"},
		{Role: entities.ChatRoleAssistant, Content: "hello"},
	}

	t.Run("empty message", func(t *testing.T) {
		uc := NewAssistantUseCase(nil, nil, nil)
		if _, err := uc.Ask(context.Background(), "  "); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("stores exchange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_interfaces.NewMockIChatHistoryRepository(ctrl)
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewAssistantUseCase(history, assistant, nil)

		history.EXPECT().Load(gomock.Any()).Return(prior, nil)
		assistant.EXPECT().Reply(gomock.Any(), AssistantDirective, gomock.Len(3)).Return("Every six months.", nil)
		history.EXPECT().Save(gomock.Any(), gomock.Len(4)).Return(nil)

		got, err := uc.Ask(context.Background(), "How often should hoods be cleaned?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Degraded || got.Reply.Content != "Every six months." || got.Reply.Role != entities.ChatRoleAssistant {
			t.Fatalf("unexpected exchange: %+v", got)
		}
	})

	cases := []struct {
		name     string
		reply    string
		err      error
		fallback string
		reason   string
	}{
		{name: "empty reply", reply: " ", fallback: AssistantEmptyReplyFallback, reason: "empty"},
		{name: "collaborator error", err: errors.New("quota"), fallback: AssistantErrorFallback, reason: "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			history := mock_interfaces.NewMockIChatHistoryRepository(ctrl)
			assistant := mock_interfaces.NewMockIAssistant(ctrl)
			metrics := mock_interfaces.NewMockILifecycleMetrics(ctrl)
			uc := NewAssistantUseCase(history, assistant, metrics)

			history.EXPECT().Load(gomock.Any()).Return(nil, nil)
			assistant.EXPECT().Reply(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.reply, tc.err)
			metrics.EXPECT().IncAssistantFallback(tc.reason)
			history.EXPECT().Save(gomock.Any(), []entities.ChatTurn{
				{Role: entities.ChatRoleUser, Content: "hello?"},
				{Role: entities.ChatRoleAssistant, Content: tc.fallback},
			}).Return(nil)

			got, err := uc.Ask(context.Background(), "hello?")
			if err != nil {
				t.Fatalf("fallbacks must not fail the call, got %v", err)
			}
			if !got.Degraded || got.Reply.Content != tc.fallback {
				t.Fatalf("unexpected exchange: %+v", got)
			}
		})
	}

	t.Run("corrupt history starts fresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_interfaces.NewMockIChatHistoryRepository(ctrl)
		uc := NewAssistantUseCase(history, nil, nil)

		history.EXPECT().Load(gomock.Any()).Return(nil, fmt.Errorf("%w: bad", ErrCorruptCollection))
		history.EXPECT().Save(gomock.Any(), gomock.Len(2)).Return(nil)

		got, err := uc.Ask(context.Background(), "anyone there?")
		if err != nil || got.Reply.Content != AssistantErrorFallback {
			t.Fatalf("unexpected exchange %+v err=%v", got, err)
		}
	})
}

func TestAssistantUseCase_HistoryAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock_interfaces.NewMockIChatHistoryRepository(ctrl)
	uc := NewAssistantUseCase(history, nil, nil)

	history.EXPECT().Load(gomock.Any()).Return(nil, nil)
	got, err := uc.History(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty history, got %v err=%v", got, err)
	}

	history.EXPECT().Clear(gomock.Any()).Return(errors.New("db"))
	if err := uc.ClearHistory(context.Background()); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
