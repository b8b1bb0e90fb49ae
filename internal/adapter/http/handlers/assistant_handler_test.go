package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bengal_portal/internal/adapter/http/handlers/mocks"
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssistantHandler_Ask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/v1/assistant/messages", h.Ask)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/messages", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("degraded reply is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		reply := entities.ChatTurn{Role: entities.ChatRoleAssistant, Content: usecase.AssistantErrorFallback}
		uc.EXPECT().Ask(gomock.Any(), "How often should hoods be cleaned?").Return(usecase.AssistantExchange{
			Reply:    reply,
			History:  []entities.ChatTurn{{Role: entities.ChatRoleUser, Content: "How often should hoods be cleaned?"}, reply},
			Degraded: true,
		}, nil)

		r := gin.New()
		r.POST("/v1/assistant/messages", h.Ask)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/messages", bytes.NewBufferString(`{"content":"How often should hoods be cleaned?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["degraded"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("history persist failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		uc.EXPECT().Ask(gomock.Any(), "hi").Return(usecase.AssistantExchange{}, errors.New("db"))

		r := gin.New()
		r.POST("/v1/assistant/messages", h.Ask)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/messages", bytes.NewBufferString(`{"content":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAssistantHandler_HistoryAndClear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAssistantUseCase(ctrl)
	h := NewAssistantHandler(uc)

	gomock.InOrder(
		uc.EXPECT().History(gomock.Any()).Return([]entities.ChatTurn{}, nil),
		uc.EXPECT().ClearHistory(gomock.Any()).Return(nil),
	)

	r := gin.New()
	r.GET("/v1/assistant/messages", h.History)
	r.DELETE("/v1/assistant/messages", h.Clear)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/assistant/messages", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected 200 with empty list, got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/assistant/messages", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
