package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bengal_portal/internal/adapter/http/handlers/mocks"
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_Directory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Directory(gomock.Any()).Return([]entities.CustomerProfile{{ID: "CUST-1000", Name: "Rose Diner"}}, nil)

		r := gin.New()
		r.GET("/v1/customers", h.Directory)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "CUST-1000" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Directory(gomock.Any()).Return(nil, errors.New("db"))

		r := gin.New()
		r.GET("/v1/customers", h.Directory)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)
	h.now = func() time.Time { return handlerNow }

	user := customerUser()
	uc.EXPECT().Overview(gomock.Any(), user, handlerNow).Return(usecase.CustomerOverview{
		Jobs:            []entities.Job{{ID: "j1", CustomerID: user.ID, Status: entities.JobStatusInProgress}},
		ActiveJobs:      1,
		PendingPayments: 450,
		Warranty:        &entities.WarrantyStatus{RemainingDays: 45, Label: entities.WarrantyActive},
	}, nil)

	r := gin.New()
	r.GET("/v1/customers/me/overview", WithSessionUser(user), h.Overview)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers/me/overview", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		ActiveJobs      int     `json:"activeJobs"`
		PendingPayments float64 `json:"pendingPayments"`
		Warranty        struct {
			Label string `json:"label"`
		} `json:"warranty"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.ActiveJobs != 1 || body.PendingPayments != 450 || body.Warranty.Label != "Active" {
		t.Fatalf("unexpected body %+v", body)
	}
}
