package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bengal_portal/internal/adapter/persistence/store"
	"bengal_portal/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPortal(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	registerRoutes(r, config.Config{
		StoreKeyPrefix:      "bengal_",
		PublicBaseURL:       "https://portal.example.com",
		CheckoutFallbackURL: "https://www.paypal.com/checkoutnow",
		WarrantyHorizonDays: 90,
	}, dependencies{
		store:    store.NewMemoryStore(),
		registry: prometheus.NewRegistry(),
	})
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPortal_PublicRoutes(t *testing.T) {
	r := newTestPortal(t)

	w := do(r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/v1/session", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null,"source":"none"}`, w.Body.String())

	w = do(r, http.MethodGet, "/v1/jobs", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPortal_StaffAndInviteFlow(t *testing.T) {
	r := newTestPortal(t)

	w := do(r, http.MethodPost, "/v1/session/login", `{"role":"admin"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/v1/jobs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	assert.Len(t, jobs, 2, "fresh store is seeded with the demo jobs")

	w = do(r, http.MethodPost, "/v1/jobs", `{"title":"Gantry unit","customerName":"Rose Diner","startDate":"2025-01-10"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	jobID, _ := created["id"].(string)
	assert.Regexp(t, `^J-\d{4}$`, jobID)
	assert.Regexp(t, `^CUST-\d{4}$`, created["customerId"])

	w = do(r, http.MethodGet, "/v1/jobs/"+jobID+"/invite", "")
	require.Equal(t, http.StatusOK, w.Code)
	var invite map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invite))
	assert.Equal(t, "https://portal.example.com/v1/session?code="+jobID, invite["url"])

	w = do(r, http.MethodGet, "/v1/session?code="+jobID, "")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/v1/session", w.Header().Get("Location"))

	w = do(r, http.MethodGet, "/v1/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"session"`)
	assert.Contains(t, w.Body.String(), `"role":"CUSTOMER"`)

	w = do(r, http.MethodGet, "/v1/jobs", "")
	assert.Equal(t, http.StatusForbidden, w.Code, "invited customer cannot list every job")

	w = do(r, http.MethodGet, "/v1/jobs/"+jobID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/v1/customers/me/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), jobID)
}

func TestPortal_QuoteFlow(t *testing.T) {
	r := newTestPortal(t)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/v1/session/login", `{"role":"customer"}`).Code)

	w := do(r, http.MethodPost, "/v1/quotes", `{"product":{"id":"p1","name":"Hot Cupboard","image":"hc.jpg"}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var quote map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	quoteID, _ := quote["id"].(string)
	assert.Equal(t, "NEW", quote["status"])

	w = do(r, http.MethodPost, "/v1/quotes/"+quoteID+"/pay", "")
	assert.Equal(t, http.StatusConflict, w.Code, "a NEW quote cannot be paid")

	w = do(r, http.MethodPatch, "/v1/quotes/"+quoteID+"/price", `{"price":450}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/v1/session/login", `{"role":"admin"}`).Code)
	w = do(r, http.MethodPatch, "/v1/quotes/"+quoteID+"/price", `{"price":450,"adminNotes":"Includes fitting"}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/v1/session/login", `{"role":"customer"}`).Code)
	w = do(r, http.MethodPost, "/v1/quotes/"+quoteID+"/pay", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"checkoutUrl":"https://www.paypal.com/checkoutnow"`)
	assert.Contains(t, w.Body.String(), `"status":"PAID"`)

	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `portal_quote_status_total{status="PAID"} 1`))
}

func TestPortal_AssistantDegradesWithoutCollaborator(t *testing.T) {
	r := newTestPortal(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/v1/session/login", `{"role":"customer"}`).Code)

	w := do(r, http.MethodPost, "/v1/assistant/messages", `{"content":"Do you sell stockpots?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded":true`)

	w = do(r, http.MethodGet, "/v1/assistant/messages", "")
	require.Equal(t, http.StatusOK, w.Code)
	var turns []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turns))
	assert.Len(t, turns, 2)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/v1/assistant/messages", "").Code)
}
