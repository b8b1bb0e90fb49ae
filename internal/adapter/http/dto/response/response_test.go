package response

import (
	"encoding/json"
	"testing"
	"time"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestFromJob(t *testing.T) {
	j := entities.Job{
		ID:              "J-1001",
		Title:           "Extraction hood",
		CustomerID:      "CUST-1000",
		Status:          entities.JobStatusInProgress,
		PaymentStatus:   entities.PaymentStatusUnpaid,
		WarrantyEndDate: "2025-03-21",
		Notes:           []entities.JobNote{{ID: "N-1", Text: "Fitted", Author: entities.NoteAuthorStaff}},
	}

	res := FromJob(j, testNow)
	if res.ID != "J-1001" || res.Status != "IN_PROGRESS" || res.PaymentStatus != "UNPAID" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Warranty == nil || res.Warranty.Label != "Expiring Soon" || res.Warranty.RemainingDays != 20 {
		t.Fatalf("unexpected warranty: %+v", res.Warranty)
	}
	if len(res.Notes) != 1 || res.Notes[0].Images == nil {
		t.Fatalf("expected one note with non-nil images, got %+v", res.Notes)
	}
}

func TestFromJob_UnreadableWarranty(t *testing.T) {
	res := FromJob(entities.Job{ID: "J-1", WarrantyEndDate: "soon"}, testNow)
	if res.Warranty != nil {
		t.Fatalf("expected no warranty, got %+v", res.Warranty)
	}
	if res.Notes == nil {
		t.Fatalf("expected empty notes slice")
	}
}

func TestFromQuoteAndPayment(t *testing.T) {
	price := 450.0
	q := entities.QuoteRequest{ID: "Q-1001", ProductName: "Hot Cupboard", Status: entities.QuoteStatusPaid, Price: &price}

	res := FromPayment(q, "https://pay.example/1")
	if res.CheckoutURL != "https://pay.example/1" || res.Quote.Status != "PAID" || *res.Quote.Price != 450 {
		t.Fatalf("unexpected payment response: %+v", res)
	}

	raw, err := json.Marshal(FromQuote(entities.QuoteRequest{ID: "Q-1"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := decoded["price"]; !ok || v != nil {
		t.Fatalf("expected explicit null price, got %v", decoded["price"])
	}
}

func TestFromResolution(t *testing.T) {
	none := FromResolution(usecase.Resolution{Source: usecase.ResolutionSourceNone})
	if none.User != nil || none.Source != "none" {
		t.Fatalf("unexpected response %+v", none)
	}

	u := entities.User{ID: "a1", Name: "Admin", Role: entities.UserRoleAdmin}
	got := FromResolution(usecase.Resolution{User: &u, Source: usecase.ResolutionSourceSession})
	if got.User == nil || got.User.ID != "a1" || got.User.Role != "ADMIN" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestFromOverview(t *testing.T) {
	o := usecase.CustomerOverview{
		Jobs:            []entities.Job{{ID: "J-1"}},
		History:         []usecase.HistoryEntry{{Kind: usecase.HistoryKindQuote, ID: "Q-1", Amount: 20}},
		ActiveJobs:      1,
		PendingPayments: 20,
	}
	res := FromOverview(o, testNow)
	if len(res.Jobs) != 1 || res.Quotes == nil || len(res.History) != 1 {
		t.Fatalf("unexpected overview %+v", res)
	}
	if res.History[0].Kind != "quote" || res.ActiveJobs != 1 || res.PendingPayments != 20 {
		t.Fatalf("unexpected overview fields %+v", res)
	}
}

func TestFromAssistantExchange(t *testing.T) {
	e := usecase.AssistantExchange{
		Reply:    entities.ChatTurn{Role: entities.ChatRoleAssistant, Content: "hi"},
		History:  []entities.ChatTurn{{Role: entities.ChatRoleUser, Content: "hello"}, {Role: entities.ChatRoleAssistant, Content: "hi"}},
		Degraded: true,
	}
	res := FromAssistantExchange(e)
	if res.Reply.Role != "assistant" || len(res.History) != 2 || !res.Degraded {
		t.Fatalf("unexpected exchange %+v", res)
	}
}
