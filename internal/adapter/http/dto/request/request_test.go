package request

import (
	"testing"

	"bengal_portal/internal/domain/entities"
)

func TestJobCreateRequest_ToEntity(t *testing.T) {
	r := JobCreateRequest{Title: "Hood", CustomerName: "Rose", Status: " in_progress ", PaymentStatus: "partial", StartDate: " 2025-01-01 ", Amount: 10}
	j := r.ToEntity()
	if j.Status != entities.JobStatusInProgress || j.PaymentStatus != entities.PaymentStatusPartial {
		t.Fatalf("unexpected statuses: %+v", j)
	}
	if j.StartDate != "2025-01-01" || j.ID != "" {
		t.Fatalf("unexpected fields: %+v", j)
	}

	empty := JobCreateRequest{Title: "Hood", CustomerName: "Rose"}.ToEntity()
	if empty.Status != "" || empty.PaymentStatus != "" {
		t.Fatalf("blank statuses must stay blank for defaults, got %+v", empty)
	}
}

func TestJobUpdateRequest_ToPatch(t *testing.T) {
	status := "completed"
	title := "New"
	p := JobUpdateRequest{Status: &status, Title: &title}.ToPatch()
	if p.Status == nil || *p.Status != entities.JobStatusCompleted {
		t.Fatalf("unexpected status %+v", p.Status)
	}
	if p.Title != &title || p.PaymentStatus != nil || p.Amount != nil {
		t.Fatalf("unexpected patch %+v", p)
	}
}

func TestJobStatusRequest_ResolveStatus(t *testing.T) {
	if got := (JobStatusRequest{Status: " cancelled"}).ResolveStatus(); got != entities.JobStatusCancelled {
		t.Fatalf("expected CANCELLED, got %q", got)
	}
}

func TestQuoteCreateRequest_ToProduct(t *testing.T) {
	r := QuoteCreateRequest{Product: ProductRequest{ID: "p1", Name: "Cooker", Image: "c.jpg", Category: "Cookers", Price: 1200}}
	p := r.ToProduct()
	if p.ID != "p1" || p.Name != "Cooker" || p.Category != "Cookers" || p.Price != 1200 {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestProfileRequest_ToPatch(t *testing.T) {
	phone := "0111"
	p := ProfileRequest{Phone: &phone}.ToPatch()
	if p.Phone != &phone || p.Name != nil {
		t.Fatalf("unexpected patch %+v", p)
	}
}
