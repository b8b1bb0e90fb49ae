package usecase

import (
	"context"
	"errors"
	"testing"

	"bengal_portal/internal/domain/entities"
	mock_interfaces "bengal_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Directory(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewCustomerUseCase(newTestJobUseCase(jobRepo), newTestQuoteUseCase(nil, nil))

	jobs := threeJobs()
	jobs[2].CustomerName = "Rose Diner Ltd"
	jobRepo.EXPECT().LoadAll(gomock.Any()).Return(jobs, true, nil)

	got, err := uc.Directory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 customers, got %+v", got)
	}
	if got[0].ID != "CUST-1000" || got[0].Name != "Rose Diner" {
		t.Fatalf("first seen record must win, got %+v", got[0])
	}
}

func TestCustomerUseCase_Overview(t *testing.T) {
	t.Run("requires a user", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		if _, err := uc.Overview(context.Background(), entities.User{}, fixedNow); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("summarizes jobs and quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewCustomerUseCase(newTestJobUseCase(jobRepo), newTestQuoteUseCase(quoteRepo, nil))

		jobRepo.EXPECT().LoadAll(gomock.Any()).Return(threeJobs(), true, nil)
		quotes := []entities.QuoteRequest{
			{ID: "Q-1", ProductName: "Cooker", CustomerID: "CUST-1000", Status: entities.QuoteStatusQuoted, Price: priced(50), Date: "2025-02-20T08:00:00Z"},
			{ID: "Q-2", ProductName: "Hood", CustomerID: "CUST-2000", Status: entities.QuoteStatusQuoted, Price: priced(999), Date: "2025-02-21T08:00:00Z"},
			{ID: "Q-3", ProductName: "Pot", CustomerID: "CUST-1000", Status: entities.QuoteStatusNew, Date: "not a date"},
		}
		quoteRepo.EXPECT().LoadAll(gomock.Any()).Return(quotes, true, nil)

		got, err := uc.Overview(context.Background(), entities.User{ID: "CUST-1000", Role: entities.UserRoleCustomer}, fixedNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Jobs) != 2 || len(got.Quotes) != 2 {
			t.Fatalf("unexpected ownership split: jobs=%d quotes=%d", len(got.Jobs), len(got.Quotes))
		}
		if got.ActiveJobs != 1 {
			t.Fatalf("expected 1 active job, got %d", got.ActiveJobs)
		}
		// unpaid 100 + partial 300 + quoted 50
		if got.PendingPayments != 450 {
			t.Fatalf("expected pending 450, got %v", got.PendingPayments)
		}
		order := []string{}
		for _, h := range got.History {
			order = append(order, h.ID)
		}
		want := []string{"Q-1", "J-1003", "J-1001", "Q-3"}
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("unexpected history order %v", order)
			}
		}
		if got.Warranty == nil || got.Warranty.Label != entities.WarrantyExpiringSoon || got.Warranty.RemainingDays != 10 {
			t.Fatalf("unexpected warranty %+v", got.Warranty)
		}
	})
}
