package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"bengal_portal/internal/domain/entities"
	mock_interfaces "bengal_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestQuoteUseCase(repo *mock_interfaces.MockIQuoteRepository, gateway *mock_interfaces.MockIPaymentGateway) *QuoteUseCase {
	var uc *QuoteUseCase
	if gateway == nil {
		uc = NewQuoteUseCase(repo, nil, nil, "")
	} else {
		uc = NewQuoteUseCase(repo, gateway, nil, "https://pay.example.com/fallback")
	}
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func priced(v float64) *float64 { return &v }

func storedQuotes() []entities.QuoteRequest {
	return []entities.QuoteRequest{
		{ID: "Q-1003", ProductName: "Hot Cupboard", CustomerID: "u1", Status: entities.QuoteStatusPaid, Price: priced(900)},
		{ID: "Q-1002", ProductName: "Stockpot", CustomerID: "CUST-2000", Status: entities.QuoteStatusQuoted, Price: priced(120)},
		{ID: "Q-1001", ProductName: "Cooker", CustomerID: "u1", Status: entities.QuoteStatusNew},
	}
}

func TestQuoteUseCase_RequestQuote(t *testing.T) {
	customer, _ := entities.CannedUser(entities.UserRoleCustomer)
	admin, _ := entities.CannedUser(entities.UserRoleAdmin)
	product := entities.Product{ID: "p1", Name: "Extraction Hood", Image: "hood.jpg"}

	t.Run("requires a signed-in customer", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		if _, err := uc.RequestQuote(context.Background(), product, entities.User{}, QuoteInput{}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
		if _, err := uc.RequestQuote(context.Background(), product, admin, QuoteInput{}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if _, err := uc.RequestQuote(context.Background(), entities.Product{}, customer, QuoteInput{}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("snapshots customer and prepends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, quotes []entities.QuoteRequest) error {
			if len(quotes) != 4 || quotes[1].ID != "Q-1003" {
				t.Fatalf("expected new quote first, got %+v", quotes)
			}
			return nil
		})

		q, err := uc.RequestQuote(context.Background(), product, customer, QuoteInput{Notes: " rattles ", ApplianceImage: "photo.jpg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !regexp.MustCompile(`^Q-\d{4}$`).MatchString(q.ID) {
			t.Fatalf("unexpected quote id %q", q.ID)
		}
		if q.Status != entities.QuoteStatusNew || q.Price != nil {
			t.Fatalf("unexpected initial state: %+v", q)
		}
		if q.CustomerID != customer.ID || q.CustomerName != customer.Name || q.CustomerEmail != customer.Email {
			t.Fatalf("customer snapshot missing: %+v", q)
		}
		if q.CustomerNotes != "rattles" || q.ApplianceImage != "photo.jpg" || q.Date != fixedNow.Format(time.RFC3339) {
			t.Fatalf("unexpected details: %+v", q)
		}
	})

	t.Run("corrupt collection starts empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().LoadAll(gomock.Any()).Return(nil, false, fmt.Errorf("%w: eof", ErrCorruptCollection))
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Len(1)).Return(nil)

		if _, err := uc.RequestQuote(context.Background(), product, customer, QuoteInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_PriceQuote(t *testing.T) {
	t.Run("price must be positive", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		if _, err := uc.PriceQuote(context.Background(), "Q-1001", 0, ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	cases := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "new to quoted", id: "Q-1001"},
		{name: "re-price quoted", id: "Q-1002"},
		{name: "paid cannot go back to quoted", id: "Q-1003", wantErr: ErrInvalidTransition},
		{name: "missing", id: "Q-0000", wantErr: ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := newTestQuoteUseCase(repo, nil)

			repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil)
			if tc.wantErr == nil {
				repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := uc.PriceQuote(context.Background(), tc.id, 450, " includes fitting ")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != entities.QuoteStatusQuoted || got.PriceValue() != 450 || got.AdminNotes != "includes fitting" {
				t.Fatalf("unexpected quote: %+v", got)
			}
		})
	}
}

func TestQuoteUseCase_AcceptAndPay(t *testing.T) {
	owner := entities.User{ID: "CUST-2000", Role: entities.UserRoleCustomer}

	t.Run("requires quoted status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)
		repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil)

		u1 := entities.User{ID: "u1", Role: entities.UserRoleCustomer}
		if _, err := uc.AcceptAndPay(context.Background(), "Q-1001", u1); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("other customer cannot pay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)
		repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil)

		u1 := entities.User{ID: "u1", Role: entities.UserRoleCustomer}
		if _, err := uc.AcceptAndPay(context.Background(), "Q-1002", u1); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("persists paid before checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestQuoteUseCase(repo, gateway)

		repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil)
		gomock.InOrder(
			repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, quotes []entities.QuoteRequest) error {
				if quotes[1].Status != entities.QuoteStatusPaid {
					t.Fatalf("expected PAID persisted, got %s", quotes[1].Status)
				}
				return nil
			}),
			gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequest{})).
				Return(entities.Checkout{URL: "https://mp.example.com/init/abc", ProviderReference: "pref-1"}, nil),
		)

		res, err := uc.AcceptAndPay(context.Background(), "Q-1002", owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.Status != entities.QuoteStatusPaid || res.CheckoutURL != "https://mp.example.com/init/abc" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway failure falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestQuoteUseCase(repo, gateway)

		repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.Checkout{}, errors.New("timeout"))

		res, err := uc.AcceptAndPay(context.Background(), "Q-1002", owner)
		if err != nil {
			t.Fatalf("gateway errors must not fail the payment, got %v", err)
		}
		if res.CheckoutURL != "https://pay.example.com/fallback" {
			t.Fatalf("expected fallback url, got %q", res.CheckoutURL)
		}
	})

	t.Run("no gateway uses default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.AcceptAndPay(context.Background(), "Q-1002", owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CheckoutURL != DefaultCheckoutURL {
			t.Fatalf("expected default url, got %q", res.CheckoutURL)
		}
	})
}

func TestQuoteUseCase_StatusHistoryIsForwardOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newTestQuoteUseCase(repo, nil)

	var stored []entities.QuoteRequest
	repo.EXPECT().LoadAll(gomock.Any()).DoAndReturn(func(context.Context) ([]entities.QuoteRequest, bool, error) {
		return append([]entities.QuoteRequest(nil), stored...), stored != nil, nil
	}).AnyTimes()
	repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, quotes []entities.QuoteRequest) error {
		stored = append([]entities.QuoteRequest(nil), quotes...)
		return nil
	}).AnyTimes()

	customer, _ := entities.CannedUser(entities.UserRoleCustomer)
	ctx := context.Background()
	q, err := uc.RequestQuote(ctx, entities.Product{Name: "Cooker"}, customer, QuoteInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	observed := []entities.QuoteStatus{q.Status}

	for _, step := range []func() (entities.QuoteRequest, error){
		func() (entities.QuoteRequest, error) { return uc.PriceQuote(ctx, q.ID, 100, "") },
		func() (entities.QuoteRequest, error) { return uc.PriceQuote(ctx, q.ID, 120, "revised") },
		func() (entities.QuoteRequest, error) {
			res, err := uc.AcceptAndPay(ctx, q.ID, customer)
			return res.Quote, err
		},
	} {
		got, err := step()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		observed = append(observed, got.Status)
	}

	if _, err := uc.PriceQuote(ctx, q.ID, 80, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after payment, got %v", err)
	}

	rank := map[entities.QuoteStatus]int{entities.QuoteStatusNew: 0, entities.QuoteStatusQuoted: 1, entities.QuoteStatusPaid: 2}
	for i := 1; i < len(observed); i++ {
		if rank[observed[i]] < rank[observed[i-1]] {
			t.Fatalf("status moved backward: %v", observed)
		}
	}

	pending, _ := uc.Pending(ctx)
	paid, _ := uc.Paid(ctx)
	if len(pending) != 0 || len(paid) != 1 {
		t.Fatalf("unexpected views pending=%d paid=%d", len(pending), len(paid))
	}
}

func TestQuoteUseCase_Views(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newTestQuoteUseCase(repo, nil)
	repo.EXPECT().LoadAll(gomock.Any()).Return(storedQuotes(), true, nil).AnyTimes()
	ctx := context.Background()

	pending, err := uc.Pending(ctx)
	if err != nil || len(pending) != 2 || pending[0].ID != "Q-1002" {
		t.Fatalf("unexpected pending %+v err=%v", pending, err)
	}
	paid, err := uc.Paid(ctx)
	if err != nil || len(paid) != 1 || paid[0].ID != "Q-1003" {
		t.Fatalf("unexpected paid %+v err=%v", paid, err)
	}
	mine, err := uc.ListByCustomer(ctx, "u1")
	if err != nil || len(mine) != 2 {
		t.Fatalf("unexpected customer quotes %+v err=%v", mine, err)
	}
	if _, err := uc.GetByID(ctx, "Q-4040"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
