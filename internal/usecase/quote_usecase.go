package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

// DefaultCheckoutURL is where customers are sent when no gateway produced a
// checkout link.
const DefaultCheckoutURL = "https://www.paypal.com/checkoutnow"

// IQuoteUseCase exposes the quote lifecycle NEW -> QUOTED -> PAID.

type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, product entities.Product, customer entities.User, in QuoteInput) (entities.QuoteRequest, error)
	PriceQuote(ctx context.Context, id string, price float64, adminNotes string) (entities.QuoteRequest, error)
	AcceptAndPay(ctx context.Context, id string, customer entities.User) (PaymentResult, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	Pending(ctx context.Context) ([]entities.QuoteRequest, error)
	Paid(ctx context.Context) ([]entities.QuoteRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.QuoteRequest, error)
}

// QuoteInput carries the optional details a customer adds to a request.
type QuoteInput struct {
	Notes          string
	ApplianceImage string
}

// PaymentResult is the paid quote plus where to send the customer next.
type PaymentResult struct {
	Quote       entities.QuoteRequest
	CheckoutURL string
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	gateway     interfaces.IPaymentGateway
	metrics     interfaces.ILifecycleMetrics
	fallbackURL string

	mu         sync.Mutex
	now        func() time.Time
	nextNumber numberSource
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, metrics interfaces.ILifecycleMetrics, fallbackURL string) *QuoteUseCase {
	fallbackURL = strings.TrimSpace(fallbackURL)
	if fallbackURL == "" {
		fallbackURL = DefaultCheckoutURL
	}
	return &QuoteUseCase{
		repo:        repo,
		gateway:     gateway,
		metrics:     metrics,
		fallbackURL: fallbackURL,
		now:         func() time.Time { return time.Now().UTC() },
		nextNumber:  randomFourDigits,
	}
}

// load returns the stored quotes. A missing or unreadable collection reads
// as empty. Callers must hold u.mu.
func (u *QuoteUseCase) load(ctx context.Context) ([]entities.QuoteRequest, error) {
	quotes, found, err := u.repo.LoadAll(ctx)
	switch {
	case errors.Is(err, ErrCorruptCollection):
		log.Printf("[quote][usecase] stored quotes unreadable; starting empty err=%v", err)
		return []entities.QuoteRequest{}, nil
	case err != nil:
		return nil, err
	case !found:
		return []entities.QuoteRequest{}, nil
	}
	return quotes, nil
}

// RequestQuote files a new request for product on behalf of customer. The
// customer's id, name and email are copied into the request as they are now.
func (u *QuoteUseCase) RequestQuote(ctx context.Context, product entities.Product, customer entities.User, in QuoteInput) (entities.QuoteRequest, error) {
	if strings.TrimSpace(customer.ID) == "" {
		return entities.QuoteRequest{}, ErrUnauthenticated
	}
	if customer.Role != entities.UserRoleCustomer {
		log.Printf("[quote][usecase] request rejected role=%s user_id=%s", customer.Role, customer.ID)
		return entities.QuoteRequest{}, ErrForbidden
	}
	name := strings.TrimSpace(product.Name)
	if name == "" {
		return entities.QuoteRequest{}, validationError("product name is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	quotes, err := u.load(ctx)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	id, err := newShortID("Q", u.nextNumber, func(id string) bool { return indexOfQuote(quotes, id) >= 0 })
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	q := entities.QuoteRequest{
		ID:             id,
		ProductName:    name,
		ProductImage:   strings.TrimSpace(product.Image),
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerEmail:  customer.Email,
		Date:           u.now().Format(time.RFC3339),
		Status:         entities.QuoteStatusNew,
		CustomerNotes:  strings.TrimSpace(in.Notes),
		ApplianceImage: strings.TrimSpace(in.ApplianceImage),
	}

	next := make([]entities.QuoteRequest, 0, len(quotes)+1)
	next = append(next, q)
	next = append(next, quotes...)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		log.Printf("[quote][usecase] request persist failed quote_id=%s err=%v", id, err)
		return entities.QuoteRequest{}, err
	}
	u.recordStatus(q.Status)
	log.Printf("[quote][usecase] request success quote_id=%s customer_id=%s product=%q", id, customer.ID, name)
	return q, nil
}

// PriceQuote sets or replaces the price of a request not yet paid.
func (u *QuoteUseCase) PriceQuote(ctx context.Context, id string, price float64, adminNotes string) (entities.QuoteRequest, error) {
	if price <= 0 {
		return entities.QuoteRequest{}, validationError("price must be positive")
	}
	return u.mutate(ctx, id, "price", func(q entities.QuoteRequest) (entities.QuoteRequest, error) {
		next, err := q.Status.TransitionTo(entities.QuoteStatusQuoted)
		if err != nil {
			return entities.QuoteRequest{}, err
		}
		q.Status = next
		q.Price = &price
		q.AdminNotes = strings.TrimSpace(adminNotes)
		return q, nil
	})
}

// AcceptAndPay marks a quoted request as paid and asks the gateway for a
// checkout link. The PAID status is stored before the gateway is called and
// gateway failures only cost the caller the provider link.
func (u *QuoteUseCase) AcceptAndPay(ctx context.Context, id string, customer entities.User) (PaymentResult, error) {
	if strings.TrimSpace(customer.ID) == "" {
		return PaymentResult{}, ErrUnauthenticated
	}

	paid, err := u.mutate(ctx, id, "accept-and-pay", func(q entities.QuoteRequest) (entities.QuoteRequest, error) {
		if q.CustomerID != customer.ID {
			return entities.QuoteRequest{}, ErrForbidden
		}
		next, err := q.Status.TransitionTo(entities.QuoteStatusPaid)
		if err != nil {
			return entities.QuoteRequest{}, err
		}
		q.Status = next
		return q, nil
	})
	if err != nil {
		return PaymentResult{}, err
	}

	return PaymentResult{Quote: paid, CheckoutURL: u.checkoutURL(ctx, paid)}, nil
}

func (u *QuoteUseCase) checkoutURL(ctx context.Context, q entities.QuoteRequest) string {
	if u.gateway == nil {
		log.Printf("[quote][usecase] no payment gateway configured; using fallback quote_id=%s", q.ID)
		return u.fallbackURL
	}
	checkout, err := u.gateway.CreateCheckout(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] checkout creation failed; using fallback quote_id=%s err=%v", q.ID, err)
		return u.fallbackURL
	}
	if strings.TrimSpace(checkout.URL) == "" {
		log.Printf("[quote][usecase] checkout returned no url; using fallback quote_id=%s", q.ID)
		return u.fallbackURL
	}
	log.Printf("[quote][usecase] checkout created quote_id=%s provider_reference=%s", q.ID, checkout.ProviderReference)
	return checkout.URL
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, validationError("quote id is required")
	}
	quotes, err := u.snapshot(ctx)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	idx := indexOfQuote(quotes, id)
	if idx < 0 {
		return entities.QuoteRequest{}, notFoundError("quote", id)
	}
	return quotes[idx], nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.snapshot(ctx)
}

func (u *QuoteUseCase) Pending(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.filter(ctx, func(q entities.QuoteRequest) bool { return q.Status.IsPending() })
}

func (u *QuoteUseCase) Paid(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.filter(ctx, func(q entities.QuoteRequest) bool { return q.Status == entities.QuoteStatusPaid })
}

func (u *QuoteUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.QuoteRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, validationError("customer id is required")
	}
	return u.filter(ctx, func(q entities.QuoteRequest) bool { return q.CustomerID == customerID })
}

func (u *QuoteUseCase) snapshot(ctx context.Context) ([]entities.QuoteRequest, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.load(ctx)
}

func (u *QuoteUseCase) filter(ctx context.Context, keep func(entities.QuoteRequest) bool) ([]entities.QuoteRequest, error) {
	quotes, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.QuoteRequest, 0, len(quotes))
	for _, q := range quotes {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (u *QuoteUseCase) mutate(ctx context.Context, id, op string, change func(entities.QuoteRequest) (entities.QuoteRequest, error)) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, validationError("quote id is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	quotes, err := u.load(ctx)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	idx := indexOfQuote(quotes, id)
	if idx < 0 {
		log.Printf("[quote][usecase] %s target missing quote_id=%s", op, id)
		return entities.QuoteRequest{}, notFoundError("quote", id)
	}

	updated, err := change(quotes[idx])
	if err != nil {
		log.Printf("[quote][usecase] %s rejected quote_id=%s status=%s err=%v", op, id, quotes[idx].Status, err)
		return entities.QuoteRequest{}, err
	}

	next := make([]entities.QuoteRequest, len(quotes))
	copy(next, quotes)
	next[idx] = updated
	if err := u.repo.SaveAll(ctx, next); err != nil {
		log.Printf("[quote][usecase] %s persist failed quote_id=%s err=%v", op, id, err)
		return entities.QuoteRequest{}, err
	}
	u.recordStatus(updated.Status)
	log.Printf("[quote][usecase] %s success quote_id=%s status=%s", op, id, updated.Status)
	return updated, nil
}

func (u *QuoteUseCase) recordStatus(s entities.QuoteStatus) {
	if u.metrics != nil {
		u.metrics.IncQuoteStatus(string(s))
	}
}

func indexOfQuote(quotes []entities.QuoteRequest, id string) int {
	for i, q := range quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}
