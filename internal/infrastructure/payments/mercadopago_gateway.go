package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrQuoteNotPriced = errors.New("quote has no price")

const (
	checkoutCurrency = "GBP"
	mockCheckoutBase = "https://www.mercadopago.com/checkout/v1/redirect?pref_id="
)

// MercadoPagoGateway turns a paid quote into a Mercado Pago checkout
// preference and hands back its init point.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
	sandbox  bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:  preference.NewClient(cfg),
		sandbox: strings.HasPrefix(accessToken, "TEST-"),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, quote entities.QuoteRequest) (entities.Checkout, error) {
	if quote.Price == nil || *quote.Price <= 0 {
		log.Printf("[payment][gateway] quote not priced quote_id=%s", quote.ID)
		return entities.Checkout{}, ErrQuoteNotPriced
	}
	externalRef := fmt.Sprintf("%s:%s", quote.ID, uuid.NewString())

	if g != nil && g.mockMode {
		return g.mockCheckout(quote, externalRef)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Checkout{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] preference create start quote_id=%s amount=%.2f", quote.ID, *quote.Price)

	req := preference.Request{
		ExternalReference: externalRef,
		Items: []preference.ItemRequest{{
			ID:         quote.ID,
			Title:      quote.ProductName,
			PictureURL: quote.ProductImage,
			Quantity:   1,
			UnitPrice:  *quote.Price,
			CurrencyID: checkoutCurrency,
		}},
		Payer: &preference.PayerRequest{
			Name:  quote.CustomerName,
			Email: quote.CustomerEmail,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed quote_id=%s err=%v", quote.ID, err)
		return entities.Checkout{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.Checkout{}, err
	}

	url := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		url = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] preference create success quote_id=%s preference_id=%s", quote.ID, resp.ID)

	return entities.Checkout{
		QuoteID:             quote.ID,
		ExternalReference:   externalRef,
		URL:                 url,
		ProviderReference:   resp.ID,
		CreatedAt:           time.Now().UTC(),
		ProviderResponseRaw: raw,
	}, nil
}

func (g *MercadoPagoGateway) mockCheckout(quote entities.QuoteRequest, externalRef string) (entities.Checkout, error) {
	id := fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano())
	now := time.Now().UTC()
	resp := map[string]any{
		"id":                 id,
		"external_reference": externalRef,
		"init_point":         mockCheckoutBase + id,
		"date_created":       now.Format(time.RFC3339Nano),
		"items": []map[string]any{{
			"id":          quote.ID,
			"title":       quote.ProductName,
			"quantity":    1,
			"unit_price":  *quote.Price,
			"currency_id": checkoutCurrency,
		}},
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return entities.Checkout{}, err
	}
	log.Printf("[payment][gateway] mock preference created quote_id=%s preference_id=%s", quote.ID, id)

	return entities.Checkout{
		QuoteID:             quote.ID,
		ExternalReference:   externalRef,
		URL:                 mockCheckoutBase + id,
		ProviderReference:   id,
		CreatedAt:           now,
		ProviderResponseRaw: raw,
	}, nil
}
