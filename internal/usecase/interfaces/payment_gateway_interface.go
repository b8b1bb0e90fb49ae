package interfaces

import (
	"context"

	"bengal_portal/internal/domain/entities"
)

// IPaymentGateway abstracts the external checkout surface (e.g. Mercado Pago).
//
// The portal only asks for a redirect target when a customer accepts a quote.
// It never waits for nor validates a provider callback.
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, quote entities.QuoteRequest) (entities.Checkout, error)
}
