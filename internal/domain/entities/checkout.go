package entities

import (
	"encoding/json"
	"time"
)

// Checkout is the payment redirect handed to a customer accepting a quote.
//
// The portal never receives a provider callback: the QUOTED -> PAID move is
// asserted by the customer and the checkout is only a redirect target.
//
// Provider payload:
//   - ProviderResponseRaw keeps the provider body (JSON) for traceability.
//   - ProviderReference is the provider's preference/session id when known.
type Checkout struct {
	QuoteID           string    `json:"quote_id"`
	ExternalReference string    `json:"external_reference"`
	URL               string    `json:"url"`
	ProviderReference string    `json:"provider_reference,omitempty"`
	CreatedAt         time.Time `json:"created_at"`

	ProviderResponseRaw json.RawMessage `json:"provider_response_raw,omitempty"`
}
