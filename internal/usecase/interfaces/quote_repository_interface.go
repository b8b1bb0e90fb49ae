package interfaces

import (
	"context"

	"bengal_portal/internal/domain/entities"
)

// IQuoteRepository reads and rewrites the whole quote collection.

type IQuoteRepository interface {
	LoadAll(ctx context.Context) (quotes []entities.QuoteRequest, found bool, err error)
	SaveAll(ctx context.Context, quotes []entities.QuoteRequest) error
}
