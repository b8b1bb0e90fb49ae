package repository

import (
	"context"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

// QuoteRepository keeps the whole quote collection as one JSON array,
// newest request first.
type QuoteRepository struct {
	store interfaces.IStore
	key   string
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(store interfaces.IStore, keyPrefix string) *QuoteRepository {
	return &QuoteRepository{store: store, key: storeKey(keyPrefix, KeyQuotes)}
}

func (r *QuoteRepository) LoadAll(ctx context.Context) ([]entities.QuoteRequest, bool, error) {
	var quotes []entities.QuoteRequest
	found, err := loadJSON(ctx, r.store, r.key, &quotes, interfaces.ErrCorruptCollection)
	if err != nil || !found {
		return nil, false, err
	}
	if quotes == nil {
		quotes = []entities.QuoteRequest{}
	}
	return quotes, true, nil
}

func (r *QuoteRepository) SaveAll(ctx context.Context, quotes []entities.QuoteRequest) error {
	if quotes == nil {
		quotes = []entities.QuoteRequest{}
	}
	return saveJSON(ctx, r.store, r.key, quotes)
}
