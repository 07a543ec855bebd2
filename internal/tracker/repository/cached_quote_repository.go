package repository

import (
	"context"
	"errors"

	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/utils"
)

type cachedQuoteRepository struct {
	source    QuoteRepository
	cache     *QuoteCache
	lastPrice LastPriceRepository
	logger    *logger.Logger
}

// NewCachedQuoteRepository serves quotes from cache, then source, then the last known
// price. lastPrice may be nil.
func NewCachedQuoteRepository(source QuoteRepository, cache *QuoteCache, lastPrice LastPriceRepository, log *logger.Logger) QuoteRepository {
	return &cachedQuoteRepository{
		source:    source,
		cache:     cache,
		lastPrice: lastPrice,
		logger:    log,
	}
}

func (r *cachedQuoteRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if q, ok := r.cache.Get(symbol); ok {
		return q, nil
	}

	quote, err := r.source.GetQuote(ctx, symbol)
	if err == nil {
		r.cache.Set(symbol, *quote)
		if r.lastPrice != nil {
			if saveErr := r.lastPrice.Save(ctx, *quote); saveErr != nil {
				r.logger.Warn("Failed to store last price", logger.ErrorField(saveErr), logger.StringField("symbol", symbol))
			}
		}
		return quote, nil
	}

	if errors.Is(err, ErrSymbolNotFound) || r.lastPrice == nil {
		return nil, err
	}

	last, lastErr := r.lastPrice.Get(ctx, symbol)
	if lastErr != nil {
		return nil, err
	}
	r.logger.Warn("Using last known price", logger.ErrorField(err), logger.StringField("symbol", symbol))
	return last, nil
}
