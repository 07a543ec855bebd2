package repository

import (
	"time"

	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/patrickmn/go-cache"
)

type cachedQuote struct {
	quote     dto.Quote
	expiresAt time.Time
}

// QuoteCache maps a symbol to a quote and its expiry. Freshness is judged against the
// injected clock; go-cache only evicts entries in the background.
type QuoteCache struct {
	store *cache.Cache
	ttl   time.Duration
	clock utils.Clock
}

func NewQuoteCache(ttl time.Duration, clock utils.Clock) *QuoteCache {
	return &QuoteCache{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
		clock: clock,
	}
}

// Get returns a copy of the cached quote when it has not expired.
func (c *QuoteCache) Get(symbol string) (*dto.Quote, bool) {
	item, ok := c.store.Get(symbol)
	if !ok {
		return nil, false
	}
	entry := item.(cachedQuote)
	if !c.clock.Now().Before(entry.expiresAt) {
		c.store.Delete(symbol)
		return nil, false
	}
	q := entry.quote
	return &q, true
}

func (c *QuoteCache) Set(symbol string, quote dto.Quote) {
	c.store.Set(symbol, cachedQuote{quote: quote, expiresAt: c.clock.Now().Add(c.ttl)}, cache.DefaultExpiration)
}
