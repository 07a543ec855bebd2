package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/pkg/common"

	"github.com/redis/go-redis/v9"
)

// LastPriceRepository keeps the last successfully fetched quote of each symbol so a
// pass can still value a holding when the market data API is down.
type LastPriceRepository interface {
	Save(ctx context.Context, quote dto.Quote) error
	Get(ctx context.Context, symbol string) (*dto.Quote, error)
}

type lastPriceRepository struct {
	client *redis.Client
}

func NewLastPriceRepository(client *redis.Client) LastPriceRepository {
	return &lastPriceRepository{client: client}
}

func (r *lastPriceRepository) Save(ctx context.Context, quote dto.Quote) error {
	key := fmt.Sprintf(common.RedisKeyLastPrice, quote.Symbol)
	err := r.client.HSet(ctx, key, map[string]interface{}{
		"company_name":   quote.CompanyName,
		"current_price":  quote.CurrentPrice,
		"previous_close": quote.PreviousClose,
		"currency":       quote.Currency,
		"fetched_at":     quote.FetchedAt.Format(time.RFC3339),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to save last price: %w", err)
	}
	return nil
}

func (r *lastPriceRepository) Get(ctx context.Context, symbol string) (*dto.Quote, error) {
	key := fmt.Sprintf(common.RedisKeyLastPrice, symbol)
	values, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrLastPriceNotFound
		}
		return nil, fmt.Errorf("failed to get last price: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrLastPriceNotFound
	}

	price, err := strconv.ParseFloat(values["current_price"], 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last price: %w", err)
	}
	previousClose, _ := strconv.ParseFloat(values["previous_close"], 64)
	fetchedAt, _ := time.Parse(time.RFC3339, values["fetched_at"])

	return &dto.Quote{
		Symbol:        symbol,
		CompanyName:   values["company_name"],
		CurrentPrice:  price,
		PreviousClose: previousClose,
		Currency:      values["currency"],
		FetchedAt:     fetchedAt,
	}, nil
}
