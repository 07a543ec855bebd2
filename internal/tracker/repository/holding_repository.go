package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/dto"

	"gorm.io/gorm"
)

// HoldingRepository defines the interface for interacting with portfolio holdings.
type HoldingRepository interface {
	List(ctx context.Context) ([]entity.Holding, error)
	FindBySymbol(ctx context.Context, symbol string) (*entity.Holding, error)
	Create(ctx context.Context, holding *entity.Holding) error
	Update(ctx context.Context, holding *entity.Holding) error
	Delete(ctx context.Context, id uint) error
	UpdateQuote(ctx context.Context, symbol string, quote *dto.Quote, at time.Time) error
	UpdateSentiment(ctx context.Context, symbol string, sentiment float64, at time.Time) error
}

// NewHoldingRepository creates a new instance of HoldingRepository.
func NewHoldingRepository(db *gorm.DB) HoldingRepository {
	return &holdingRepository{db: db}
}

type holdingRepository struct {
	db *gorm.DB
}

func (r *holdingRepository) List(ctx context.Context) ([]entity.Holding, error) {
	var holdings []entity.Holding
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *holdingRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Holding, error) {
	var holding entity.Holding
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHoldingNotFound
		}
		return nil, err
	}
	return &holding, nil
}

func (r *holdingRepository) Create(ctx context.Context, holding *entity.Holding) error {
	return r.db.WithContext(ctx).Create(holding).Error
}

func (r *holdingRepository) Update(ctx context.Context, holding *entity.Holding) error {
	return r.db.WithContext(ctx).Save(holding).Error
}

func (r *holdingRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&entity.Holding{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrHoldingNotFound
	}
	return nil
}

// UpdateQuote writes only the quote columns of the holding with symbol, leaving quantity and
// purchase price untouched. It returns ErrHoldingNotFound when the holding no longer exists.
func (r *holdingRepository) UpdateQuote(ctx context.Context, symbol string, quote *dto.Quote, at time.Time) error {
	tx := r.db.WithContext(ctx).Model(&entity.Holding{}).
		Where("symbol = ?", symbol).
		Updates(quoteColumns(quote, at))
	if tx.Error != nil {
		return fmt.Errorf("failed to update quote: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrHoldingNotFound
	}
	return nil
}

func quoteColumns(quote *dto.Quote, at time.Time) map[string]interface{} {
	values := map[string]interface{}{
		"current_price":       quote.CurrentPrice,
		"previous_close":      quote.PreviousClose,
		"currency":            quote.Currency,
		"market_cap":          quote.MarketCap,
		"day_high":            quote.DayHigh,
		"day_low":             quote.DayLow,
		"fifty_two_week_high": quote.FiftyTwoWeekHigh,
		"fifty_two_week_low":  quote.FiftyTwoWeekLow,
		"volume":              quote.Volume,
		"price_updated_at":    at,
	}
	if quote.CompanyName != "" {
		values["company_name"] = quote.CompanyName
	}
	return values
}

func (r *holdingRepository) UpdateSentiment(ctx context.Context, symbol string, sentiment float64, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&entity.Holding{}).
		Where("symbol = ?", symbol).
		Updates(map[string]interface{}{
			"news_sentiment":       sentiment,
			"sentiment_updated_at": at,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update sentiment: %w", err)
	}
	return nil
}
