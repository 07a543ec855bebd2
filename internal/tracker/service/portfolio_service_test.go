package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/internal/tracker/repository"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var serviceNow = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

func TestPortfolioService_AddHolding(t *testing.T) {
	ctx := context.Background()
	quote := &dto.Quote{Symbol: "ACME", CompanyName: "Acme Corp", CurrentPrice: 130, PreviousClose: 125, Currency: "USD"}

	t.Run("creates new holding", func(t *testing.T) {
		holdings := new(mockHoldingRepository)
		quotes := new(mockQuoteRepository)
		quotes.On("GetQuote", ctx, "ACME").Return(quote, nil)
		holdings.On("FindBySymbol", ctx, "ACME").Return(nil, repository.ErrHoldingNotFound)
		holdings.On("Create", ctx, mock.AnythingOfType("*entity.Holding")).Return(nil)

		svc := NewPortfolioService(holdings, quotes, &utils.FixedClock{T: serviceNow}, 2, logger.NewNop())
		got, err := svc.AddHolding(ctx, dto.AddHoldingRequest{Symbol: " acme ", Quantity: 10, PurchasePrice: 100})
		require.NoError(t, err)

		assert.Equal(t, "ACME", got.Symbol)
		assert.Equal(t, "Acme Corp", got.CompanyName)
		assert.Equal(t, 10.0, got.Quantity)
		assert.Equal(t, 100.0, got.PurchasePrice)
		assert.Equal(t, 130.0, got.CurrentPrice)
		require.NotNil(t, got.PriceUpdatedAt)
		assert.Equal(t, serviceNow, *got.PriceUpdatedAt)
		holdings.AssertExpectations(t)
	})

	t.Run("merges into existing at weighted average price", func(t *testing.T) {
		holdings := new(mockHoldingRepository)
		quotes := new(mockQuoteRepository)
		existing := &entity.Holding{ID: 7, Symbol: "ACME", Quantity: 10, PurchasePrice: 100}
		quotes.On("GetQuote", ctx, "ACME").Return(quote, nil)
		holdings.On("FindBySymbol", ctx, "ACME").Return(existing, nil)
		holdings.On("Update", ctx, existing).Return(nil)

		svc := NewPortfolioService(holdings, quotes, &utils.FixedClock{T: serviceNow}, 2, logger.NewNop())
		got, err := svc.AddHolding(ctx, dto.AddHoldingRequest{Symbol: "ACME", Quantity: 30, PurchasePrice: 120})
		require.NoError(t, err)

		assert.Equal(t, uint(7), got.ID)
		assert.Equal(t, 40.0, got.Quantity)
		assert.Equal(t, 115.0, got.PurchasePrice)
		holdings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []dto.AddHoldingRequest{
			{Symbol: "", Quantity: 1, PurchasePrice: 1},
			{Symbol: "ACME", Quantity: 0, PurchasePrice: 1},
			{Symbol: "ACME", Quantity: 1, PurchasePrice: -5},
		}
		for _, req := range tests {
			holdings := new(mockHoldingRepository)
			quotes := new(mockQuoteRepository)
			svc := NewPortfolioService(holdings, quotes, &utils.FixedClock{T: serviceNow}, 2, logger.NewNop())

			_, err := svc.AddHolding(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidHolding)
			quotes.AssertNotCalled(t, "GetQuote", mock.Anything, mock.Anything)
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		holdings := new(mockHoldingRepository)
		quotes := new(mockQuoteRepository)
		quotes.On("GetQuote", ctx, "NOPE").Return(nil, repository.ErrSymbolNotFound)

		svc := NewPortfolioService(holdings, quotes, &utils.FixedClock{T: serviceNow}, 2, logger.NewNop())
		_, err := svc.AddHolding(ctx, dto.AddHoldingRequest{Symbol: "NOPE", Quantity: 1, PurchasePrice: 1})
		assert.ErrorIs(t, err, repository.ErrSymbolNotFound)
	})
}

func TestPortfolioService_GetPortfolio(t *testing.T) {
	ctx := context.Background()
	holdings := new(mockHoldingRepository)
	holdings.On("List", ctx).Return([]entity.Holding{
		{Symbol: "AAA", Quantity: 10, PurchasePrice: 100, CurrentPrice: 110, PreviousClose: 105, NewsSentiment: 0.4},
		{Symbol: "BBB", Quantity: 5, PurchasePrice: 40, CurrentPrice: 30, PreviousClose: 32, NewsSentiment: -0.05},
	}, nil)

	svc := NewPortfolioService(holdings, new(mockQuoteRepository), &utils.FixedClock{T: serviceNow}, 2, logger.NewNop())
	got, err := svc.GetPortfolio(ctx)
	require.NoError(t, err)

	require.Len(t, got.Holdings, 2)
	assert.Equal(t, 1250.0, got.TotalValue)
	assert.Equal(t, 1200.0, got.TotalCost)
	assert.Equal(t, 50.0, got.TotalGainLoss)
	assert.InDelta(t, 50.0/1200*100, got.TotalGainLossPct, 1e-9)
	assert.Equal(t, 40.0, got.DailyGainLoss)
	assert.Equal(t, "Positive", got.Holdings[0].SentimentLabel)
	assert.Equal(t, "success", got.Holdings[0].SentimentColor)
	assert.Equal(t, "Neutral", got.Holdings[1].SentimentLabel)
}

func TestPortfolioService_RemoveHolding(t *testing.T) {
	ctx := context.Background()
	holdings := new(mockHoldingRepository)
	holdings.On("Delete", ctx, uint(1)).Return(nil)
	holdings.On("Delete", ctx, uint(2)).Return(repository.ErrHoldingNotFound)
	holdings.On("Delete", ctx, uint(3)).Return(errors.New("connection reset"))

	svc := NewPortfolioService(holdings, new(mockQuoteRepository), &utils.FixedClock{T: serviceNow}, 2, logger.NewNop())

	assert.NoError(t, svc.RemoveHolding(ctx, 1))
	assert.ErrorIs(t, svc.RemoveHolding(ctx, 2), repository.ErrHoldingNotFound)
	err := svc.RemoveHolding(ctx, 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrHoldingNotFound)
}

func TestPortfolioService_RefreshPrices(t *testing.T) {
	ctx := context.Background()
	holdings := new(mockHoldingRepository)
	quotes := new(mockQuoteRepository)
	holdings.On("List", ctx).Return([]entity.Holding{
		{ID: 1, Symbol: "AAA", Quantity: 1, CurrentPrice: 10},
		{ID: 2, Symbol: "BBB", Quantity: 1, CurrentPrice: 20},
	}, nil)
	quotes.On("GetQuote", ctx, "AAA").Return(&dto.Quote{Symbol: "AAA", CurrentPrice: 11}, nil)
	quotes.On("GetQuote", ctx, "BBB").Return(nil, errors.New("timeout"))
	holdings.On("UpdateQuote", ctx, "AAA", mock.MatchedBy(func(q *dto.Quote) bool {
		return q.CurrentPrice == 11
	}), serviceNow).Return(nil).Once()

	svc := NewPortfolioService(holdings, quotes, &utils.FixedClock{T: serviceNow}, 2, logger.NewNop())
	updated, err := svc.RefreshPrices(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, updated)
	holdings.AssertExpectations(t)
	holdings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPortfolioService_RefreshPricesSkipsRemovedHolding(t *testing.T) {
	ctx := context.Background()
	holdings := new(mockHoldingRepository)
	quotes := new(mockQuoteRepository)
	holdings.On("List", ctx).Return([]entity.Holding{{ID: 3, Symbol: "GONE", Quantity: 2, CurrentPrice: 5}}, nil)
	quotes.On("GetQuote", ctx, "GONE").Return(&dto.Quote{Symbol: "GONE", CurrentPrice: 6}, nil)
	holdings.On("UpdateQuote", ctx, "GONE", mock.Anything, serviceNow).Return(repository.ErrHoldingNotFound).Once()

	svc := NewPortfolioService(holdings, quotes, &utils.FixedClock{T: serviceNow}, 1, logger.NewNop())
	updated, err := svc.RefreshPrices(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, updated)
	holdings.AssertExpectations(t)
	holdings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	holdings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWeightedAveragePrice(t *testing.T) {
	tests := []struct {
		name           string
		q1, p1, q2, p2 float64
		want           float64
	}{
		{name: "equal lots", q1: 10, p1: 100, q2: 10, p2: 120, want: 110},
		{name: "uneven lots", q1: 3, p1: 10, q2: 1, p2: 20, want: 12.5},
		{name: "repeating decimal", q1: 1, p1: 1, q2: 2, p2: 2, want: 1.6667},
		{name: "fractional shares", q1: 0.1, p1: 0.2, q2: 0.2, p2: 0.1, want: 0.1333},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weightedAveragePrice(tt.q1, tt.p1, tt.q2, tt.p2))
		})
	}
}
