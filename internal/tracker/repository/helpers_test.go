package repository

import (
	"context"
	"errors"

	"golang-portfolio-sentiment/internal/tracker/dto"

	"github.com/stretchr/testify/mock"
)

func errorsIs(err, target error) bool {
	return errors.Is(err, target)
}

type mockQuoteRepository struct {
	mock.Mock
}

func (m *mockQuoteRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	args := m.Called(ctx, symbol)
	q, _ := args.Get(0).(*dto.Quote)
	return q, args.Error(1)
}

type mockLastPriceRepository struct {
	mock.Mock
}

func (m *mockLastPriceRepository) Save(ctx context.Context, quote dto.Quote) error {
	return m.Called(ctx, quote).Error(0)
}

func (m *mockLastPriceRepository) Get(ctx context.Context, symbol string) (*dto.Quote, error) {
	args := m.Called(ctx, symbol)
	q, _ := args.Get(0).(*dto.Quote)
	return q, args.Error(1)
}
