package http

import (
	"context"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/dto"

	"github.com/stretchr/testify/mock"
)

type mockPortfolioService struct {
	mock.Mock
}

func (m *mockPortfolioService) GetPortfolio(ctx context.Context) (*dto.PortfolioResponse, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(*dto.PortfolioResponse)
	return r, args.Error(1)
}

func (m *mockPortfolioService) AddHolding(ctx context.Context, req dto.AddHoldingRequest) (*entity.Holding, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*entity.Holding)
	return r, args.Error(1)
}

func (m *mockPortfolioService) RemoveHolding(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPortfolioService) RefreshPrices(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockImpactService struct {
	mock.Mock
}

func (m *mockImpactService) Run(ctx context.Context, limit int) (*dto.ImpactResponse, error) {
	args := m.Called(ctx, limit)
	r, _ := args.Get(0).(*dto.ImpactResponse)
	return r, args.Error(1)
}

func (m *mockImpactService) Latest(ctx context.Context, limit int) (*dto.ImpactResponse, error) {
	args := m.Called(ctx, limit)
	r, _ := args.Get(0).(*dto.ImpactResponse)
	return r, args.Error(1)
}

func (m *mockImpactService) StockDetail(ctx context.Context, symbol string) (*dto.StockDetailResponse, error) {
	args := m.Called(ctx, symbol)
	r, _ := args.Get(0).(*dto.StockDetailResponse)
	return r, args.Error(1)
}

func (m *mockImpactService) SymbolNews(ctx context.Context, symbol string, limit int) ([]dto.ScoredNewsItem, error) {
	args := m.Called(ctx, symbol, limit)
	r, _ := args.Get(0).([]dto.ScoredNewsItem)
	return r, args.Error(1)
}

func (m *mockImpactService) ScoreText(ctx context.Context, req dto.SentimentRequest) dto.SentimentResponse {
	return m.Called(ctx, req).Get(0).(dto.SentimentResponse)
}

type mockJobRunner struct {
	mock.Mock
}

func (m *mockJobRunner) RunJob(ctx context.Context, jobType string) (string, error) {
	args := m.Called(ctx, jobType)
	return args.String(0), args.Error(1)
}

func (m *mockJobRunner) Executions(ctx context.Context, jobType string, limit int) ([]entity.JobExecution, error) {
	args := m.Called(ctx, jobType, limit)
	r, _ := args.Get(0).([]entity.JobExecution)
	return r, args.Error(1)
}
