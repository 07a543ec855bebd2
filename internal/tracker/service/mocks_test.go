package service

import (
	"context"
	"time"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/pkg/sentiment"

	"github.com/stretchr/testify/mock"
)

type mockHoldingRepository struct {
	mock.Mock
}

func (m *mockHoldingRepository) List(ctx context.Context) ([]entity.Holding, error) {
	args := m.Called(ctx)
	h, _ := args.Get(0).([]entity.Holding)
	return h, args.Error(1)
}

func (m *mockHoldingRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Holding, error) {
	args := m.Called(ctx, symbol)
	h, _ := args.Get(0).(*entity.Holding)
	return h, args.Error(1)
}

func (m *mockHoldingRepository) Create(ctx context.Context, holding *entity.Holding) error {
	return m.Called(ctx, holding).Error(0)
}

func (m *mockHoldingRepository) Update(ctx context.Context, holding *entity.Holding) error {
	return m.Called(ctx, holding).Error(0)
}

func (m *mockHoldingRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockHoldingRepository) UpdateQuote(ctx context.Context, symbol string, quote *dto.Quote, at time.Time) error {
	return m.Called(ctx, symbol, quote, at).Error(0)
}

func (m *mockHoldingRepository) UpdateSentiment(ctx context.Context, symbol string, value float64, at time.Time) error {
	return m.Called(ctx, symbol, value, at).Error(0)
}

type mockQuoteRepository struct {
	mock.Mock
}

func (m *mockQuoteRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	args := m.Called(ctx, symbol)
	q, _ := args.Get(0).(*dto.Quote)
	return q, args.Error(1)
}

type mockNewsRepository struct {
	mock.Mock
}

func (m *mockNewsRepository) GetArticles(ctx context.Context, symbol string, limit int) ([]dto.NewsItem, error) {
	args := m.Called(ctx, symbol, limit)
	items, _ := args.Get(0).([]dto.NewsItem)
	return items, args.Error(1)
}

type mockNewsArticleRepository struct {
	mock.Mock
}

func (m *mockNewsArticleRepository) CreateIgnoreConflict(ctx context.Context, articles []entity.NewsArticle) (int64, error) {
	args := m.Called(ctx, articles)
	return int64(args.Int(0)), args.Error(1)
}

func (m *mockNewsArticleRepository) FindRecent(ctx context.Context, symbols []string, limit int) ([]entity.NewsArticle, error) {
	args := m.Called(ctx, symbols, limit)
	a, _ := args.Get(0).([]entity.NewsArticle)
	return a, args.Error(1)
}

type mockImpactSnapshotRepository struct {
	mock.Mock
}

func (m *mockImpactSnapshotRepository) Create(ctx context.Context, snapshot *entity.ImpactSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *mockImpactSnapshotRepository) Latest(ctx context.Context) (*entity.ImpactSnapshot, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*entity.ImpactSnapshot)
	return s, args.Error(1)
}

func (m *mockImpactSnapshotRepository) List(ctx context.Context, limit int) ([]entity.ImpactSnapshot, error) {
	args := m.Called(ctx, limit)
	s, _ := args.Get(0).([]entity.ImpactSnapshot)
	return s, args.Error(1)
}

// stubScorer scores a title from a fixed table; unknown titles are neutral.
type stubScorer map[string]float64

func (s stubScorer) Analyze(ctx context.Context, text string) sentiment.Analysis {
	return sentiment.Analysis{Score: s[text], BackendOK: true}
}

func (s stubScorer) ScoreArticle(ctx context.Context, title, content string) float64 {
	return s[title]
}
