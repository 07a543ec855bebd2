package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/internal/tracker/repository"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/sentiment"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/shopspring/decimal"
)

var ErrInvalidHolding = errors.New("invalid holding")

// PortfolioService manages holdings and their market data.
type PortfolioService interface {
	GetPortfolio(ctx context.Context) (*dto.PortfolioResponse, error)
	AddHolding(ctx context.Context, req dto.AddHoldingRequest) (*entity.Holding, error)
	RemoveHolding(ctx context.Context, id uint) error
	RefreshPrices(ctx context.Context) (int, error)
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(holdingRepo repository.HoldingRepository, quoteRepo repository.QuoteRepository, clock utils.Clock, maxConcurrent int, log *logger.Logger) PortfolioService {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &portfolioService{
		holdingRepo:   holdingRepo,
		quoteRepo:     quoteRepo,
		clock:         clock,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}
}

type portfolioService struct {
	holdingRepo   repository.HoldingRepository
	quoteRepo     repository.QuoteRepository
	clock         utils.Clock
	maxConcurrent int
	logger        *logger.Logger
}

func (s *portfolioService) GetPortfolio(ctx context.Context) (*dto.PortfolioResponse, error) {
	holdings, err := s.holdingRepo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list holdings", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	resp := &dto.PortfolioResponse{Holdings: make([]dto.HoldingResponse, 0, len(holdings))}
	for _, h := range holdings {
		resp.Holdings = append(resp.Holdings, dto.HoldingResponse{
			Holding:          h,
			CurrentValue:     h.CurrentValue(),
			CostBasis:        h.CostBasis(),
			GainLoss:         h.GainLoss(),
			GainLossPct:      h.GainLossPct(),
			DailyGainLoss:    h.DailyGainLoss(),
			DailyGainLossPct: h.DailyGainLossPct(),
			SentimentLabel:   sentiment.Label(h.NewsSentiment),
			SentimentColor:   sentiment.Color(h.NewsSentiment),
		})
		resp.TotalValue += h.CurrentValue()
		resp.TotalCost += h.CostBasis()
		resp.DailyGainLoss += h.DailyGainLoss()
	}
	resp.TotalGainLoss = resp.TotalValue - resp.TotalCost
	if resp.TotalCost > 0 {
		resp.TotalGainLossPct = resp.TotalGainLoss / resp.TotalCost * 100
	}

	return resp, nil
}

// AddHolding validates the symbol against the quote provider, then creates the holding or
// merges it into the existing position at the weighted average purchase price.
func (s *portfolioService) AddHolding(ctx context.Context, req dto.AddHoldingRequest) (*entity.Holding, error) {
	symbol := utils.NormalizeSymbol(req.Symbol)
	if symbol == "" || !(req.Quantity > 0) || !(req.PurchasePrice > 0) ||
		math.IsInf(req.Quantity, 0) || math.IsInf(req.PurchasePrice, 0) {
		return nil, fmt.Errorf("%w: symbol, quantity and purchase_price are required and must be positive", ErrInvalidHolding)
	}

	quote, err := s.quoteRepo.GetQuote(ctx, symbol)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to validate symbol", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}

	existing, err := s.holdingRepo.FindBySymbol(ctx, symbol)
	if err != nil && !errors.Is(err, repository.ErrHoldingNotFound) {
		return nil, fmt.Errorf("failed to find holding: %w", err)
	}

	if existing == nil {
		holding := &entity.Holding{
			Symbol:        symbol,
			Quantity:      req.Quantity,
			PurchasePrice: req.PurchasePrice,
		}
		s.applyQuote(holding, quote)
		if err := s.holdingRepo.Create(ctx, holding); err != nil {
			return nil, fmt.Errorf("failed to create holding: %w", err)
		}
		s.logger.InfoContext(ctx, "Holding added", logger.StringField("symbol", symbol))
		return holding, nil
	}

	existing.PurchasePrice = weightedAveragePrice(existing.Quantity, existing.PurchasePrice, req.Quantity, req.PurchasePrice)
	existing.Quantity = decimal.NewFromFloat(existing.Quantity).Add(decimal.NewFromFloat(req.Quantity)).InexactFloat64()
	s.applyQuote(existing, quote)
	if err := s.holdingRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}
	s.logger.InfoContext(ctx, "Holding merged", logger.StringField("symbol", symbol), logger.Float64Field("quantity", existing.Quantity))
	return existing, nil
}

func (s *portfolioService) RemoveHolding(ctx context.Context, id uint) error {
	if err := s.holdingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHoldingNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return nil
}

// RefreshPrices fetches a quote for every holding and stores it. Holdings whose quote
// fails keep their previous price. It returns the number of holdings updated.
func (s *portfolioService) RefreshPrices(ctx context.Context) (int, error) {
	holdings, err := s.holdingRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list holdings: %w", err)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		updated   int
		semaphore = make(chan struct{}, s.maxConcurrent)
	)

	for i := range holdings {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		holding := &holdings[i]
		wg.Add(1)
		utils.GoSafe(s.logger, func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			quote, err := s.quoteRepo.GetQuote(ctx, holding.Symbol)
			if err != nil {
				s.logger.Warn("Failed to refresh price", logger.ErrorField(err), logger.StringField("symbol", holding.Symbol))
				return
			}
			if err := s.holdingRepo.UpdateQuote(ctx, holding.Symbol, quote, s.clock.Now()); err != nil {
				if errors.Is(err, repository.ErrHoldingNotFound) {
					s.logger.Info("Holding removed during price refresh", logger.StringField("symbol", holding.Symbol))
					return
				}
				s.logger.Error("Failed to store refreshed price", logger.ErrorField(err), logger.StringField("symbol", holding.Symbol))
				return
			}
			mu.Lock()
			updated++
			mu.Unlock()
		})
	}
	wg.Wait()

	return updated, nil
}

func (s *portfolioService) applyQuote(h *entity.Holding, q *dto.Quote) {
	applyQuote(h, q, s.clock)
}

func applyQuote(h *entity.Holding, q *dto.Quote, clock utils.Clock) {
	if q == nil {
		return
	}
	if q.CompanyName != "" {
		h.CompanyName = q.CompanyName
	}
	h.CurrentPrice = q.CurrentPrice
	h.PreviousClose = q.PreviousClose
	h.Currency = q.Currency
	h.MarketCap = q.MarketCap
	h.DayHigh = q.DayHigh
	h.DayLow = q.DayLow
	h.FiftyTwoWeekHigh = q.FiftyTwoWeekHigh
	h.FiftyTwoWeekLow = q.FiftyTwoWeekLow
	h.Volume = q.Volume
	h.PriceUpdatedAt = utils.ToPointer(clock.Now())
}

// weightedAveragePrice is (q1*p1 + q2*p2) / (q1+q2), rounded to 4 decimals.
func weightedAveragePrice(q1, p1, q2, p2 float64) float64 {
	dq1, dq2 := decimal.NewFromFloat(q1), decimal.NewFromFloat(q2)
	total := dq1.Add(dq2)
	if total.IsZero() {
		return p2
	}
	cost := dq1.Mul(decimal.NewFromFloat(p1)).Add(dq2.Mul(decimal.NewFromFloat(p2)))
	return cost.DivRound(total, 4).InexactFloat64()
}
