package strategy

import (
	"context"
	"fmt"

	"golang-portfolio-sentiment/internal/tracker/service"
	"golang-portfolio-sentiment/pkg/common"
	"golang-portfolio-sentiment/pkg/logger"
)

// PriceRefreshStrategy refreshes the quote of every holding.
type PriceRefreshStrategy struct {
	portfolioSvc service.PortfolioService
	logger       *logger.Logger
}

func NewPriceRefreshStrategy(portfolioSvc service.PortfolioService, log *logger.Logger) JobStrategy {
	return &PriceRefreshStrategy{portfolioSvc: portfolioSvc, logger: log}
}

func (s *PriceRefreshStrategy) GetType() string {
	return common.JobTypePriceRefresh
}

func (s *PriceRefreshStrategy) Execute(ctx context.Context) (string, error) {
	updated, err := s.portfolioSvc.RefreshPrices(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to refresh prices: %w", err)
	}
	return fmt.Sprintf(`{"updated":%d}`, updated), nil
}
