package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-portfolio-sentiment/internal/impact"
	"golang-portfolio-sentiment/internal/tracker/service"
	"golang-portfolio-sentiment/pkg/common"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/telegram"
)

// ImpactRefreshStrategy runs an impact pass and alerts when the portfolio risk is elevated.
type ImpactRefreshStrategy struct {
	impactSvc service.ImpactService
	notifier  telegram.Notifier
	logger    *logger.Logger
}

func NewImpactRefreshStrategy(impactSvc service.ImpactService, notifier telegram.Notifier, log *logger.Logger) JobStrategy {
	if notifier == nil {
		notifier = telegram.NewNopNotifier()
	}
	return &ImpactRefreshStrategy{
		impactSvc: impactSvc,
		notifier:  notifier,
		logger:    log,
	}
}

func (s *ImpactRefreshStrategy) GetType() string {
	return common.JobTypeImpactRefresh
}

type impactRefreshResult struct {
	RunID            string           `json:"run_id"`
	OverallRiskLevel impact.RiskLevel `json:"overall_risk_level"`
	Alerted          bool             `json:"alerted"`
	Errors           []string         `json:"errors,omitempty"`
}

func (s *ImpactRefreshStrategy) Execute(ctx context.Context) (string, error) {
	resp, err := s.impactSvc.Run(ctx, 0)
	if err != nil {
		return "", fmt.Errorf("failed to run impact pass: %w", err)
	}

	result := impactRefreshResult{
		RunID:            resp.RunID,
		OverallRiskLevel: resp.Summary.OverallRiskLevel,
		Errors:           resp.Errors,
	}

	switch resp.Summary.OverallRiskLevel {
	case impact.RiskHigh, impact.RiskMedium:
		currency := resp.Currency
		if currency == "" {
			currency = common.DefaultCurrency
		}
		messages := telegram.FormatImpactSummaryForTelegram(resp, currency)
		if err := telegram.SendAll(s.notifier, messages); err != nil {
			s.logger.Error("Failed to send impact alert", logger.ErrorField(err), logger.StringField("run_id", resp.RunID))
		} else {
			result.Alerted = true
		}
	}

	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(out), nil
}
