package telegram

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"golang-portfolio-sentiment/internal/impact"
	"golang-portfolio-sentiment/internal/tracker/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{amount: 500, currency: "USD", want: "$500.00"},
		{amount: 1234.5, currency: "USD", want: "$1,234.50"},
		{amount: 0.005, currency: "USD", want: "$0.01"},
		{amount: 12.3, currency: "XXX_UNKNOWN", want: "12.30 XXX_UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.currency))
		})
	}
}

func TestFormatImpactSummaryForTelegram(t *testing.T) {
	resp := &dto.ImpactResponse{
		CalculatedAt: time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC),
		TotalValue:   1000,
		Impacts: map[string]impact.SentimentImpact{
			"ACME": {Symbol: "ACME"},
		},
		Summary: impact.PortfolioSummary{
			TotalSentimentImpactPct:   50,
			EstimatedTotalValueImpact: 500,
			PositiveCount:             1,
			OverallRiskLevel:          impact.RiskMedium,
		},
		Top: []impact.SentimentImpact{{
			Symbol:               "ACME",
			PortfolioWeightPct:   100,
			SentimentImpactPct:   50,
			PortfolioImpactPct:   50,
			EstimatedValueImpact: 500,
			NewsCount:            2,
			RiskLevel:            impact.RiskLow,
		}},
	}

	msgs := FormatImpactSummaryForTelegram(resp, "USD")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "*Overall risk:* Medium")
	assert.Contains(t, msgs[0], "+50.00%")
	assert.Contains(t, msgs[0], "$500.00 of $1,000.00")
	assert.Contains(t, msgs[0], "ACME")
	assert.Contains(t, msgs[0], "02 Mar 2026 15:00 UTC")
}

func TestFormatImpactSummaryForTelegram_SplitsLongMessages(t *testing.T) {
	resp := &dto.ImpactResponse{Impacts: map[string]impact.SentimentImpact{}}
	for i := 0; i < 80; i++ {
		symbol := fmt.Sprintf("SYM%02d", i)
		resp.Impacts[symbol] = impact.SentimentImpact{Symbol: symbol}
		resp.Top = append(resp.Top, impact.SentimentImpact{Symbol: symbol, RiskLevel: impact.RiskMinimal})
	}

	msgs := FormatImpactSummaryForTelegram(resp, "USD")
	require.Greater(t, len(msgs), 1)
	for _, m := range msgs {
		assert.LessOrEqual(t, len(m), maxMessageLen)
	}
	assert.True(t, strings.HasPrefix(msgs[1], "---*Portfolio Sentiment Impact Part 2*---"))
}

func TestFormatImpactSummaryForTelegram_Empty(t *testing.T) {
	assert.Equal(t, []string{"No holdings to report."}, FormatImpactSummaryForTelegram(nil, "USD"))
}
