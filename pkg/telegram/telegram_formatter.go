package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-portfolio-sentiment/internal/impact"
	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const maxMessageLen = 4090

// FormatMoney renders amount in currency, e.g. "$1,234.50". Unknown currencies fall back to
// two decimals with the code appended.
func FormatMoney(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := decimal.NewFromFloat(amount).Mul(factor).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

func riskIcon(level impact.RiskLevel) string {
	switch level {
	case impact.RiskHigh:
		return "🔴"
	case impact.RiskMedium:
		return "🟠"
	case impact.RiskLow:
		return "🟡"
	default:
		return "🟢"
	}
}

func signedPct(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FormatImpactSummaryForTelegram renders an impact pass as one or more Markdown messages,
// each within Telegram's size limit.
func FormatImpactSummaryForTelegram(resp *dto.ImpactResponse, currency string) []string {
	if resp == nil || len(resp.Impacts) == 0 {
		return []string{"No holdings to report."}
	}

	var header strings.Builder
	s := resp.Summary
	header.WriteString("📰 *Portfolio Sentiment Impact* 📰\n")
	header.WriteString(fmt.Sprintf("%s\n\n", utils.PrettyDate(resp.CalculatedAt)))
	header.WriteString(fmt.Sprintf("%s *Overall risk:* %s\n", riskIcon(s.OverallRiskLevel), s.OverallRiskLevel))
	header.WriteString(fmt.Sprintf("📊 *Sentiment impact:* %s\n", signedPct(s.TotalSentimentImpactPct)))
	header.WriteString(fmt.Sprintf("💰 *Estimated value impact:* %s of %s\n", FormatMoney(s.EstimatedTotalValueImpact, currency), FormatMoney(resp.TotalValue, currency)))
	header.WriteString(fmt.Sprintf("😊 %d  😟 %d  😐 %d  ⚠️ High risk: %d\n\n", s.PositiveCount, s.NegativeCount, s.NeutralCount, s.HighRiskCount))

	var messages []string
	var current strings.Builder
	part := 1
	current.WriteString(header.String())

	for _, si := range resp.Top {
		var entry strings.Builder
		entry.WriteString(fmt.Sprintf("📈 *- - - - - %s - - - - -*\n", si.Symbol))
		entry.WriteString(fmt.Sprintf("%s Risk: %s | News: %d\n", riskIcon(si.RiskLevel), si.RiskLevel, si.NewsCount))
		entry.WriteString(fmt.Sprintf("Weight: %.2f%% | Sentiment: %s\n", si.PortfolioWeightPct, signedPct(si.SentimentImpactPct)))
		entry.WriteString(fmt.Sprintf("Portfolio impact: %s | Value: %s\n\n", signedPct(si.PortfolioImpactPct), FormatMoney(si.EstimatedValueImpact, currency)))

		if current.Len()+entry.Len() > maxMessageLen {
			messages = append(messages, current.String())
			part++
			current.Reset()
			current.WriteString(fmt.Sprintf("---*Portfolio Sentiment Impact Part %d*---\n\n", part))
		}
		current.WriteString(entry.String())
	}

	messages = append(messages, current.String())
	return messages
}

// FormatErrorAlertMessage formats a failed background job.
func FormatErrorAlertMessage(at time.Time, errType string, errMsg string) string {
	return fmt.Sprintf("📛 [ERROR ALERT]\n%s\n🔧 %s\n⚠️ %s\n", utils.PrettyDate(at), errType, errMsg)
}
