package dto

import "golang-portfolio-sentiment/internal/entity"

// AddHoldingRequest adds a new position or merges into an existing one.
type AddHoldingRequest struct {
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
}

type HoldingResponse struct {
	entity.Holding
	CurrentValue     float64 `json:"current_value"`
	CostBasis        float64 `json:"cost_basis"`
	GainLoss         float64 `json:"gain_loss"`
	GainLossPct      float64 `json:"gain_loss_pct"`
	DailyGainLoss    float64 `json:"daily_gain_loss"`
	DailyGainLossPct float64 `json:"daily_gain_loss_pct"`
	SentimentLabel   string  `json:"sentiment_label"`
	SentimentColor   string  `json:"sentiment_color"`
}

// PortfolioResponse lists every holding with portfolio totals.
type PortfolioResponse struct {
	Holdings         []HoldingResponse `json:"holdings"`
	TotalValue       float64           `json:"total_value"`
	TotalCost        float64           `json:"total_cost"`
	TotalGainLoss    float64           `json:"total_gain_loss"`
	TotalGainLossPct float64           `json:"total_gain_loss_pct"`
	DailyGainLoss    float64           `json:"daily_gain_loss"`
}
