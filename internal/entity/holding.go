package entity

import "time"

// Holding is a position in the tracked portfolio together with its latest quote.
type Holding struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Symbol           string     `gorm:"uniqueIndex;not null" json:"symbol"`
	CompanyName      string     `json:"company_name"`
	Quantity         float64    `gorm:"not null" json:"quantity"`
	PurchasePrice    float64    `gorm:"not null" json:"purchase_price"`
	CurrentPrice     float64    `json:"current_price"`
	PreviousClose    float64    `json:"previous_close"`
	Currency         string     `json:"currency"`
	MarketCap        float64    `json:"market_cap"`
	DayHigh          float64    `json:"day_high"`
	DayLow           float64    `json:"day_low"`
	FiftyTwoWeekHigh float64    `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64    `json:"fifty_two_week_low"`
	Volume           int64      `json:"volume"`
	PriceUpdatedAt   *time.Time `json:"price_updated_at,omitempty"`

	// Rolling mean sentiment of the articles seen on the last impact pass.
	NewsSentiment      float64    `json:"news_sentiment"`
	SentimentUpdatedAt *time.Time `json:"sentiment_updated_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Holding) TableName() string {
	return "holdings"
}

func (h Holding) CurrentValue() float64 {
	return h.Quantity * h.CurrentPrice
}

func (h Holding) CostBasis() float64 {
	return h.Quantity * h.PurchasePrice
}

func (h Holding) GainLoss() float64 {
	return h.CurrentValue() - h.CostBasis()
}

func (h Holding) GainLossPct() float64 {
	cost := h.CostBasis()
	if cost == 0 {
		return 0
	}
	return h.GainLoss() / cost * 100
}

func (h Holding) DailyGainLoss() float64 {
	if h.PreviousClose == 0 {
		return 0
	}
	return h.Quantity * (h.CurrentPrice - h.PreviousClose)
}

func (h Holding) DailyGainLossPct() float64 {
	if h.PreviousClose == 0 {
		return 0
	}
	return (h.CurrentPrice - h.PreviousClose) / h.PreviousClose * 100
}
