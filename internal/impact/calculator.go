package impact

import (
	"math"
	"sort"
	"time"
)

// Holding is a position valued at its current price.
type Holding struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	CurrentPrice float64 `json:"current_price"`
}

func (h Holding) Value() float64 {
	return h.Quantity * h.CurrentPrice
}

// Article is a scored news item. PublishedAt is nil when the feed had no usable timestamp.
type Article struct {
	Symbol      string     `json:"symbol"`
	Title       string     `json:"title"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Sentiment   float64    `json:"sentiment"`
}

// SentimentImpact is the estimated effect of recent news on one security.
type SentimentImpact struct {
	Symbol               string    `json:"symbol"`
	CurrentValue         float64   `json:"current_value"`
	PortfolioWeightPct   float64   `json:"portfolio_weight_pct"`
	SentimentImpactPct   float64   `json:"sentiment_impact_pct"`
	PortfolioImpactPct   float64   `json:"portfolio_impact_pct"`
	EstimatedPriceImpact float64   `json:"estimated_price_impact"`
	EstimatedValueImpact float64   `json:"estimated_value_impact"`
	NewsCount            int       `json:"news_count"`
	RiskLevel            RiskLevel `json:"risk_level"`
}

type PortfolioSummary struct {
	TotalSentimentImpactPct   float64   `json:"total_sentiment_impact_pct"`
	EstimatedTotalValueImpact float64   `json:"estimated_total_value_impact"`
	PositiveCount             int       `json:"positive_count"`
	NegativeCount             int       `json:"negative_count"`
	NeutralCount              int       `json:"neutral_count"`
	HighRiskCount             int       `json:"high_risk_count"`
	OverallRiskLevel          RiskLevel `json:"overall_risk_level"`
}

// Result is the output of one calculation pass. Order lists symbols in the order
// they first appeared in the holdings.
type Result struct {
	Impacts map[string]SentimentImpact `json:"impacts"`
	Order   []string                   `json:"order"`
	Summary PortfolioSummary           `json:"summary"`

	defaultLimit int
}

// Top ranks impacts by |PortfolioImpactPct| descending; ties keep input order.
// limit <= 0 uses the calculator's default.
func (r Result) Top(limit int) []SentimentImpact {
	if limit <= 0 {
		limit = r.defaultLimit
	}
	if limit <= 0 {
		limit = DefaultConfig().DefaultTopLimit
	}

	ranked := make([]SentimentImpact, 0, len(r.Order))
	for _, symbol := range r.Order {
		ranked = append(ranked, r.Impacts[symbol])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].PortfolioImpactPct) > math.Abs(ranked[j].PortfolioImpactPct)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Calculator combines per-security sentiment with portfolio weights. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	cfg        Config
	weighter   RecencyWeighter
	aggregator Aggregator
	classifier RiskClassifier
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{
		cfg:        cfg,
		weighter:   NewRecencyWeighter(cfg.Recency),
		aggregator: NewAggregator(cfg.ScaleFactor, cfg.MaxImpactPct),
		classifier: NewRiskClassifier(cfg.Risk),
	}
}

// SymbolImpact weights each article by recency and aggregates them into an impact percentage.
func (c *Calculator) SymbolImpact(articles []Article, now time.Time) float64 {
	items := make([]WeightedSentiment, 0, len(articles))
	for _, a := range articles {
		items = append(items, WeightedSentiment{
			Sentiment: a.Sentiment,
			Weight:    c.weighter.Weight(a.PublishedAt, now),
		})
	}
	return c.aggregator.Aggregate(items)
}

// Calculate estimates the sentiment impact of every holding. Holdings sharing a symbol
// are merged by summing quantities at the first seen price. Holdings with a non-positive
// quantity or an invalid price are skipped. A zero total value yields an empty result
// with a Minimal overall risk.
func (c *Calculator) Calculate(holdings []Holding, articlesBySymbol map[string][]Article, now time.Time) Result {
	merged, order := mergeHoldings(holdings)

	var totalValue float64
	for _, symbol := range order {
		totalValue += merged[symbol].Value()
	}

	result := Result{
		Impacts:      make(map[string]SentimentImpact, len(order)),
		Order:        []string{},
		Summary:      PortfolioSummary{OverallRiskLevel: RiskMinimal},
		defaultLimit: c.cfg.DefaultTopLimit,
	}
	if totalValue <= 0 || !isFinite(totalValue) {
		return result
	}

	summary := PortfolioSummary{}
	for _, symbol := range order {
		h := merged[symbol]
		articles := articlesBySymbol[symbol]

		value := h.Value()
		weightPct := value / totalValue * 100
		impactPct := c.SymbolImpact(articles, now)
		priceImpact := h.CurrentPrice * (impactPct / 100)

		si := SentimentImpact{
			Symbol:               symbol,
			CurrentValue:         value,
			PortfolioWeightPct:   weightPct,
			SentimentImpactPct:   impactPct,
			PortfolioImpactPct:   weightPct * impactPct / 100,
			EstimatedPriceImpact: priceImpact,
			EstimatedValueImpact: h.Quantity * priceImpact,
			NewsCount:            len(articles),
			RiskLevel:            c.classifier.Classify(impactPct, len(articles)),
		}

		summary.TotalSentimentImpactPct += si.PortfolioImpactPct
		summary.EstimatedTotalValueImpact += si.EstimatedValueImpact
		switch {
		case impactPct > c.cfg.SignificantImpactPct:
			summary.PositiveCount++
		case impactPct < -c.cfg.SignificantImpactPct:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}
		if si.RiskLevel == RiskHigh {
			summary.HighRiskCount++
		}

		result.Impacts[symbol] = si
		result.Order = append(result.Order, symbol)
	}

	summary.OverallRiskLevel = c.classifier.Overall(summary.HighRiskCount, len(result.Order), summary.TotalSentimentImpactPct)
	result.Summary = summary
	return result
}

func mergeHoldings(holdings []Holding) (map[string]Holding, []string) {
	merged := make(map[string]Holding, len(holdings))
	order := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if h.Symbol == "" || !(h.Quantity > 0) || !isFinite(h.Quantity) ||
			!(h.CurrentPrice >= 0) || !isFinite(h.CurrentPrice) {
			continue
		}
		existing, ok := merged[h.Symbol]
		if !ok {
			merged[h.Symbol] = h
			order = append(order, h.Symbol)
			continue
		}
		existing.Quantity += h.Quantity
		merged[h.Symbol] = existing
	}
	return merged, order
}
