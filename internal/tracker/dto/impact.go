package dto

import (
	"time"

	"golang-portfolio-sentiment/internal/impact"
)

// ImpactResponse is the result of one impact pass.
type ImpactResponse struct {
	RunID        string                            `json:"run_id"`
	CalculatedAt time.Time                         `json:"calculated_at"`
	TotalValue   float64                           `json:"total_value"`
	Currency     string                            `json:"currency"`
	Impacts      map[string]impact.SentimentImpact `json:"impacts"`
	Summary      impact.PortfolioSummary           `json:"summary"`
	Top          []impact.SentimentImpact          `json:"top"`
	RecentNews   []ScoredNewsItem                  `json:"recent_news"`
	Errors       []string                          `json:"errors,omitempty"`
}

// StockDetailResponse is a quote with the latest scored articles for one symbol.
type StockDetailResponse struct {
	Quote *Quote           `json:"quote"`
	News  []ScoredNewsItem `json:"news"`
}

type SentimentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SentimentResponse struct {
	Score           float64  `json:"score"`
	Label           string   `json:"label"`
	Color           string   `json:"color"`
	MatchedKeywords []string `json:"matched_keywords"`
	BackendOK       bool     `json:"backend_ok"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
