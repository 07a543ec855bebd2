package dto

import "time"

// NewsItem is an article as returned by the news collaborator, before scoring.
type NewsItem struct {
	Symbol       string     `json:"symbol"`
	Title        string     `json:"title"`
	Link         string     `json:"link"`
	Source       string     `json:"source"`
	Content      string     `json:"content,omitempty"`
	PublishedRaw string     `json:"published_raw"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// ScoredNewsItem is a NewsItem with its sentiment.
type ScoredNewsItem struct {
	NewsItem
	SentimentScore  float64  `json:"sentiment_score"`
	SentimentLabel  string   `json:"sentiment_label"`
	SentimentColor  string   `json:"sentiment_color"`
	MatchedKeywords []string `json:"matched_keywords"`
}
