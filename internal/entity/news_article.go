package entity

import (
	"time"

	"github.com/lib/pq"
)

// NewsArticle is a scored news item archived after an impact pass.
type NewsArticle struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Symbol          string         `gorm:"index;not null" json:"symbol"`
	Title           string         `gorm:"not null" json:"title"`
	Link            string         `gorm:"not null" json:"link"`
	Source          string         `json:"source"`
	Content         string         `json:"content,omitempty"`
	PublishedAt     *time.Time     `json:"published_at,omitempty"`
	PublishedRaw    string         `json:"published_raw"`
	SentimentScore  float64        `json:"sentiment_score"`
	SentimentLabel  string         `json:"sentiment_label"`
	SentimentColor  string         `json:"sentiment_color"`
	MatchedKeywords pq.StringArray `gorm:"type:text[]" json:"matched_keywords"`
	HashIdentifier  string         `gorm:"unique;not null" json:"hash_identifier"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}
