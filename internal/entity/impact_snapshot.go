package entity

import (
	"time"

	"gorm.io/datatypes"
)

// ImpactSnapshot is the persisted output of one impact calculation pass.
type ImpactSnapshot struct {
	ID                        uint           `gorm:"primaryKey" json:"id"`
	RunID                     string         `gorm:"type:uuid;uniqueIndex;not null" json:"run_id"`
	TotalValue                float64        `json:"total_value"`
	TotalSentimentImpactPct   float64        `json:"total_sentiment_impact_pct"`
	EstimatedTotalValueImpact float64        `json:"estimated_total_value_impact"`
	OverallRiskLevel          string         `gorm:"not null" json:"overall_risk_level"`
	HighRiskCount             int            `json:"high_risk_count"`
	Impacts                   datatypes.JSON `gorm:"type:jsonb" json:"impacts"`
	Summary                   datatypes.JSON `gorm:"type:jsonb" json:"summary"`
	CalculatedAt              time.Time      `gorm:"not null" json:"calculated_at"`
	CreatedAt                 time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ImpactSnapshot) TableName() string {
	return "impact_snapshots"
}
