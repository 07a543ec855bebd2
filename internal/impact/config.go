package impact

// RecencyConfig defines the age buckets of the recency weight. Ages are absolute hours.
type RecencyConfig struct {
	FreshHours  float64 `mapstructure:"fresh_hours"`
	RecentHours float64 `mapstructure:"recent_hours"`
	DayHours    float64 `mapstructure:"day_hours"`

	FreshWeight   float64 `mapstructure:"fresh_weight"`
	RecentWeight  float64 `mapstructure:"recent_weight"`
	DayWeight     float64 `mapstructure:"day_weight"`
	StaleWeight   float64 `mapstructure:"stale_weight"`
	UnknownWeight float64 `mapstructure:"unknown_weight"`
}

// RiskConfig holds the per-security and portfolio-wide risk thresholds.
type RiskConfig struct {
	HighNewsCount   int     `mapstructure:"high_news_count"`
	HighImpactPct   float64 `mapstructure:"high_impact_pct"`
	MediumNewsCount int     `mapstructure:"medium_news_count"`
	MediumImpactPct float64 `mapstructure:"medium_impact_pct"`
	LowImpactPct    float64 `mapstructure:"low_impact_pct"`
	LowNewsCount    int     `mapstructure:"low_news_count"`

	// Portfolio level: share of High securities and absolute total impact.
	OverallHighShare       float64 `mapstructure:"overall_high_share"`
	OverallMediumShare     float64 `mapstructure:"overall_medium_share"`
	OverallMediumImpactPct float64 `mapstructure:"overall_medium_impact_pct"`
}

// Config is the single named configuration of the impact engine. The scale factor
// and the risk thresholds move together: a ×10 scale with ×100 thresholds would leave
// every security Minimal.
type Config struct {
	ScaleFactor  float64 `mapstructure:"scale_factor"`
	MaxImpactPct float64 `mapstructure:"max_impact_pct"`
	// SignificantImpactPct splits positive/negative/neutral counts in the summary.
	SignificantImpactPct float64       `mapstructure:"significant_impact_pct"`
	DefaultTopLimit      int           `mapstructure:"default_top_limit"`
	Recency              RecencyConfig `mapstructure:"recency"`
	Risk                 RiskConfig    `mapstructure:"risk"`
}

// DefaultConfig returns the ×100 scale with a ±50% clamp and 20/10/5 thresholds.
func DefaultConfig() Config {
	return Config{
		ScaleFactor:          100,
		MaxImpactPct:         50,
		SignificantImpactPct: 1,
		DefaultTopLimit:      5,
		Recency: RecencyConfig{
			FreshHours:    1,
			RecentHours:   6,
			DayHours:      24,
			FreshWeight:   1.0,
			RecentWeight:  0.8,
			DayWeight:     0.6,
			StaleWeight:   0.3,
			UnknownWeight: 0.5,
		},
		Risk: RiskConfig{
			HighNewsCount:          5,
			HighImpactPct:          20,
			MediumNewsCount:        3,
			MediumImpactPct:        10,
			LowImpactPct:           5,
			LowNewsCount:           3,
			OverallHighShare:       0.5,
			OverallMediumShare:     0.3,
			OverallMediumImpactPct: 5,
		},
	}
}

// LegacyConfig is the earlier narrow-range variant: ×10 scale, ±20% clamp, 10/5/2 thresholds.
func LegacyConfig() Config {
	cfg := DefaultConfig()
	cfg.ScaleFactor = 10
	cfg.MaxImpactPct = 20
	cfg.Risk.HighImpactPct = 10
	cfg.Risk.MediumImpactPct = 5
	cfg.Risk.LowImpactPct = 2
	cfg.Risk.LowNewsCount = 0
	return cfg
}
