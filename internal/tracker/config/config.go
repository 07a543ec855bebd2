package config

import (
	"time"

	"golang-portfolio-sentiment/internal/impact"
	"golang-portfolio-sentiment/pkg/config"
	"golang-portfolio-sentiment/pkg/sentiment"
)

// YahooFinance holds the configuration for the Yahoo Finance chart API.
type YahooFinance struct {
	BaseURL             string        `mapstructure:"base_url"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	Timeout             time.Duration `mapstructure:"timeout"`
	CacheTTL            time.Duration `mapstructure:"cache_ttl"`
}

// News holds the configuration for the Google News RSS collaborator.
type News struct {
	BaseURL             string        `mapstructure:"base_url"`
	Query               string        `mapstructure:"query"`
	MaxArticles         int           `mapstructure:"max_articles"`
	MinTitleLength      int           `mapstructure:"min_title_length"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	Timeout             time.Duration `mapstructure:"timeout"`
	FetchContent        bool          `mapstructure:"fetch_content"`
	MaxContentLength    int           `mapstructure:"max_content_length"`
}

// Sentiment selects the polarity backend and carries the scorer blend.
type Sentiment struct {
	Backend          string           `mapstructure:"backend"`
	PositiveKeywords []string         `mapstructure:"positive_keywords"`
	NegativeKeywords []string         `mapstructure:"negative_keywords"`
	Scorer           sentiment.Config `mapstructure:"scorer"`
}

// Gemini holds the configuration for the Gemini polarity backend.
type Gemini struct {
	APIKey              string        `mapstructure:"api_key"`
	Model               string        `mapstructure:"model"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	CacheTTL            time.Duration `mapstructure:"cache_ttl"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Tracker holds the impact pass settings.
type Tracker struct {
	MaxConcurrentFetch int           `mapstructure:"max_concurrent_fetch"`
	RunTimeout         time.Duration `mapstructure:"run_timeout"`
	RecentNewsLimit    int           `mapstructure:"recent_news_limit"`
	DetailNewsLimit    int           `mapstructure:"detail_news_limit"`
	// Currency is used for display when the holdings do not share a single quote currency.
	Currency string `mapstructure:"currency"`
}

// Scheduler holds the cron expressions of the background jobs. An empty expression
// disables the job.
type Scheduler struct {
	ImpactRefreshCron string `mapstructure:"impact_refresh_cron"`
	PriceRefreshCron  string `mapstructure:"price_refresh_cron"`
}

// Config holds the full configuration for the tracker service.
type Config struct {
	App          config.App      `mapstructure:"app"`
	Logger       config.Logger   `mapstructure:"logger"`
	Database     config.Database `mapstructure:"database"`
	Redis        config.Redis    `mapstructure:"redis"`
	API          config.API      `mapstructure:"api"`
	YahooFinance YahooFinance    `mapstructure:"yahoo_finance"`
	News         News            `mapstructure:"news"`
	Sentiment    Sentiment       `mapstructure:"sentiment"`
	Gemini       Gemini          `mapstructure:"gemini"`
	Telegram     Telegram        `mapstructure:"telegram"`
	Tracker      Tracker         `mapstructure:"tracker"`
	Scheduler    Scheduler       `mapstructure:"scheduler"`
	Impact       impact.Config   `mapstructure:"impact"`
}

// Defaults returns the values used when neither the file nor the environment sets a key.
func Defaults() map[string]interface{} {
	ic := impact.DefaultConfig()
	sc := sentiment.DefaultConfig()
	kw := sentiment.DefaultKeywords()

	return map[string]interface{}{
		"app.name":                              "portfolio-sentiment-tracker",
		"logger.level":                          "info",
		"logger.encoding":                       "json",
		"api.host":                              "",
		"api.port":                              8080,
		"database.host":                         "localhost",
		"database.port":                         5432,
		"database.user":                         "postgres",
		"database.password":                     "",
		"database.name":                         "portfolio_sentiment",
		"database.ssl_mode":                     "disable",
		"database.time_zone":                    "UTC",
		"database.max_idle_conns":               5,
		"database.max_open_conns":               20,
		"database.conn_max_lifetime":            "1h",
		"database.log_level":                    "warn",
		"redis.host":                            "localhost",
		"redis.port":                            6379,
		"redis.password":                        "",
		"redis.db":                              0,
		"redis.pool_size":                       10,
		"yahoo_finance.base_url":                "https://query1.finance.yahoo.com",
		"yahoo_finance.max_request_per_minute":  60,
		"yahoo_finance.timeout":                 "10s",
		"yahoo_finance.cache_ttl":               "5m",
		"news.base_url":                         "https://news.google.com/rss/search",
		"news.query":                            "%s stock",
		"news.max_articles":                     10,
		"news.min_title_length":                 10,
		"news.max_request_per_minute":           30,
		"news.timeout":                          "10s",
		"news.fetch_content":                    false,
		"news.max_content_length":               4000,
		"sentiment.backend":                     "lexicon",
		"sentiment.positive_keywords":           kw.Positive(),
		"sentiment.negative_keywords":           kw.Negative(),
		"sentiment.scorer.base_weight":          sc.BaseWeight,
		"sentiment.scorer.keyword_weight":       sc.KeywordWeight,
		"sentiment.scorer.title_weight":         sc.TitleWeight,
		"sentiment.scorer.content_weight":       sc.ContentWeight,
		"gemini.api_key":                        "",
		"gemini.model":                          "gemini-2.0-flash",
		"gemini.max_request_per_minute":         15,
		"gemini.cache_ttl":                      "1h",
		"telegram.enabled":                      false,
		"telegram.bot_token":                    "",
		"telegram.chat_id":                      0,
		"scheduler.impact_refresh_cron":         "*/30 * * * *",
		"scheduler.price_refresh_cron":          "*/5 * * * *",
		"tracker.max_concurrent_fetch":          5,
		"tracker.run_timeout":                   "2m",
		"tracker.recent_news_limit":             15,
		"tracker.detail_news_limit":             20,
		"tracker.currency":                      "USD",
		"impact.scale_factor":                   ic.ScaleFactor,
		"impact.max_impact_pct":                 ic.MaxImpactPct,
		"impact.significant_impact_pct":         ic.SignificantImpactPct,
		"impact.default_top_limit":              ic.DefaultTopLimit,
		"impact.recency.fresh_hours":            ic.Recency.FreshHours,
		"impact.recency.recent_hours":           ic.Recency.RecentHours,
		"impact.recency.day_hours":              ic.Recency.DayHours,
		"impact.recency.fresh_weight":           ic.Recency.FreshWeight,
		"impact.recency.recent_weight":          ic.Recency.RecentWeight,
		"impact.recency.day_weight":             ic.Recency.DayWeight,
		"impact.recency.stale_weight":           ic.Recency.StaleWeight,
		"impact.recency.unknown_weight":         ic.Recency.UnknownWeight,
		"impact.risk.high_news_count":           ic.Risk.HighNewsCount,
		"impact.risk.high_impact_pct":           ic.Risk.HighImpactPct,
		"impact.risk.medium_news_count":         ic.Risk.MediumNewsCount,
		"impact.risk.medium_impact_pct":         ic.Risk.MediumImpactPct,
		"impact.risk.low_impact_pct":            ic.Risk.LowImpactPct,
		"impact.risk.low_news_count":            ic.Risk.LowNewsCount,
		"impact.risk.overall_high_share":        ic.Risk.OverallHighShare,
		"impact.risk.overall_medium_share":      ic.Risk.OverallMediumShare,
		"impact.risk.overall_medium_impact_pct": ic.Risk.OverallMediumImpactPct,
	}
}

// Load loads the tracker configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, Defaults()); err != nil {
		return nil, err
	}
	return &cfg, nil
}
