package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Impact.ScaleFactor)
	assert.Equal(t, 50.0, cfg.Impact.MaxImpactPct)
	assert.Equal(t, 5, cfg.Impact.Risk.HighNewsCount)
	assert.Equal(t, 0.5, cfg.Impact.Recency.UnknownWeight)
	assert.Equal(t, 0.7, cfg.Sentiment.Scorer.BaseWeight)
	assert.Equal(t, "lexicon", cfg.Sentiment.Backend)
	assert.Contains(t, cfg.Sentiment.PositiveKeywords, "bullish")
	assert.Equal(t, 5*time.Minute, cfg.YahooFinance.CacheTTL)
	assert.Equal(t, 15, cfg.Tracker.RecentNewsLimit)
	assert.Equal(t, "USD", cfg.Tracker.Currency)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  name: tracker-test
impact:
  scale_factor: 10
  max_impact_pct: 20
  risk:
    high_impact_pct: 10
sentiment:
  backend: gemini
tracker:
  max_concurrent_fetch: 2
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tracker-test", cfg.App.Name)
	assert.Equal(t, 10.0, cfg.Impact.ScaleFactor)
	assert.Equal(t, 20.0, cfg.Impact.MaxImpactPct)
	assert.Equal(t, 10.0, cfg.Impact.Risk.HighImpactPct)
	assert.Equal(t, 10.0, cfg.Impact.Risk.MediumImpactPct)
	assert.Equal(t, "gemini", cfg.Sentiment.Backend)
	assert.Equal(t, 2, cfg.Tracker.MaxConcurrentFetch)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("TRACKER_MAX_CONCURRENT_FETCH", "9")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Tracker.MaxConcurrentFetch)
}

func TestLoad_EnvOnlyDatabase(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "*/5 * * * *", cfg.Scheduler.PriceRefreshCron)
}
