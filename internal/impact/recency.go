package impact

import (
	"math"
	"strings"
	"time"
)

// RecencyWeighter assigns a decay weight to an article from its age.
type RecencyWeighter struct {
	cfg RecencyConfig
}

func NewRecencyWeighter(cfg RecencyConfig) RecencyWeighter {
	return RecencyWeighter{cfg: cfg}
}

// Weight returns the bucket weight for an article published at publishedAt.
// A nil timestamp gets the neutral weight. The age is absolute, so an article dated
// in the future by clock skew counts as fresh.
func (w RecencyWeighter) Weight(publishedAt *time.Time, now time.Time) float64 {
	if publishedAt == nil || publishedAt.IsZero() {
		return w.cfg.UnknownWeight
	}

	hoursOld := math.Abs(now.Sub(*publishedAt).Hours())
	switch {
	case hoursOld <= w.cfg.FreshHours:
		return w.cfg.FreshWeight
	case hoursOld <= w.cfg.RecentHours:
		return w.cfg.RecentWeight
	case hoursOld <= w.cfg.DayHours:
		return w.cfg.DayWeight
	default:
		return w.cfg.StaleWeight
	}
}

var publishedLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC3339Nano,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParsePublishedAt parses the timestamp formats seen in feeds. ok is false for
// empty or unrecognised input; callers treat that as an absent timestamp.
func ParsePublishedAt(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
