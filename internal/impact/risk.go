package impact

import "math"

// RiskLevel is the discrete confidence/volume tier behind an impact estimate.
type RiskLevel string

const (
	RiskMinimal RiskLevel = "Minimal"
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
)

// RiskClassifier maps impact magnitude and article count to a RiskLevel.
type RiskClassifier struct {
	cfg RiskConfig
}

func NewRiskClassifier(cfg RiskConfig) RiskClassifier {
	return RiskClassifier{cfg: cfg}
}

// Classify evaluates High, Medium, Low in that order; the first match wins.
// Thresholds are inclusive and compared without rounding.
func (c RiskClassifier) Classify(impactPct float64, newsCount int) RiskLevel {
	abs := math.Abs(impactPct)
	switch {
	case newsCount >= c.cfg.HighNewsCount && abs >= c.cfg.HighImpactPct:
		return RiskHigh
	case newsCount >= c.cfg.MediumNewsCount && abs >= c.cfg.MediumImpactPct:
		return RiskMedium
	case abs >= c.cfg.LowImpactPct || (c.cfg.LowNewsCount > 0 && newsCount >= c.cfg.LowNewsCount):
		return RiskLow
	default:
		return RiskMinimal
	}
}

// Overall classifies the whole portfolio from the number of High securities out of n
// and the summed portfolio impact.
func (c RiskClassifier) Overall(highRiskCount, n int, totalImpactPct float64) RiskLevel {
	if n == 0 {
		return RiskMinimal
	}
	switch {
	case float64(highRiskCount) >= c.cfg.OverallHighShare*float64(n):
		return RiskHigh
	case float64(highRiskCount) >= c.cfg.OverallMediumShare*float64(n),
		math.Abs(totalImpactPct) >= c.cfg.OverallMediumImpactPct:
		return RiskMedium
	default:
		return RiskLow
	}
}
