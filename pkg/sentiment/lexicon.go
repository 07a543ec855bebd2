package sentiment

import (
	"context"
	"strings"
)

// LexiconBackend is a dictionary polarity backend: every known word carries a
// polarity, a preceding intensifier scales it and a negator within the two previous
// words flips and halves it. The result is the mean over the known words.
type LexiconBackend struct {
	words        map[string]float64
	intensifiers map[string]float64
	negators     map[string]bool
}

func NewLexiconBackend() *LexiconBackend {
	return &LexiconBackend{
		words:        defaultLexicon(),
		intensifiers: defaultIntensifiers(),
		negators:     defaultNegators(),
	}
}

// Polarity never fails; text without known words is neutral.
func (b *LexiconBackend) Polarity(_ context.Context, text string) (float64, error) {
	tokens := strings.Fields(strings.ToLower(text))

	var sum float64
	var known int
	for i, raw := range tokens {
		word := strings.Trim(raw, ".,!?;:")
		polarity, ok := b.words[word]
		if !ok {
			continue
		}
		if i > 0 {
			if factor, ok := b.intensifiers[strings.Trim(tokens[i-1], ".,!?;:")]; ok {
				polarity *= factor
			}
		}
		if b.negated(tokens, i) {
			polarity *= -0.5
		}
		sum += polarity
		known++
	}

	if known == 0 {
		return 0, nil
	}
	return clamp(sum/float64(known), -1, 1), nil
}

func (b *LexiconBackend) negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		word := strings.Trim(tokens[j], ".,!?;:")
		if b.negators[word] {
			return true
		}
		// "don't" is cleaned to "don t"
		if word == "t" {
			return true
		}
	}
	return false
}

func defaultLexicon() map[string]float64 {
	return map[string]float64{
		// positive
		"good": 0.7, "great": 0.8, "excellent": 1.0, "best": 1.0, "better": 0.5,
		"amazing": 0.6, "impressive": 1.0, "solid": 0.3, "healthy": 0.5,
		"success": 0.3, "successful": 0.75, "optimistic": 0.5, "confident": 0.5,
		"robust": 0.4, "record": 0.2, "win": 0.8, "wins": 0.8, "happy": 0.8,
		"favorable": 0.5, "promising": 0.5, "resilient": 0.4, "improve": 0.5,
		"improved": 0.5, "improves": 0.5, "innovative": 0.5, "attractive": 0.6,
		"expand": 0.2, "expands": 0.2, "upbeat": 0.6, "breakthrough": 0.6,
		"profitable": 0.6, "stable": 0.2, "love": 0.5, "nice": 0.6, "fine": 0.4,
		// negative
		"bad": -0.7, "worst": -1.0, "worse": -0.4, "poor": -0.4, "terrible": -1.0,
		"awful": -1.0, "disappointing": -0.6, "disappoint": -0.6, "fail": -0.5,
		"fails": -0.5, "failed": -0.5, "failure": -0.3, "risk": -0.2, "risky": -0.5,
		"concern": -0.3, "concerns": -0.3, "fear": -0.6, "fears": -0.6,
		"uncertain": -0.3, "uncertainty": -0.3, "volatile": -0.3, "volatility": -0.2,
		"pessimistic": -0.5, "struggle": -0.4, "struggles": -0.4, "slump": -0.5,
		"trouble": -0.4, "troubled": -0.5, "warning": -0.3, "warns": -0.4,
		"scandal": -0.7, "fraud": -0.8, "layoffs": -0.5, "investigation": -0.3,
		"hate": -0.8, "sad": -0.5, "wrong": -0.5,
	}
}

func defaultIntensifiers() map[string]float64 {
	return map[string]float64{
		"very": 1.3, "extremely": 1.5, "highly": 1.3, "really": 1.2,
		"incredibly": 1.5, "most": 1.2, "slightly": 0.6, "somewhat": 0.7,
		"barely": 0.5,
	}
}

func defaultNegators() map[string]bool {
	return map[string]bool{
		"not": true, "no": true, "never": true, "without": true,
		"nor": true, "hardly": true, "neither": true, "cannot": true,
	}
}
