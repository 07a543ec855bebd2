package sentiment

import "strings"

// Keywords is the immutable pair of domain keyword sets used for the keyword score.
// Matching is substring containment against each token, so "profits" and "profitable"
// both count for "profit".
type Keywords struct {
	positive []string
	negative []string
}

// NewKeywords copies and lower-cases the given sets. Empty entries are dropped.
func NewKeywords(positive, negative []string) Keywords {
	return Keywords{
		positive: normalizeKeywords(positive),
		negative: normalizeKeywords(negative),
	}
}

// DefaultKeywords returns the financial keyword sets.
func DefaultKeywords() Keywords {
	return NewKeywords(
		[]string{
			"profit", "gain", "growth", "increase", "rise", "up", "bullish",
			"buy", "strong", "beat", "exceed", "outperform", "positive",
			"boost", "surge", "rally", "upgrade", "dividend", "earnings",
		},
		[]string{
			"loss", "drop", "decline", "fall", "down", "bearish", "sell",
			"weak", "miss", "underperform", "negative", "plunge", "crash",
			"downgrade", "cut", "recession", "bankruptcy", "lawsuit",
		},
	)
}

func (k Keywords) Positive() []string { return append([]string(nil), k.positive...) }
func (k Keywords) Negative() []string { return append([]string(nil), k.negative...) }

// Count returns how many tokens contain at least one positive keyword and how many
// contain at least one negative keyword. A token can count towards both.
func (k Keywords) Count(tokens []string) (positive, negative int) {
	for _, token := range tokens {
		if containsAny(token, k.positive) {
			positive++
		}
		if containsAny(token, k.negative) {
			negative++
		}
	}
	return positive, negative
}

// Matches returns the distinct keywords found in tokens, positives first.
func (k Keywords) Matches(tokens []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, set := range [][]string{k.positive, k.negative} {
		for _, keyword := range set {
			if seen[keyword] {
				continue
			}
			for _, token := range tokens {
				if strings.Contains(token, keyword) {
					seen[keyword] = true
					out = append(out, keyword)
					break
				}
			}
		}
	}
	return out
}

func containsAny(token string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(token, keyword) {
			return true
		}
	}
	return false
}

func normalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
