package sentiment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang-portfolio-sentiment/pkg/logger"

	"github.com/shopspring/decimal"
)

// PolarityBackend returns a general-purpose polarity for already cleaned text,
// roughly in [-1, 1].
type PolarityBackend interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// Config holds the blend weights of the final score.
type Config struct {
	BaseWeight    float64 `mapstructure:"base_weight"`
	KeywordWeight float64 `mapstructure:"keyword_weight"`
	// TitleWeight and ContentWeight apply when an article body is available.
	TitleWeight   float64 `mapstructure:"title_weight"`
	ContentWeight float64 `mapstructure:"content_weight"`
}

func DefaultConfig() Config {
	return Config{
		BaseWeight:    0.7,
		KeywordWeight: 0.3,
		TitleWeight:   0.8,
		ContentWeight: 0.2,
	}
}

// Analysis is the breakdown behind a score.
type Analysis struct {
	Score        float64  `json:"score"`
	Base         float64  `json:"base"`
	KeywordScore float64  `json:"keyword_score"`
	BackendOK    bool     `json:"backend_ok"`
	Matched      []string `json:"matched_keywords,omitempty"`
}

// Scorer turns text into a bounded sentiment value in [-1, 1].
type Scorer struct {
	backend  PolarityBackend
	keywords Keywords
	cfg      Config
	log      *logger.Logger
}

// NewScorer builds a Scorer. A nil backend means keyword-only scoring.
func NewScorer(backend PolarityBackend, keywords Keywords, cfg Config, log *logger.Logger) *Scorer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Scorer{
		backend:  backend,
		keywords: keywords,
		cfg:      cfg,
		log:      log,
	}
}

// Score returns the sentiment of text. Empty text scores exactly 0.
func (s *Scorer) Score(ctx context.Context, text string) float64 {
	return s.Analyze(ctx, text).Score
}

// Analyze scores text and reports the components of the score.
func (s *Scorer) Analyze(ctx context.Context, text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return Analysis{}
	}

	cleaned := Clean(text)
	if cleaned == "" {
		return Analysis{}
	}
	tokens := strings.Fields(cleaned)

	keywordScore := s.KeywordScore(tokens)
	var base float64
	backendOK := false
	if s.backend != nil {
		var err error
		base, err = s.polarity(ctx, cleaned)
		backendOK = err == nil
		if err != nil {
			s.log.Warn("Polarity backend unavailable, using keyword score only", logger.ErrorField(err))
			base = 0
		}
	}

	final := clamp(s.cfg.BaseWeight*base+s.cfg.KeywordWeight*keywordScore, -1, 1)

	return Analysis{
		Score:        round3(final),
		Base:         base,
		KeywordScore: keywordScore,
		BackendOK:    backendOK,
		Matched:      s.keywords.Matches(tokens),
	}
}

// KeywordScore is (p-n)/(p+n) over the tokens, or 0 when no keyword occurs.
func (s *Scorer) KeywordScore(tokens []string) float64 {
	p, n := s.keywords.Count(tokens)
	if p+n == 0 {
		return 0
	}
	return float64(p-n) / float64(p+n)
}

// ScoreArticle blends title and body sentiment. Without a body the title score is used as is.
func (s *Scorer) ScoreArticle(ctx context.Context, title, content string) float64 {
	titleScore := s.Score(ctx, title)
	if strings.TrimSpace(content) == "" {
		return titleScore
	}
	blended := s.cfg.TitleWeight*titleScore + s.cfg.ContentWeight*s.Score(ctx, content)
	return round3(clamp(blended, -1, 1))
}

func (s *Scorer) polarity(ctx context.Context, cleaned string) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("polarity backend panic: %v", r)
		}
	}()
	value, err = s.backend.Polarity(ctx, cleaned)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("polarity backend returned %v", value)
	}
	return value, nil
}

// Label maps a score to Positive, Negative or Neutral using a ±0.1 dead band.
func Label(score float64) string {
	switch {
	case score > 0.1:
		return "Positive"
	case score < -0.1:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Color is the dashboard colour class for a score.
func Color(score float64) string {
	switch {
	case score > 0.1:
		return "success"
	case score < -0.1:
		return "danger"
	default:
		return "secondary"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}
