package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang-portfolio-sentiment/internal/tracker/config"
	"golang-portfolio-sentiment/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ContentGenerator is the part of the genai client the polarity backend uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var polarityNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

const polarityPrompt = `You are a financial news sentiment rater.
Rate the sentiment of the text below for the stock price of the company it mentions.
Answer with a single number between -1 (very negative) and 1 (very positive), nothing else.

Text: %s`

// GeminiPolarityRepository scores text polarity with a Gemini model. Results are memoised
// per text so repeated passes over the same headlines do not spend quota.
type GeminiPolarityRepository struct {
	generator ContentGenerator
	model     string
	limiter   *rate.Limiter
	memo      *cache.Cache
	timeout   time.Duration
	logger    *logger.Logger
}

func NewGeminiPolarityRepository(cfg config.Gemini, generator ContentGenerator, log *logger.Logger) *GeminiPolarityRepository {
	perMinute := cfg.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 15
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &GeminiPolarityRepository{
		generator: generator,
		model:     cfg.Model,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		memo:      cache.New(ttl, 2*ttl),
		timeout:   30 * time.Second,
		logger:    log,
	}
}

func (r *GeminiPolarityRepository) Polarity(ctx context.Context, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	sum := md5.Sum([]byte(text))
	key := hex.EncodeToString(sum[:])
	if v, ok := r.memo.Get(key); ok {
		return v.(float64), nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(polarityPrompt, text), genai.RoleUser),
	}
	resp, err := r.generator.GenerateContent(ctx, r.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to generate content: %w", err)
	}

	score, err := parsePolarity(resp.Text())
	if err != nil {
		r.logger.Debug("Unparseable polarity response", logger.StringField("response", resp.Text()))
		return 0, err
	}

	r.memo.Set(key, score, cache.DefaultExpiration)
	return score, nil
}

func parsePolarity(raw string) (float64, error) {
	match := polarityNumber.FindString(raw)
	if match == "" {
		return 0, fmt.Errorf("no polarity in response %q", raw)
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse polarity: %w", err)
	}
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return v, nil
}
