package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/impact"
	"golang-portfolio-sentiment/internal/tracker/config"
	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/internal/tracker/repository"
	"golang-portfolio-sentiment/pkg/common"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/sentiment"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SentimentScorer scores article text.
type SentimentScorer interface {
	Analyze(ctx context.Context, text string) sentiment.Analysis
	ScoreArticle(ctx context.Context, title, content string) float64
}

// ImpactService runs impact passes over the portfolio and serves their results.
type ImpactService interface {
	Run(ctx context.Context, limit int) (*dto.ImpactResponse, error)
	Latest(ctx context.Context, limit int) (*dto.ImpactResponse, error)
	StockDetail(ctx context.Context, symbol string) (*dto.StockDetailResponse, error)
	SymbolNews(ctx context.Context, symbol string, limit int) ([]dto.ScoredNewsItem, error)
	ScoreText(ctx context.Context, req dto.SentimentRequest) dto.SentimentResponse
}

// ImpactDeps groups the collaborators of ImpactService.
type ImpactDeps struct {
	Holdings   repository.HoldingRepository
	Quotes     repository.QuoteRepository
	News       repository.NewsRepository
	Articles   repository.NewsArticleRepository
	Snapshots  repository.ImpactSnapshotRepository
	Scorer     SentimentScorer
	Calculator *impact.Calculator
	Clock      utils.Clock
}

// NewImpactService creates a new ImpactService.
func NewImpactService(deps ImpactDeps, cfg config.Tracker, log *logger.Logger) ImpactService {
	if cfg.MaxConcurrentFetch <= 0 {
		cfg.MaxConcurrentFetch = 1
	}
	return &impactService{
		deps:   deps,
		cfg:    cfg,
		logger: log,
	}
}

type impactService struct {
	deps   ImpactDeps
	cfg    config.Tracker
	logger *logger.Logger
}

type symbolFetch struct {
	quote *dto.Quote
	news  []dto.ScoredNewsItem
}

// Run fetches quotes and news for every holding concurrently, then calculates the impact
// once all fetches are done. Collaborator failures degrade to the stored price and an
// empty article list and are reported in Errors.
func (s *impactService) Run(ctx context.Context, limit int) (*dto.ImpactResponse, error) {
	holdings, err := s.deps.Holdings.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list holdings", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	runID := uuid.NewString()
	s.logger.InfoContext(ctx, "Starting impact pass", logger.StringField("run_id", runID), logger.IntField("holdings", len(holdings)))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		fetched   = make(map[string]symbolFetch, len(holdings))
		errs      []string
		semaphore = make(chan struct{}, s.cfg.MaxConcurrentFetch)
	)

	for _, h := range holdings {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		symbol := h.Symbol
		wg.Add(1)
		utils.GoSafe(s.logger, func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			var result symbolFetch
			var symbolErrs []string

			quote, err := s.deps.Quotes.GetQuote(ctx, symbol)
			if err != nil {
				s.logger.Warn("Failed to fetch quote, using stored price", logger.ErrorField(err), logger.StringField("symbol", symbol))
				symbolErrs = append(symbolErrs, fmt.Sprintf("%s: quote: %v", symbol, err))
			} else {
				result.quote = quote
			}

			news, err := s.scoredNews(ctx, symbol, 0)
			if err != nil {
				symbolErrs = append(symbolErrs, fmt.Sprintf("%s: news: %v", symbol, err))
			}
			result.news = news

			mu.Lock()
			fetched[symbol] = result
			errs = append(errs, symbolErrs...)
			mu.Unlock()
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("impact pass interrupted: %w", err)
	}

	now := s.deps.Clock.Now()
	engineHoldings := make([]impact.Holding, 0, len(holdings))
	articles := make(map[string][]impact.Article, len(holdings))
	var recent []dto.ScoredNewsItem

	for i := range holdings {
		h := &holdings[i]
		f := fetched[h.Symbol]
		if f.quote != nil {
			applyQuote(h, f.quote, s.deps.Clock)
			if err := s.deps.Holdings.UpdateQuote(ctx, h.Symbol, f.quote, *h.PriceUpdatedAt); err != nil {
				if errors.Is(err, repository.ErrHoldingNotFound) {
					s.logger.InfoContext(ctx, "Holding removed during impact pass", logger.StringField("symbol", h.Symbol))
				} else {
					s.logger.Error("Failed to store quote", logger.ErrorField(err), logger.StringField("symbol", h.Symbol))
				}
			}
		}

		engineHoldings = append(engineHoldings, impact.Holding{
			Symbol:       h.Symbol,
			Quantity:     h.Quantity,
			CurrentPrice: h.CurrentPrice,
		})
		for _, n := range f.news {
			articles[h.Symbol] = append(articles[h.Symbol], impact.Article{
				Symbol:      h.Symbol,
				Title:       n.Title,
				PublishedAt: n.PublishedAt,
				Sentiment:   n.SentimentScore,
			})
		}
		recent = append(recent, f.news...)
	}

	result := s.deps.Calculator.Calculate(engineHoldings, articles, now)

	s.persist(ctx, runID, now, holdings, fetched, result)

	sort.Strings(errs)
	resp := &dto.ImpactResponse{
		RunID:        runID,
		CalculatedAt: now,
		TotalValue:   resultValue(result),
		Currency:     portfolioCurrency(holdings, s.currency()),
		Impacts:      result.Impacts,
		Summary:      result.Summary,
		Top:          result.Top(limit),
		RecentNews:   mostRecent(recent, s.recentLimit()),
		Errors:       errs,
	}

	s.logger.InfoContext(ctx, "Impact pass completed",
		logger.StringField("run_id", runID),
		logger.Float64Field("total_sentiment_impact_pct", result.Summary.TotalSentimentImpactPct),
		logger.StringField("overall_risk_level", string(result.Summary.OverallRiskLevel)),
	)
	return resp, nil
}

func (s *impactService) persist(ctx context.Context, runID string, now time.Time, holdings []entity.Holding, fetched map[string]symbolFetch, result impact.Result) {
	var archive []entity.NewsArticle
	for _, h := range holdings {
		news := fetched[h.Symbol].news
		if len(news) == 0 {
			continue
		}

		sum := decimal.Zero
		for _, n := range news {
			sum = sum.Add(decimal.NewFromFloat(n.SentimentScore))
			archive = append(archive, toNewsArticle(n))
		}
		mean := sum.DivRound(decimal.NewFromInt(int64(len(news))), 3).InexactFloat64()
		if err := s.deps.Holdings.UpdateSentiment(ctx, h.Symbol, mean, now); err != nil {
			s.logger.Error("Failed to store rolling sentiment", logger.ErrorField(err), logger.StringField("symbol", h.Symbol))
		}
	}

	if inserted, err := s.deps.Articles.CreateIgnoreConflict(ctx, archive); err != nil {
		s.logger.Error("Failed to archive articles", logger.ErrorField(err), logger.StringField("run_id", runID))
	} else {
		s.logger.Debug("Archived articles", logger.IntField("inserted", int(inserted)), logger.IntField("seen", len(archive)))
	}

	ranked, err := json.Marshal(result.Top(len(result.Order)))
	if err != nil {
		s.logger.Error("Failed to marshal impacts", logger.ErrorField(err))
		return
	}
	summary, err := json.Marshal(result.Summary)
	if err != nil {
		s.logger.Error("Failed to marshal summary", logger.ErrorField(err))
		return
	}

	snapshot := &entity.ImpactSnapshot{
		RunID:                     runID,
		TotalValue:                resultValue(result),
		TotalSentimentImpactPct:   result.Summary.TotalSentimentImpactPct,
		EstimatedTotalValueImpact: result.Summary.EstimatedTotalValueImpact,
		OverallRiskLevel:          string(result.Summary.OverallRiskLevel),
		HighRiskCount:             result.Summary.HighRiskCount,
		Impacts:                   datatypes.JSON(ranked),
		Summary:                   datatypes.JSON(summary),
		CalculatedAt:              now,
	}
	if err := s.deps.Snapshots.Create(ctx, snapshot); err != nil {
		s.logger.Error("Failed to store impact snapshot", logger.ErrorField(err), logger.StringField("run_id", runID))
	}
}

// Latest returns the last persisted pass.
func (s *impactService) Latest(ctx context.Context, limit int) (*dto.ImpactResponse, error) {
	snapshot, err := s.deps.Snapshots.Latest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	var ranked []impact.SentimentImpact
	if err := json.Unmarshal(snapshot.Impacts, &ranked); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot impacts: %w", err)
	}
	var summary impact.PortfolioSummary
	if err := json.Unmarshal(snapshot.Summary, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot summary: %w", err)
	}

	if limit <= 0 {
		limit = common.DefaultTopImpactLimit
	}
	impacts := make(map[string]impact.SentimentImpact, len(ranked))
	for _, si := range ranked {
		impacts[si.Symbol] = si
	}
	top := ranked
	if len(top) > limit {
		top = top[:limit]
	}

	return &dto.ImpactResponse{
		RunID:        snapshot.RunID,
		CalculatedAt: snapshot.CalculatedAt,
		TotalValue:   snapshot.TotalValue,
		Currency:     s.currency(),
		Impacts:      impacts,
		Summary:      summary,
		Top:          top,
		RecentNews:   s.archivedNews(ctx, rankedSymbols(ranked)),
	}, nil
}

// archivedNews reads the newest archived articles of symbols. A read failure yields an
// empty feed.
func (s *impactService) archivedNews(ctx context.Context, symbols []string) []dto.ScoredNewsItem {
	articles, err := s.deps.Articles.FindRecent(ctx, symbols, s.recentLimit())
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read archived news", logger.ErrorField(err))
		return []dto.ScoredNewsItem{}
	}
	items := make([]dto.ScoredNewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, fromNewsArticle(a))
	}
	return items
}

func rankedSymbols(ranked []impact.SentimentImpact) []string {
	symbols := make([]string, 0, len(ranked))
	for _, si := range ranked {
		symbols = append(symbols, si.Symbol)
	}
	return symbols
}

func (s *impactService) StockDetail(ctx context.Context, symbol string) (*dto.StockDetailResponse, error) {
	symbol = utils.NormalizeSymbol(symbol)
	quote, err := s.deps.Quotes.GetQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}

	news, err := s.SymbolNews(ctx, symbol, s.detailLimit())
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to get news for stock detail", logger.ErrorField(err), logger.StringField("symbol", symbol))
		news = []dto.ScoredNewsItem{}
	}

	return &dto.StockDetailResponse{Quote: quote, News: news}, nil
}

func (s *impactService) SymbolNews(ctx context.Context, symbol string, limit int) ([]dto.ScoredNewsItem, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, repository.ErrSymbolNotFound
	}
	return s.scoredNews(ctx, symbol, limit)
}

func (s *impactService) ScoreText(ctx context.Context, req dto.SentimentRequest) dto.SentimentResponse {
	analysis := s.deps.Scorer.Analyze(ctx, req.Title)
	score := analysis.Score
	if strings.TrimSpace(req.Content) != "" {
		score = s.deps.Scorer.ScoreArticle(ctx, req.Title, req.Content)
	}
	matched := analysis.Matched
	if matched == nil {
		matched = []string{}
	}
	return dto.SentimentResponse{
		Score:           score,
		Label:           sentiment.Label(score),
		Color:           sentiment.Color(score),
		MatchedKeywords: matched,
		BackendOK:       analysis.BackendOK,
	}
}

// scoredNews fetches and scores the articles of one symbol. A fetch failure yields an
// empty list along with the error.
func (s *impactService) scoredNews(ctx context.Context, symbol string, limit int) ([]dto.ScoredNewsItem, error) {
	items, err := s.deps.News.GetArticles(ctx, symbol, limit)
	if err != nil {
		s.logger.Warn("Failed to fetch news, treating as no articles", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return []dto.ScoredNewsItem{}, err
	}

	scored := make([]dto.ScoredNewsItem, 0, len(items))
	for _, item := range items {
		analysis := s.deps.Scorer.Analyze(ctx, item.Title)
		score := analysis.Score
		if strings.TrimSpace(item.Content) != "" {
			score = s.deps.Scorer.ScoreArticle(ctx, item.Title, item.Content)
		}
		matched := analysis.Matched
		if matched == nil {
			matched = []string{}
		}
		scored = append(scored, dto.ScoredNewsItem{
			NewsItem:        item,
			SentimentScore:  score,
			SentimentLabel:  sentiment.Label(score),
			SentimentColor:  sentiment.Color(score),
			MatchedKeywords: matched,
		})
	}
	return scored, nil
}

func (s *impactService) recentLimit() int {
	if s.cfg.RecentNewsLimit > 0 {
		return s.cfg.RecentNewsLimit
	}
	return common.DefaultRecentNewsLimit
}

func (s *impactService) currency() string {
	if s.cfg.Currency != "" {
		return s.cfg.Currency
	}
	return common.DefaultCurrency
}

// portfolioCurrency is the quote currency shared by all holdings, or fallback when they
// mix currencies or carry none.
func portfolioCurrency(holdings []entity.Holding, fallback string) string {
	var currency string
	for _, h := range holdings {
		if h.Currency == "" {
			continue
		}
		if currency != "" && currency != h.Currency {
			return fallback
		}
		currency = h.Currency
	}
	if currency == "" {
		return fallback
	}
	return currency
}

func (s *impactService) detailLimit() int {
	if s.cfg.DetailNewsLimit > 0 {
		return s.cfg.DetailNewsLimit
	}
	return common.DefaultDetailNewsLimit
}

func toNewsArticle(n dto.ScoredNewsItem) entity.NewsArticle {
	hash := md5.Sum([]byte(n.Link + "|" + n.PublishedRaw))
	return entity.NewsArticle{
		Symbol:          n.Symbol,
		Title:           n.Title,
		Link:            n.Link,
		Source:          n.Source,
		Content:         n.Content,
		PublishedAt:     n.PublishedAt,
		PublishedRaw:    n.PublishedRaw,
		SentimentScore:  n.SentimentScore,
		SentimentLabel:  n.SentimentLabel,
		SentimentColor:  n.SentimentColor,
		MatchedKeywords: n.MatchedKeywords,
		HashIdentifier:  hex.EncodeToString(hash[:]),
	}
}

// mostRecent sorts newest first; undated articles go last in their original order.
func fromNewsArticle(a entity.NewsArticle) dto.ScoredNewsItem {
	matched := []string(a.MatchedKeywords)
	if matched == nil {
		matched = []string{}
	}
	return dto.ScoredNewsItem{
		NewsItem: dto.NewsItem{
			Symbol:       a.Symbol,
			Title:        a.Title,
			Link:         a.Link,
			Source:       a.Source,
			Content:      a.Content,
			PublishedRaw: a.PublishedRaw,
			PublishedAt:  a.PublishedAt,
		},
		SentimentScore:  a.SentimentScore,
		SentimentLabel:  a.SentimentLabel,
		SentimentColor:  a.SentimentColor,
		MatchedKeywords: matched,
	}
}

func mostRecent(items []dto.ScoredNewsItem, limit int) []dto.ScoredNewsItem {
	out := append([]dto.ScoredNewsItem{}, items...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PublishedAt, out[j].PublishedAt
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func resultValue(result impact.Result) float64 {
	var total float64
	for _, symbol := range result.Order {
		total += result.Impacts[symbol].CurrentValue
	}
	return total
}
