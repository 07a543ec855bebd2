package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang-portfolio-sentiment/internal/tracker/config"
	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/utils"

	"golang.org/x/time/rate"
)

// QuoteRepository fetches market data for a symbol.
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.Quote, error)
}

type yahooFinanceRepository struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	clock   utils.Clock
	logger  *logger.Logger
}

// NewYahooFinanceRepository creates a QuoteRepository backed by the Yahoo Finance chart API.
func NewYahooFinanceRepository(cfg config.YahooFinance, clock utils.Clock, log *logger.Logger) QuoteRepository {
	perMinute := cfg.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &yahooFinanceRepository{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		clock:   clock,
		logger:  log,
	}
}

func (r *yahooFinanceRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, ErrSymbolNotFound
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limit: %w", err)
	}

	apiURL := fmt.Sprintf("%s/v8/finance/chart/%s?range=2d&interval=1d", r.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("Failed to fetch quote", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo finance returned status %d: %s", resp.StatusCode, string(body))
	}

	var chart dto.YahooChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s (%s)", ErrSymbolNotFound, symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || chart.Chart.Result[0].Meta.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	meta := chart.Chart.Result[0].Meta
	previousClose := meta.PreviousClose
	if previousClose == 0 {
		previousClose = meta.ChartPreviousClose
	}
	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}
	if name == "" {
		name = symbol
	}

	quote := &dto.Quote{
		Symbol:           symbol,
		CompanyName:      name,
		CurrentPrice:     meta.RegularMarketPrice,
		PreviousClose:    previousClose,
		Currency:         meta.Currency,
		MarketCap:        meta.MarketCap,
		DayHigh:          meta.RegularMarketDayHigh,
		DayLow:           meta.RegularMarketDayLow,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
		Volume:           meta.RegularMarketVolume,
		FetchedAt:        r.clock.Now(),
	}
	if previousClose > 0 {
		quote.Change = quote.CurrentPrice - previousClose
		quote.ChangePct = quote.Change / previousClose * 100
	}

	return quote, nil
}
