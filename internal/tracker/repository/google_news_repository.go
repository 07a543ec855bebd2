package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-portfolio-sentiment/internal/impact"
	"golang-portfolio-sentiment/internal/tracker/config"
	"golang-portfolio-sentiment/internal/tracker/dto"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed/rss"
	"golang.org/x/time/rate"
)

// NewsRepository fetches recent articles about a symbol.
type NewsRepository interface {
	GetArticles(ctx context.Context, symbol string, limit int) ([]dto.NewsItem, error)
}

type googleNewsRepository struct {
	client  *http.Client
	cfg     config.News
	limiter *rate.Limiter
	logger  *logger.Logger
}

// NewGoogleNewsRepository creates a NewsRepository backed by the Google News RSS search feed.
func NewGoogleNewsRepository(cfg config.News, log *logger.Logger) NewsRepository {
	perMinute := cfg.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cfg.Query == "" {
		cfg.Query = "%s stock"
	}

	return &googleNewsRepository{
		client:  &http.Client{Timeout: timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 2),
		logger:  log,
	}
}

func (r *googleNewsRepository) GetArticles(ctx context.Context, symbol string, limit int) ([]dto.NewsItem, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if limit <= 0 {
		limit = r.cfg.MaxArticles
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limit: %w", err)
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf(r.cfg.Query, symbol))
	query.Set("hl", "en-US")
	query.Set("gl", "US")
	query.Set("ceid", "US:en")
	feedURL := r.cfg.BaseURL + "?" + query.Encode()

	body, err := r.get(ctx, feedURL, "application/rss+xml, application/xml;q=0.9, */*;q=0.8")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch RSS feed: %w", err)
	}

	fp := rss.Parser{}
	feed, err := fp.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	items := make([]dto.NewsItem, 0, limit)
	for _, it := range feed.Items {
		if limit > 0 && len(items) >= limit {
			break
		}
		if !utils.ShouldContinue(ctx, r.logger) {
			break
		}

		title := strings.TrimSpace(utils.CleanToValidUTF8(it.Title))
		if len([]rune(title)) < r.cfg.MinTitleLength {
			continue
		}

		item := dto.NewsItem{
			Symbol:       symbol,
			Title:        title,
			Link:         strings.TrimSpace(it.Link),
			Source:       articleSource(it),
			PublishedRaw: it.PubDate,
		}
		if it.PubDateParsed != nil {
			item.PublishedAt = utils.ToPointer(it.PubDateParsed.UTC())
		} else if t, ok := impact.ParsePublishedAt(it.PubDate); ok {
			item.PublishedAt = utils.ToPointer(t.UTC())
		}

		if r.cfg.FetchContent && item.Link != "" {
			content, err := r.fetchContent(ctx, item.Link)
			if err != nil {
				r.logger.Warn("Failed to extract article content", logger.ErrorField(err), logger.StringField("url", item.Link))
			} else {
				item.Content = content
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// articleSource prefers the <source> element, then the publisher label Google puts in
// the description, then the link hostname.
func articleSource(it *rss.Item) string {
	if it.Source != nil && strings.TrimSpace(it.Source.Title) != "" {
		return strings.TrimSpace(it.Source.Title)
	}

	if it.Description != "" {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(it.Description)); err == nil {
			if font := strings.TrimSpace(doc.Find("font").First().Text()); font != "" {
				return font
			}
			if href, ok := doc.Find("a").First().Attr("href"); ok {
				if u, err := url.Parse(href); err == nil && u.Hostname() != "" {
					return u.Hostname()
				}
			}
		}
	}

	if u, err := url.Parse(it.Link); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return "Unknown"
}

func (r *googleNewsRepository) get(ctx context.Context, target, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func (r *googleNewsRepository) fetchContent(ctx context.Context, link string) (string, error) {
	body, err := r.get(ctx, link, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if err != nil {
		return "", err
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	docHTML, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Content()))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}

	content := strings.Join(strings.Fields(docHTML.Text()), " ")
	content = utils.CleanToValidUTF8(content)
	if maxLen := r.cfg.MaxContentLength; maxLen > 0 && len([]rune(content)) > maxLen {
		content = string([]rune(content)[:maxLen])
	}
	return content, nil
}
