package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-portfolio-sentiment/internal/tracker/config"
	"golang-portfolio-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const newsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"ACME stock" - Google News</title>
<item>
  <title>ACME shares surge after record quarterly profit</title>
  <link>%[1]s/articles/1</link>
  <pubDate>Mon, 02 Mar 2026 14:00:00 GMT</pubDate>
  <description>&lt;a href="https://www.reuters.com/acme"&gt;ACME shares surge&lt;/a&gt;</description>
  <source url="https://www.reuters.com">Reuters</source>
</item>
<item>
  <title>Short</title>
  <link>%[1]s/articles/2</link>
  <pubDate>Mon, 02 Mar 2026 13:00:00 GMT</pubDate>
</item>
<item>
  <title>Analysts downgrade ACME on weak guidance</title>
  <link>%[1]s/articles/3</link>
  <pubDate>not a date</pubDate>
  <description>&lt;a href="https://example.com/x"&gt;Analysts downgrade&lt;/a&gt;&amp;nbsp;&amp;nbsp;&lt;font color="#6f6f6f"&gt;MarketWatch&lt;/font&gt;</description>
</item>
<item>
  <title>ACME announces new product line for investors</title>
  <link>https://news.example.org/4</link>
</item>
</channel>
</rss>`

const articlePage = `<html><head><title>ACME</title></head><body>
<nav>Home | Markets</nav>
<article><h1>ACME shares surge</h1>
<p>ACME Corp reported record quarterly profit, beating analyst expectations by a wide margin and raising its full year guidance.</p>
<p>Investors welcomed the strong results and the shares rallied sharply in early trading on Monday morning.</p>
</article>
<footer>Copyright</footer>
</body></html>`

func newNewsServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var query string
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	mux.HandleFunc("/rss/search", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = fmt.Fprintf(w, newsFeed, srv.URL)
	})
	mux.HandleFunc("/articles/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articlePage))
	})
	t.Cleanup(srv.Close)
	return srv, &query
}

func TestGoogleNewsRepository_GetArticles(t *testing.T) {
	srv, query := newNewsServer(t)

	repo := NewGoogleNewsRepository(config.News{
		BaseURL:             srv.URL + "/rss/search",
		Query:               "%s stock",
		MaxArticles:         10,
		MinTitleLength:      10,
		MaxRequestPerMinute: 6000,
	}, logger.NewNop())

	items, err := repo.GetArticles(context.Background(), "acme", 0)
	require.NoError(t, err)
	assert.Contains(t, *query, "q=ACME+stock")
	assert.Contains(t, *query, "ceid=US%3Aen")

	require.Len(t, items, 3)

	assert.Equal(t, "ACME shares surge after record quarterly profit", items[0].Title)
	assert.Equal(t, "Reuters", items[0].Source)
	assert.Equal(t, "ACME", items[0].Symbol)
	require.NotNil(t, items[0].PublishedAt)
	assert.True(t, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC).Equal(*items[0].PublishedAt))
	assert.Empty(t, items[0].Content)

	assert.Equal(t, "MarketWatch", items[1].Source)
	assert.Nil(t, items[1].PublishedAt)
	assert.Equal(t, "not a date", items[1].PublishedRaw)

	assert.Equal(t, "news.example.org", items[2].Source)
	assert.Nil(t, items[2].PublishedAt)
}

func TestGoogleNewsRepository_LimitAndContent(t *testing.T) {
	srv, _ := newNewsServer(t)

	repo := NewGoogleNewsRepository(config.News{
		BaseURL:             srv.URL + "/rss/search",
		MaxArticles:         10,
		MinTitleLength:      10,
		MaxRequestPerMinute: 6000,
		FetchContent:        true,
		MaxContentLength:    4000,
	}, logger.NewNop())

	items, err := repo.GetArticles(context.Background(), "ACME", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Content, "record quarterly profit")
}

func TestGoogleNewsRepository_FeedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	repo := NewGoogleNewsRepository(config.News{BaseURL: srv.URL, MaxRequestPerMinute: 6000}, &logger.Logger{Logger: zap.New(core)})

	_, err := repo.GetArticles(context.Background(), "ACME", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch RSS feed")
	assert.Zero(t, logs.Len(), "fetch failures are left to the caller to log")
}
