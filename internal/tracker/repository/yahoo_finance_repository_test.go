package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-portfolio-sentiment/internal/tracker/config"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{"chart":{"result":[{"meta":{"symbol":"ACME","currency":"USD","longName":"Acme Corp",
"regularMarketPrice":110.5,"chartPreviousClose":100,"regularMarketDayHigh":112,"regularMarketDayLow":99.5,
"regularMarketVolume":123456,"fiftyTwoWeekHigh":150,"fiftyTwoWeekLow":80}}],"error":null}}`

func TestYahooFinanceRepository_GetQuote(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		status       int
		body         string
		wantErr      bool
		wantNotFound bool
	}{
		{name: "ok", status: http.StatusOK, body: chartBody},
		{name: "unknown symbol", status: http.StatusNotFound, body: `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`, wantErr: true, wantNotFound: true},
		{name: "chart error", status: http.StatusOK, body: `{"chart":{"result":[],"error":{"code":"Not Found","description":"delisted"}}}`, wantErr: true, wantNotFound: true},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: true},
		{name: "malformed body", status: http.StatusOK, body: `{"chart":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			repo := NewYahooFinanceRepository(config.YahooFinance{BaseURL: srv.URL, MaxRequestPerMinute: 6000}, &utils.FixedClock{T: now}, logger.NewNop())
			quote, err := repo.GetQuote(context.Background(), " acme ")

			assert.Equal(t, "/v8/finance/chart/ACME", gotPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantNotFound, errorsIs(err, ErrSymbolNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ACME", quote.Symbol)
			assert.Equal(t, "Acme Corp", quote.CompanyName)
			assert.Equal(t, 110.5, quote.CurrentPrice)
			assert.Equal(t, 100.0, quote.PreviousClose)
			assert.InDelta(t, 10.5, quote.Change, 1e-9)
			assert.InDelta(t, 10.5, quote.ChangePct, 1e-9)
			assert.Equal(t, int64(123456), quote.Volume)
			assert.Equal(t, now, quote.FetchedAt)
		})
	}
}
