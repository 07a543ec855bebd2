package dto

import "time"

// Quote is the market data of a single symbol.
type Quote struct {
	Symbol           string    `json:"symbol"`
	CompanyName      string    `json:"company_name"`
	CurrentPrice     float64   `json:"current_price"`
	PreviousClose    float64   `json:"previous_close"`
	Change           float64   `json:"change"`
	ChangePct        float64   `json:"change_pct"`
	Currency         string    `json:"currency"`
	MarketCap        float64   `json:"market_cap"`
	DayHigh          float64   `json:"day_high"`
	DayLow           float64   `json:"day_low"`
	FiftyTwoWeekHigh float64   `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64   `json:"fifty_two_week_low"`
	Volume           int64     `json:"volume"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// YahooChartResponse is the subset of /v8/finance/chart we read.
type YahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string  `json:"symbol"`
				Currency             string  `json:"currency"`
				LongName             string  `json:"longName"`
				ShortName            string  `json:"shortName"`
				RegularMarketPrice   float64 `json:"regularMarketPrice"`
				ChartPreviousClose   float64 `json:"chartPreviousClose"`
				PreviousClose        float64 `json:"previousClose"`
				RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
				RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
				RegularMarketVolume  int64   `json:"regularMarketVolume"`
				FiftyTwoWeekHigh     float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow      float64 `json:"fiftyTwoWeekLow"`
				MarketCap            float64 `json:"marketCap"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
