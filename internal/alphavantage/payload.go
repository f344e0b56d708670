package alphavantage

// Raw payload shapes for the Alpha Vantage endpoints this service consumes.
//
// The upstream reports errors, rate limits and premium-tier requirements as
// sentinel text fields inside an otherwise normal 200 response, so every
// payload embeds errorEnvelope and goes through classify() before any field
// is trusted. Numeric values arrive as strings (sometimes "N/A"); the
// normalizers in this package are the only code that parses them.

// errorEnvelope carries the sentinel fields Alpha Vantage uses to signal
// failure inside a 200 response.
type errorEnvelope struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

// RawQuote is the inner object of a GLOBAL_QUOTE response.
type RawQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

// GlobalQuotePayload is the full GLOBAL_QUOTE response body.
type GlobalQuotePayload struct {
	errorEnvelope
	GlobalQuote RawQuote `json:"Global Quote"`
}

// Empty reports whether the quote object is missing or a placeholder, which
// Alpha Vantage returns for unknown symbols. The service layer decides
// whether emptiness is an error.
func (p *GlobalQuotePayload) Empty() bool {
	return p.GlobalQuote.Symbol == "" && p.GlobalQuote.Price == ""
}

// RawCandle is one OHLCV record inside a time-series response.
type RawCandle struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// DailySeriesPayload is the TIME_SERIES_DAILY response body. TimeSeries is
// keyed by date (YYYY-MM-DD) in no guaranteed order.
type DailySeriesPayload struct {
	errorEnvelope
	MetaData   map[string]string    `json:"Meta Data"`
	TimeSeries map[string]RawCandle `json:"Time Series (Daily)"`
}

// Empty reports whether the payload carries no candles.
func (p *DailySeriesPayload) Empty() bool { return len(p.TimeSeries) == 0 }

// IntradaySeriesPayload is the TIME_SERIES_INTRADAY response body for the
// 15-minute interval this service requests. TimeSeries is keyed by timestamp
// (YYYY-MM-DD HH:MM:SS) in no guaranteed order.
type IntradaySeriesPayload struct {
	errorEnvelope
	MetaData   map[string]string    `json:"Meta Data"`
	TimeSeries map[string]RawCandle `json:"Time Series (15min)"`
}

// Empty reports whether the payload carries no candles.
func (p *IntradaySeriesPayload) Empty() bool { return len(p.TimeSeries) == 0 }

// RawSearchMatch is one entry of a SYMBOL_SEARCH response.
type RawSearchMatch struct {
	Symbol string `json:"1. symbol"`
	Name   string `json:"2. name"`
}

// SearchPayload is the SYMBOL_SEARCH response body.
type SearchPayload struct {
	errorEnvelope
	BestMatches []RawSearchMatch `json:"bestMatches"`
}
