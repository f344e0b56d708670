package models

import (
	"fmt"
	"strings"
)

// Quote represents a normalized real-time quote for a single symbol.
//
// All numeric fields default to 0 when the upstream provider supplies a
// missing or "N/A" value; consumers never observe NaN. LastUpdated is the
// latest trading day as reported upstream (YYYY-MM-DD).
//
// swagger:model Quote
type Quote struct {
	Price         float64 `json:"price" example:"152.25"`
	Change        float64 `json:"change" example:"1.25"`
	PercentChange float64 `json:"percent_change" example:"0.83"`
	Open          float64 `json:"open" example:"150.00"`
	High          float64 `json:"high" example:"155.50"`
	Low           float64 `json:"low" example:"149.00"`
	Volume        int64   `json:"volume" example:"50000000"`
	PrevClose     float64 `json:"prev_close" example:"151.00"`
	LastUpdated   string  `json:"last_updated" example:"2023-12-01"`
}

// ChartDataPoint is a single OHLCV candle, one per trading interval
// (a day for daily series, a 15-minute slot for intraday).
//
// swagger:model ChartDataPoint
type ChartDataPoint struct {
	Date   string  `json:"date" example:"2023-12-01"`
	Open   float64 `json:"open" example:"150.00"`
	High   float64 `json:"high" example:"155.50"`
	Low    float64 `json:"low" example:"149.00"`
	Close  float64 `json:"close" example:"152.25"`
	Volume int64   `json:"volume" example:"50000000"`
}

// SearchSuggestion is one symbol-search match, in upstream order.
//
// swagger:model SearchSuggestion
type SearchSuggestion struct {
	Symbol string `json:"symbol" example:"AAPL"`
	Name   string `json:"name" example:"Apple Inc."`
}

// StockDetails is the composite payload backing the stock detail page:
// the quote plus the period-appropriate chart series.
//
// HistoricalData is always sorted ascending by date (oldest first); it may
// be empty when the chart fetch degraded, but Quote is always populated.
//
// swagger:model StockDetails
type StockDetails struct {
	Symbol         string           `json:"symbol" example:"AAPL"`
	CompanyName    string           `json:"company_name" example:"AAPL Company"`
	Quote          Quote            `json:"quote"`
	HistoricalData []ChartDataPoint `json:"historical_data"`
	LastUpdated    string           `json:"last_updated" example:"2023-12-01"`
}

// Period selects the historical window requested for a chart and, with it,
// the fetch granularity (intraday vs. daily) and the slice length.
type Period string

const (
	PeriodDay     Period = "1D"
	PeriodWeek    Period = "5D"
	PeriodMonth   Period = "1M"
	PeriodYear    Period = "1Y"
	DefaultPeriod        = PeriodMonth
)

// ParsePeriod validates a period string. Empty input selects DefaultPeriod;
// anything outside the closed set is rejected.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}
	switch p := Period(strings.ToUpper(s)); p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	default:
		return "", fmt.Errorf("invalid period %q, expected one of 1D, 5D, 1M, 1Y", s)
	}
}

const (
	symbolMinLen = 1
	symbolMaxLen = 10
)

// ParseSymbol canonicalizes a ticker symbol: trims whitespace, uppercases,
// and enforces length and charset bounds. Every boundary that accepts a
// symbol goes through here, so case normalization happens exactly once.
func ParseSymbol(s string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(s))
	if len(sym) < symbolMinLen || len(sym) > symbolMaxLen {
		return "", fmt.Errorf("symbol must be between %d and %d characters", symbolMinLen, symbolMaxLen)
	}
	for _, r := range sym {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return "", fmt.Errorf("symbol contains invalid character %q", r)
		}
	}
	return sym, nil
}
