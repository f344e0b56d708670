package alphavantage

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dhargitai/stock-search-app/internal/domain/models"
)

// sessionPoints is one trading session's worth of 15-minute candles
// (6.5 hours), used as the intraday fallback window when the current day has
// no fresh data yet.
const sessionPoints = 26

// safeFloat parses an upstream numeric string. Missing values, the "N/A"
// placeholder and unparsable garbage all yield 0 — never NaN and never an
// error. A true price of 0 is implausible in this domain, so consumers treat
// 0 as "field unavailable"; normalizers degrade instead of failing.
func safeFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// safePercent parses a percent string like "0.83%", stripping the trailing
// sign before parsing. Same degradation rules as safeFloat.
func safePercent(s string) float64 {
	return safeFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// safeInt parses an upstream integer string with the same degradation rules
// as safeFloat.
func safeInt(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Some feeds deliver volumes as floats ("5.0E7").
		return int64(safeFloat(s))
	}
	return n
}

// NormalizeQuote converts a GLOBAL_QUOTE payload into a Quote. It never
// fails: absent fields come out as zero values.
func NormalizeQuote(p *GlobalQuotePayload) models.Quote {
	q := p.GlobalQuote
	return models.Quote{
		Price:         safeFloat(q.Price),
		Change:        safeFloat(q.Change),
		PercentChange: safePercent(q.ChangePercent),
		Open:          safeFloat(q.Open),
		High:          safeFloat(q.High),
		Low:           safeFloat(q.Low),
		Volume:        safeInt(q.Volume),
		PrevClose:     safeFloat(q.PreviousClose),
		LastUpdated:   q.LatestTradingDay,
	}
}

// normalizeCandles converts a timestamp-keyed candle map into a slice sorted
// ascending by key. Both daily dates (YYYY-MM-DD) and intraday timestamps
// (YYYY-MM-DD HH:MM:SS) sort correctly as strings; upstream key order is
// never trusted.
func normalizeCandles(series map[string]RawCandle) []models.ChartDataPoint {
	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]models.ChartDataPoint, 0, len(keys))
	for _, k := range keys {
		c := series[k]
		points = append(points, models.ChartDataPoint{
			Date:   k,
			Open:   safeFloat(c.Open),
			High:   safeFloat(c.High),
			Low:    safeFloat(c.Low),
			Close:  safeFloat(c.Close),
			Volume: safeInt(c.Volume),
		})
	}
	return points
}

// NormalizeDailySeries converts a TIME_SERIES_DAILY payload into an
// ascending chart series.
func NormalizeDailySeries(p *DailySeriesPayload) []models.ChartDataPoint {
	return normalizeCandles(p.TimeSeries)
}

// NormalizeIntradaySeries converts a TIME_SERIES_INTRADAY payload into an
// ascending chart series restricted to the current calendar day (midnight
// cutoff in now's location). On a weekend or holiday the current day has no
// candles, so the most recent session's worth of points is returned instead.
func NormalizeIntradaySeries(p *IntradaySeriesPayload, now time.Time) []models.ChartDataPoint {
	all := normalizeCandles(p.TimeSeries)

	today := now.Format("2006-01-02")
	var todays []models.ChartDataPoint
	for _, pt := range all {
		if strings.HasPrefix(pt.Date, today) {
			todays = append(todays, pt)
		}
	}
	if len(todays) > 0 {
		return todays
	}
	if len(all) > sessionPoints {
		return all[len(all)-sessionPoints:]
	}
	return all
}

// NormalizeSearch converts a SYMBOL_SEARCH payload into suggestions,
// preserving upstream order.
func NormalizeSearch(p *SearchPayload) []models.SearchSuggestion {
	suggestions := make([]models.SearchSuggestion, 0, len(p.BestMatches))
	for _, m := range p.BestMatches {
		suggestions = append(suggestions, models.SearchSuggestion{
			Symbol: m.Symbol,
			Name:   m.Name,
		})
	}
	return suggestions
}
