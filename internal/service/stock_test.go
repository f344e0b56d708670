package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dhargitai/stock-search-app/internal/alphavantage"
	"github.com/dhargitai/stock-search-app/internal/domain/apperr"
	"github.com/dhargitai/stock-search-app/internal/domain/models"
)

// stubClient is a canned MarketDataClient that counts upstream calls so
// tests can assert cache behavior.
type stubClient struct {
	mu sync.Mutex

	quote    *alphavantage.GlobalQuotePayload
	quoteErr error

	daily    *alphavantage.DailySeriesPayload
	dailyErr error

	intraday    *alphavantage.IntradaySeriesPayload
	intradayErr error

	search    *alphavantage.SearchPayload
	searchErr error

	quoteCalls    int
	dailyCalls    int
	intradayCalls int
	searchCalls   int
}

func (s *stubClient) GlobalQuote(ctx context.Context, symbol string) (*alphavantage.GlobalQuotePayload, error) {
	s.mu.Lock()
	s.quoteCalls++
	s.mu.Unlock()
	return s.quote, s.quoteErr
}

func (s *stubClient) DailySeries(ctx context.Context, symbol string, size alphavantage.OutputSize) (*alphavantage.DailySeriesPayload, error) {
	s.mu.Lock()
	s.dailyCalls++
	s.mu.Unlock()
	return s.daily, s.dailyErr
}

func (s *stubClient) IntradaySeries(ctx context.Context, symbol string) (*alphavantage.IntradaySeriesPayload, error) {
	s.mu.Lock()
	s.intradayCalls++
	s.mu.Unlock()
	return s.intraday, s.intradayErr
}

func (s *stubClient) SymbolSearch(ctx context.Context, keywords string) (*alphavantage.SearchPayload, error) {
	s.mu.Lock()
	s.searchCalls++
	s.mu.Unlock()
	return s.search, s.searchErr
}

func testQuotePayload() *alphavantage.GlobalQuotePayload {
	return &alphavantage.GlobalQuotePayload{
		GlobalQuote: alphavantage.RawQuote{
			Symbol:           "AAPL",
			Open:             "150.00",
			High:             "155.50",
			Low:              "149.00",
			Price:            "152.25",
			Volume:           "50000000",
			LatestTradingDay: "2023-12-01",
			PreviousClose:    "151.00",
			Change:           "1.25",
			ChangePercent:    "0.83%",
		},
	}
}

// dailyPayload builds n consecutive daily candles ending 2023-12-01.
func dailyPayload(n int) *alphavantage.DailySeriesPayload {
	series := make(map[string]alphavantage.RawCandle)
	end := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		date := end.AddDate(0, 0, -i).Format("2006-01-02")
		series[date] = alphavantage.RawCandle{
			Open: "150.00", High: "155.50", Low: "149.00",
			Close: fmt.Sprintf("%.2f", 150+float64(i)*0.1), Volume: "50000000",
		}
	}
	return &alphavantage.DailySeriesPayload{TimeSeries: series}
}

func newStockService(client MarketDataClient) (*stockService, *Caches) {
	caches := NewCaches()
	svc := NewStockService(client, caches).(*stockService)
	return svc, caches
}

func TestSearch(t *testing.T) {
	client := &stubClient{
		search: &alphavantage.SearchPayload{
			BestMatches: []alphavantage.RawSearchMatch{
				{Symbol: "AAPL", Name: "Apple Inc."},
			},
		},
	}
	svc, _ := newStockService(client)

	got, err := svc.Search(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Symbol != "AAPL" || got[0].Name != "Apple Inc." {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
}

func TestSearch_CacheHit(t *testing.T) {
	client := &stubClient{search: &alphavantage.SearchPayload{}}
	svc, _ := newStockService(client)

	for i := 0; i < 3; i++ {
		// Queries differing only in case share one cache entry.
		q := []string{"aapl", "AAPL", "AaPl"}[i]
		if _, err := svc.Search(context.Background(), q); err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
	}

	if client.searchCalls != 1 {
		t.Fatalf("upstream called %d times, want 1", client.searchCalls)
	}
}

func TestSearch_RateLimited(t *testing.T) {
	client := &stubClient{
		searchErr: fmt.Errorf("%w: call frequency exceeded", alphavantage.ErrRateLimited),
	}
	svc, _ := newStockService(client)

	_, err := svc.Search(context.Background(), "AAPL")
	if apperr.KindOf(err) != apperr.KindTooManyRequests {
		t.Fatalf("kind = %s, want TOO_MANY_REQUESTS", apperr.KindOf(err))
	}
}

func TestSearch_QueryBounds(t *testing.T) {
	svc, _ := newStockService(&stubClient{})

	if _, err := svc.Search(context.Background(), ""); apperr.KindOf(err) != apperr.KindBadRequest {
		t.Fatalf("empty query should be BAD_REQUEST")
	}
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := svc.Search(context.Background(), string(long)); apperr.KindOf(err) != apperr.KindBadRequest {
		t.Fatalf("51-char query should be BAD_REQUEST")
	}
}

func TestGetQuote(t *testing.T) {
	client := &stubClient{quote: testQuotePayload()}
	svc, _ := newStockService(client)

	q, err := svc.GetQuote(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("GetQuote: %v", err)
	}
	want := models.Quote{
		Price: 152.25, Change: 1.25, PercentChange: 0.83,
		Open: 150, High: 155.5, Low: 149,
		Volume: 50000000, PrevClose: 151, LastUpdated: "2023-12-01",
	}
	if *q != want {
		t.Fatalf("quote = %+v, want %+v", *q, want)
	}
}

func TestGetQuote_CacheHit(t *testing.T) {
	client := &stubClient{quote: testQuotePayload()}
	svc, _ := newStockService(client)

	for i := 0; i < 2; i++ {
		if _, err := svc.GetQuote(context.Background(), "AAPL"); err != nil {
			t.Fatalf("GetQuote: %v", err)
		}
	}
	if client.quoteCalls != 1 {
		t.Fatalf("upstream called %d times, want 1", client.quoteCalls)
	}
}

func TestGetQuote_EmptyPayloadIsNotFound(t *testing.T) {
	client := &stubClient{quote: &alphavantage.GlobalQuotePayload{}}
	svc, _ := newStockService(client)

	_, err := svc.GetQuote(context.Background(), "NOPE")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("kind = %s, want NOT_FOUND", apperr.KindOf(err))
	}
}

func TestGetQuote_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{name: "bad request", err: fmt.Errorf("%w: invalid call", alphavantage.ErrBadRequest), want: apperr.KindBadRequest},
		{name: "rate limited", err: fmt.Errorf("%w: slow down", alphavantage.ErrRateLimited), want: apperr.KindTooManyRequests},
		{name: "premium", err: fmt.Errorf("%w: upgrade", alphavantage.ErrPremium), want: apperr.KindForbidden},
		{name: "network", err: errors.New("connection refused"), want: apperr.KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newStockService(&stubClient{quoteErr: tc.err})
			_, err := svc.GetQuote(context.Background(), "AAPL")
			if apperr.KindOf(err) != tc.want {
				t.Fatalf("kind = %s, want %s", apperr.KindOf(err), tc.want)
			}
		})
	}
}

func TestGetQuote_InvalidSymbol(t *testing.T) {
	svc, _ := newStockService(&stubClient{})
	_, err := svc.GetQuote(context.Background(), "WAY TOO LONG SYMBOL")
	if apperr.KindOf(err) != apperr.KindBadRequest {
		t.Fatalf("kind = %s, want BAD_REQUEST", apperr.KindOf(err))
	}
}

func TestGetHistorical_Intraday(t *testing.T) {
	client := &stubClient{
		intraday: &alphavantage.IntradaySeriesPayload{
			TimeSeries: map[string]alphavantage.RawCandle{
				"2023-12-01 09:30:00": {Close: "151.00"},
				"2023-12-01 09:45:00": {Close: "151.50"},
			},
		},
	}
	svc, _ := newStockService(client)
	svc.now = func() time.Time { return time.Date(2023, 12, 1, 14, 0, 0, 0, time.UTC) }

	points, err := svc.GetHistorical(context.Background(), "AAPL", models.PeriodDay)
	if err != nil {
		t.Fatalf("GetHistorical(1D): %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}
	if client.dailyCalls != 0 {
		t.Fatalf("1D must not hit the daily endpoint")
	}
}

func TestGetHistorical_WeekAndMonthShareCompactFetch(t *testing.T) {
	client := &stubClient{daily: dailyPayload(100)}
	svc, _ := newStockService(client)

	week, err := svc.GetHistorical(context.Background(), "AAPL", models.PeriodWeek)
	if err != nil {
		t.Fatalf("GetHistorical(5D): %v", err)
	}
	month, err := svc.GetHistorical(context.Background(), "AAPL", models.PeriodMonth)
	if err != nil {
		t.Fatalf("GetHistorical(1M): %v", err)
	}

	if len(week) != 5 {
		t.Fatalf("5D len = %d, want 5", len(week))
	}
	if len(month) != 22 {
		t.Fatalf("1M len = %d, want 22", len(month))
	}
	if client.dailyCalls != 1 {
		t.Fatalf("upstream called %d times, want 1 (shared compact cache)", client.dailyCalls)
	}
}

func TestGetHistorical_YearSliceStaysAscending(t *testing.T) {
	// A 40-day payload sliced for 1Y returns at most 252 points, ascending.
	client := &stubClient{daily: dailyPayload(40)}
	svc, _ := newStockService(client)

	points, err := svc.GetHistorical(context.Background(), "AAPL", models.PeriodYear)
	if err != nil {
		t.Fatalf("GetHistorical(1Y): %v", err)
	}
	if len(points) > 252 {
		t.Fatalf("len = %d, want at most 252", len(points))
	}
	if len(points) != 40 {
		t.Fatalf("len = %d, want all 40 available points", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date <= points[i-1].Date {
			t.Fatalf("series not ascending at %d", i)
		}
	}
}

func TestGetHistorical_YearSlices252(t *testing.T) {
	client := &stubClient{daily: dailyPayload(300)}
	svc, _ := newStockService(client)

	points, err := svc.GetHistorical(context.Background(), "AAPL", models.PeriodYear)
	if err != nil {
		t.Fatalf("GetHistorical(1Y): %v", err)
	}
	if len(points) != 252 {
		t.Fatalf("len = %d, want 252", len(points))
	}
}

func TestGetHistorical_EmptySeriesIsNotFound(t *testing.T) {
	client := &stubClient{daily: &alphavantage.DailySeriesPayload{}}
	svc, _ := newStockService(client)

	_, err := svc.GetHistorical(context.Background(), "AAPL", models.PeriodMonth)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("kind = %s, want NOT_FOUND", apperr.KindOf(err))
	}
}

func TestGetDailySeries_LimitsTo30Ascending(t *testing.T) {
	client := &stubClient{daily: dailyPayload(40)}
	svc, _ := newStockService(client)

	points, err := svc.GetDailySeries(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetDailySeries: %v", err)
	}
	if len(points) != 30 {
		t.Fatalf("len = %d, want 30", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date <= points[i-1].Date {
			t.Fatalf("series not ascending at %d", i)
		}
	}
}

func TestGetDetails(t *testing.T) {
	client := &stubClient{
		quote: testQuotePayload(),
		daily: dailyPayload(40),
	}
	svc, _ := newStockService(client)

	details, err := svc.GetDetails(context.Background(), "aapl", models.PeriodMonth)
	if err != nil {
		t.Fatalf("GetDetails: %v", err)
	}
	if details.Symbol != "AAPL" {
		t.Fatalf("symbol = %q, want AAPL", details.Symbol)
	}
	if details.CompanyName != "AAPL Company" {
		t.Fatalf("company = %q, want 'AAPL Company'", details.CompanyName)
	}
	if details.Quote.Price != 152.25 {
		t.Fatalf("price = %v, want 152.25", details.Quote.Price)
	}
	if len(details.HistoricalData) != 22 {
		t.Fatalf("historical len = %d, want 22", len(details.HistoricalData))
	}
	if details.LastUpdated != "2023-12-01" {
		t.Fatalf("lastUpdated = %q", details.LastUpdated)
	}
}

func TestGetDetails_QuoteFailureFailsCall(t *testing.T) {
	client := &stubClient{
		quoteErr: errors.New("network down"),
		daily:    dailyPayload(40),
	}
	svc, _ := newStockService(client)

	_, err := svc.GetDetails(context.Background(), "AAPL", models.PeriodMonth)
	if apperr.KindOf(err) != apperr.KindInternal {
		t.Fatalf("kind = %s, want INTERNAL", apperr.KindOf(err))
	}
}

func TestGetDetails_HistoricalFailureDegrades(t *testing.T) {
	client := &stubClient{
		quote:    testQuotePayload(),
		dailyErr: errors.New("network down"),
	}
	svc, _ := newStockService(client)

	details, err := svc.GetDetails(context.Background(), "AAPL", models.PeriodMonth)
	if err != nil {
		t.Fatalf("GetDetails should degrade, got %v", err)
	}
	if details.HistoricalData == nil || len(details.HistoricalData) != 0 {
		t.Fatalf("historical should be empty non-nil, got %#v", details.HistoricalData)
	}
	if details.Quote.Price != 152.25 {
		t.Fatalf("quote lost in degraded result: %+v", details.Quote)
	}
}

func TestCachesAreIsolatedPerService(t *testing.T) {
	clientA := &stubClient{quote: testQuotePayload()}
	clientB := &stubClient{quote: testQuotePayload()}
	svcA, _ := newStockService(clientA)
	svcB, _ := newStockService(clientB)

	if _, err := svcA.GetQuote(context.Background(), "AAPL"); err != nil {
		t.Fatalf("GetQuote A: %v", err)
	}
	if _, err := svcB.GetQuote(context.Background(), "AAPL"); err != nil {
		t.Fatalf("GetQuote B: %v", err)
	}

	if clientB.quoteCalls != 1 {
		t.Fatalf("service B should miss its own cache, calls = %d", clientB.quoteCalls)
	}
}

func TestCachesSweep(t *testing.T) {
	caches := NewCaches()
	caches.Quotes.Set("AAPL-quote", models.Quote{Price: 1}, -time.Minute) // already expired
	caches.Series.Set("AAPL-compact", nil, time.Hour)

	caches.Sweep()

	if caches.Quotes.Size() != 0 {
		t.Fatalf("expired quote survived sweep")
	}
	if caches.Series.Size() != 1 {
		t.Fatalf("live series entry removed by sweep")
	}
}
