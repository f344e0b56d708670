package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dhargitai/stock-search-app/internal/alphavantage"
	"github.com/dhargitai/stock-search-app/internal/cache"
	"github.com/dhargitai/stock-search-app/internal/domain/apperr"
	"github.com/dhargitai/stock-search-app/internal/domain/models"
	"github.com/dhargitai/stock-search-app/internal/logger"
)

// Cache TTLs per data variant. Intraday data changes fastest and is cheapest
// to refetch; a full year of history is expensive to fetch and changes once
// a day, so it is cached longest.
const (
	searchTTL   = 30 * time.Minute
	quoteTTL    = 5 * time.Minute
	intradayTTL = 15 * time.Minute
	compactTTL  = time.Hour
	fullTTL     = 12 * time.Hour
	dailyTTL    = time.Hour
)

// Tail lengths per period: 5 trading days for a week, ~22 for a month,
// ~252 for a year, 30 for the legacy simple history endpoint.
const (
	weekPoints       = 5
	monthPoints      = 22
	yearPoints       = 252
	legacyDailyLimit = 30
)

// MarketDataClient is the slice of the Alpha Vantage client the stock
// service consumes; tests substitute a stub.
type MarketDataClient interface {
	GlobalQuote(ctx context.Context, symbol string) (*alphavantage.GlobalQuotePayload, error)
	DailySeries(ctx context.Context, symbol string, size alphavantage.OutputSize) (*alphavantage.DailySeriesPayload, error)
	IntradaySeries(ctx context.Context, symbol string) (*alphavantage.IntradaySeriesPayload, error)
	SymbolSearch(ctx context.Context, keywords string) (*alphavantage.SearchPayload, error)
}

// Caches bundles the typed TTL caches the stock service reads through.
// Constructed once at startup and injected, so tests get isolated instances
// and the composition root owns the sweep schedule.
type Caches struct {
	Search *cache.Cache[[]models.SearchSuggestion]
	Quotes *cache.Cache[models.Quote]
	Series *cache.Cache[[]models.ChartDataPoint]
}

// NewCaches creates an empty cache set.
func NewCaches() *Caches {
	return &Caches{
		Search: cache.New[[]models.SearchSuggestion](),
		Quotes: cache.New[models.Quote](),
		Series: cache.New[[]models.ChartDataPoint](),
	}
}

// Sweep removes expired entries from every cache. Wired to a fixed-interval
// job by the composition root; Get self-evicts, so this is housekeeping.
func (c *Caches) Sweep() {
	c.Search.Cleanup()
	c.Quotes.Cleanup()
	c.Series.Cleanup()
}

// StockService exposes the stock-data operations the API serves: symbol
// search, quotes, historical chart series and the composite details view.
//
// This layer owns endpoint selection per period, cache-first reads, and the
// classification of upstream failure signals into the domain error
// taxonomy. It is the only layer that raises typed errors for stock data.
type StockService interface {
	Search(ctx context.Context, query string) ([]models.SearchSuggestion, error)
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
	GetHistorical(ctx context.Context, symbol string, period models.Period) ([]models.ChartDataPoint, error)
	GetDailySeries(ctx context.Context, symbol string) ([]models.ChartDataPoint, error)
	GetDetails(ctx context.Context, symbol string, period models.Period) (*models.StockDetails, error)
}

type stockService struct {
	client MarketDataClient
	caches *Caches
	now    func() time.Time
}

// NewStockService builds the stock service around an upstream client and an
// injected cache set.
func NewStockService(client MarketDataClient, caches *Caches) StockService {
	return &stockService{
		client: client,
		caches: caches,
		now:    time.Now,
	}
}

// Search looks up ticker suggestions for a free-text query. Results are
// cached for 30 minutes keyed by the lowercased query.
func (s *stockService) Search(ctx context.Context, query string) ([]models.SearchSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" || len(query) > 50 {
		return nil, apperr.New(apperr.KindBadRequest, "query must be between 1 and 50 characters")
	}

	key := "search-" + strings.ToLower(query)
	if cached, ok := s.caches.Search.Get(key); ok {
		return cached, nil
	}

	payload, err := s.client.SymbolSearch(ctx, query)
	if err != nil {
		return nil, mapUpstreamError(err, "failed to search for stocks")
	}

	suggestions := alphavantage.NormalizeSearch(payload)
	s.caches.Search.Set(key, suggestions, searchTTL)
	return suggestions, nil
}

// GetQuote returns the current quote for a symbol, cached for 5 minutes.
// An empty upstream payload means the symbol does not exist.
func (s *stockService) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	sym, err := parseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	key := sym + "-quote"
	if cached, ok := s.caches.Quotes.Get(key); ok {
		return &cached, nil
	}

	payload, err := s.client.GlobalQuote(ctx, sym)
	if err != nil {
		return nil, mapUpstreamError(err, "failed to fetch stock quote")
	}
	if payload.Empty() {
		return nil, apperr.New(apperr.KindNotFound, fmt.Sprintf("no quote data found for symbol %s", sym))
	}

	quote := alphavantage.NormalizeQuote(payload)
	s.caches.Quotes.Set(key, quote, quoteTTL)
	return &quote, nil
}

// GetHistorical returns the chart series for a symbol over the requested
// period. The period picks both the upstream endpoint and the slice length:
// 1D reads intraday candles, 5D and 1M share one compact daily fetch, and
// 1Y reads the full daily history.
func (s *stockService) GetHistorical(ctx context.Context, symbol string, period models.Period) ([]models.ChartDataPoint, error) {
	sym, err := parseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	switch period {
	case models.PeriodDay:
		return s.intradaySeries(ctx, sym)
	case models.PeriodWeek:
		points, err := s.dailySeries(ctx, sym, alphavantage.OutputCompact, "-compact", compactTTL)
		if err != nil {
			return nil, err
		}
		return tail(points, weekPoints), nil
	case models.PeriodMonth:
		points, err := s.dailySeries(ctx, sym, alphavantage.OutputCompact, "-compact", compactTTL)
		if err != nil {
			return nil, err
		}
		return tail(points, monthPoints), nil
	case models.PeriodYear:
		points, err := s.dailySeries(ctx, sym, alphavantage.OutputFull, "-full", fullTTL)
		if err != nil {
			return nil, err
		}
		return tail(points, yearPoints), nil
	default:
		return nil, apperr.New(apperr.KindBadRequest, fmt.Sprintf("invalid period %q", period))
	}
}

// GetDailySeries is the legacy simple history endpoint: the last 30 daily
// candles, ascending.
func (s *stockService) GetDailySeries(ctx context.Context, symbol string) ([]models.ChartDataPoint, error) {
	sym, err := parseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	key := sym + "-daily"
	if cached, ok := s.caches.Series.Get(key); ok {
		return tail(cached, legacyDailyLimit), nil
	}

	payload, err := s.client.DailySeries(ctx, sym, alphavantage.OutputCompact)
	if err != nil {
		return nil, mapUpstreamError(err, "failed to fetch historical data")
	}
	if payload.Empty() {
		return nil, apperr.New(apperr.KindNotFound, fmt.Sprintf("no historical data found for symbol %s", sym))
	}

	points := alphavantage.NormalizeDailySeries(payload)
	s.caches.Series.Set(key, points, dailyTTL)
	return tail(points, legacyDailyLimit), nil
}

// GetDetails assembles the composite detail-page payload. The quote fetch
// and the historical fetch run concurrently; the quote is mandatory, while
// a failed or empty historical fetch degrades to an empty series (a chart
// with no data is acceptable, a page with no price is not).
func (s *stockService) GetDetails(ctx context.Context, symbol string, period models.Period) (*models.StockDetails, error) {
	sym, err := parseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	var (
		quote      *models.Quote
		historical = make([]models.ChartDataPoint, 0)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.GetQuote(gctx, sym)
		if err != nil {
			return err
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		points, err := s.GetHistorical(gctx, sym, period)
		if err != nil {
			// Degraded result: log and serve an empty chart.
			logger.L().Warn().Err(err).Str("symbol", sym).Str("period", string(period)).
				Msg("historical fetch failed, serving empty series")
			return nil
		}
		historical = points
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lastUpdated := quote.LastUpdated
	if lastUpdated == "" {
		lastUpdated = s.now().Format("2006-01-02")
	}

	return &models.StockDetails{
		Symbol:         sym,
		CompanyName:    fmt.Sprintf("%s Company", sym),
		Quote:          *quote,
		HistoricalData: historical,
		LastUpdated:    lastUpdated,
	}, nil
}

// intradaySeries fetches and caches today's intraday candles for 1D charts.
func (s *stockService) intradaySeries(ctx context.Context, sym string) ([]models.ChartDataPoint, error) {
	key := sym + "-intraday"
	if cached, ok := s.caches.Series.Get(key); ok {
		return cached, nil
	}

	payload, err := s.client.IntradaySeries(ctx, sym)
	if err != nil {
		return nil, mapUpstreamError(err, "failed to fetch intraday data")
	}
	if payload.Empty() {
		return nil, apperr.New(apperr.KindNotFound, fmt.Sprintf("no intraday data found for symbol %s", sym))
	}

	points := alphavantage.NormalizeIntradaySeries(payload, s.now())
	s.caches.Series.Set(key, points, intradayTTL)
	return points, nil
}

// dailySeries fetches and caches a daily series variant. 5D and 1M share
// the "-compact" key, so one upstream call serves both periods.
func (s *stockService) dailySeries(ctx context.Context, sym string, size alphavantage.OutputSize, keySuffix string, ttl time.Duration) ([]models.ChartDataPoint, error) {
	key := sym + keySuffix
	if cached, ok := s.caches.Series.Get(key); ok {
		return cached, nil
	}

	payload, err := s.client.DailySeries(ctx, sym, size)
	if err != nil {
		return nil, mapUpstreamError(err, "failed to fetch historical data")
	}
	if payload.Empty() {
		return nil, apperr.New(apperr.KindNotFound, fmt.Sprintf("no historical data found for symbol %s", sym))
	}

	points := alphavantage.NormalizeDailySeries(payload)
	s.caches.Series.Set(key, points, ttl)
	return points, nil
}

// tail returns the last n points of an ascending series without copying.
func tail(points []models.ChartDataPoint, n int) []models.ChartDataPoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// parseSymbol validates and canonicalizes a raw symbol, mapping failures to
// the domain taxonomy. Applied exactly once, at this boundary.
func parseSymbol(symbol string) (string, error) {
	sym, err := models.ParseSymbol(symbol)
	if err != nil {
		return "", apperr.Wrap(apperr.KindBadRequest, err.Error(), err)
	}
	return sym, nil
}

// mapUpstreamError classifies a client error into the domain taxonomy.
// Alpha Vantage reports rate limits and tier restrictions inside 200-OK
// bodies; the client surfaces them as sentinel errors, matched here.
func mapUpstreamError(err error, fallback string) error {
	switch {
	case errors.Is(err, alphavantage.ErrBadRequest):
		return apperr.Wrap(apperr.KindBadRequest, "upstream rejected the request", err)
	case errors.Is(err, alphavantage.ErrRateLimited):
		return apperr.Wrap(apperr.KindTooManyRequests, "API rate limit exceeded, please try again later", err)
	case errors.Is(err, alphavantage.ErrPremium):
		return apperr.Wrap(apperr.KindForbidden, "this data requires a premium API subscription", err)
	default:
		return apperr.Wrap(apperr.KindInternal, fallback, err)
	}
}
