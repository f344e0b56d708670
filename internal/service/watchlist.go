package service

import (
	"context"
	"errors"

	"github.com/dhargitai/stock-search-app/internal/domain/apperr"
	"github.com/dhargitai/stock-search-app/internal/domain/models"
	"github.com/dhargitai/stock-search-app/internal/storage"
)

// WatchlistService is authenticated CRUD over a user's watched symbols.
// "Already present" and "not present" are domain errors here, never raw
// database errors; anything unexpected from storage wraps to INTERNAL.
type WatchlistService interface {
	List(ctx context.Context, userID string) ([]models.WatchlistItem, error)
	Add(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error)
	Check(ctx context.Context, userID, symbol string) (bool, error)
	Remove(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error)
}

type watchlistService struct {
	repo storage.Repository
}

// NewWatchlistService builds the watchlist service over a repository.
func NewWatchlistService(repo storage.Repository) WatchlistService {
	return &watchlistService{repo: repo}
}

// List returns the caller's watchlist, newest first.
func (s *watchlistService) List(ctx context.Context, userID string) ([]models.WatchlistItem, error) {
	items, err := s.repo.ListWatchlist(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch watchlist items", err)
	}
	return items, nil
}

// Add pins a symbol to the caller's watchlist. The symbol is canonicalized
// to uppercase before the write, so add("aapl") and check("AAPL") refer to
// the same row.
func (s *watchlistService) Add(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error) {
	sym, err := parseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.InsertWatchlistItem(ctx, userID, sym)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, apperr.New(apperr.KindConflict, "stock is already in watchlist")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to add item to watchlist", err)
	}
	return item, nil
}

// Check reports whether the caller already watches the symbol.
func (s *watchlistService) Check(ctx context.Context, userID, symbol string) (bool, error) {
	sym, err := parseSymbol(symbol)
	if err != nil {
		return false, err
	}

	exists, err := s.repo.HasWatchlistItem(ctx, userID, sym)
	if err != nil {
		return false, apperr.Wrap(apperr.KindInternal, "failed to check watchlist status", err)
	}
	return exists, nil
}

// Remove deletes a symbol from the caller's watchlist and returns the
// removed item.
func (s *watchlistService) Remove(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error) {
	sym, err := parseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.DeleteWatchlistItem(ctx, userID, sym)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "stock not found in watchlist")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to remove item from watchlist", err)
	}
	return item, nil
}
