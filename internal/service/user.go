package service

import (
	"context"
	"errors"

	"github.com/dhargitai/stock-search-app/internal/domain/apperr"
	"github.com/dhargitai/stock-search-app/internal/domain/models"
	"github.com/dhargitai/stock-search-app/internal/storage"
)

// UserService exposes the user profile operations consumed by the front
// end. User creation normally happens through the external auth provider;
// Create exists for provisioning and local development.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*models.UserProfile, error)
	Create(ctx context.Context, id, email, name string) (*models.User, error)
}

type userService struct {
	repo storage.Repository
}

// NewUserService builds the user service over a repository.
func NewUserService(repo storage.Repository) UserService {
	return &userService{repo: repo}
}

// GetProfile returns a user together with their watchlist items.
func (s *userService) GetProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch user profile", err)
	}

	items, err := s.repo.GetUserWatchlist(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch user watchlist", err)
	}

	return &models.UserProfile{User: *user, WatchlistItems: items}, nil
}

// Create stores a new user. A duplicate email surfaces as CONFLICT.
func (s *userService) Create(ctx context.Context, id, email, name string) (*models.User, error) {
	user, err := s.repo.InsertUser(ctx, id, email, name)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, apperr.New(apperr.KindConflict, "user already exists")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create user", err)
	}
	return user, nil
}
