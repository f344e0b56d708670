package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dhargitai/stock-search-app/internal/domain/models"
)

// Sentinel errors for the storage conditions the service layer turns into
// domain errors. Everything else that comes out of this package is an
// unexpected persistence failure.
var (
	// ErrNotFound marks a lookup or delete that matched no row.
	ErrNotFound = errors.New("storage: not found")
	// ErrDuplicate marks a unique-constraint violation.
	ErrDuplicate = errors.New("storage: duplicate")
)

// uniqueViolation is the Postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

// Repository defines the contract for user, watchlist and session
// persistence.
type Repository interface {
	ListWatchlist(ctx context.Context, userID string) ([]models.WatchlistItem, error)
	InsertWatchlistItem(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error)
	HasWatchlistItem(ctx context.Context, userID, symbol string) (bool, error)
	DeleteWatchlistItem(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error)

	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserWatchlist(ctx context.Context, userID string) ([]models.WatchlistItem, error)
	InsertUser(ctx context.Context, id, email, name string) (*models.User, error)

	GetSessionUser(ctx context.Context, token string) (string, error)
}

type repository struct {
	db *sql.DB
}

// NewRepository wraps an open database handle.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ListWatchlist returns every watchlist item owned by userID, newest first.
func (r *repository) ListWatchlist(ctx context.Context, userID string) ([]models.WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, symbol, user_id, created_at
		FROM watchlist_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]models.WatchlistItem, 0)
	for rows.Next() {
		var item models.WatchlistItem
		if err := rows.Scan(&item.ID, &item.Symbol, &item.UserID, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetUserWatchlist is ListWatchlist under a name the profile endpoint reads
// better with.
func (r *repository) GetUserWatchlist(ctx context.Context, userID string) ([]models.WatchlistItem, error) {
	return r.ListWatchlist(ctx, userID)
}

// InsertWatchlistItem creates a watchlist entry. The (user_id, symbol)
// unique constraint is the single source of truth for duplicates; a
// concurrent double-add cannot slip past it the way check-then-insert can.
func (r *repository) InsertWatchlistItem(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error) {
	item := models.WatchlistItem{
		ID:     uuid.NewString(),
		Symbol: symbol,
		UserID: userID,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO watchlist_items (id, symbol, user_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, item.ID, item.Symbol, item.UserID).Scan(&item.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &item, nil
}

// HasWatchlistItem reports whether userID already watches symbol.
func (r *repository) HasWatchlistItem(ctx context.Context, userID, symbol string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM watchlist_items WHERE user_id = $1 AND symbol = $2)
	`, userID, symbol).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteWatchlistItem removes the (userID, symbol) entry and returns the
// deleted row, or ErrNotFound when no such entry exists.
func (r *repository) DeleteWatchlistItem(ctx context.Context, userID, symbol string) (*models.WatchlistItem, error) {
	var item models.WatchlistItem
	err := r.db.QueryRowContext(ctx, `
		DELETE FROM watchlist_items
		WHERE user_id = $1 AND symbol = $2
		RETURNING id, symbol, user_id, created_at
	`, userID, symbol).Scan(&item.ID, &item.Symbol, &item.UserID, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetUserByID fetches a user, or ErrNotFound.
func (r *repository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	var email sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.Email = email.String
	return &u, nil
}

// InsertUser creates a user. A blank id is replaced with a fresh UUID, so
// callers integrating with the external identity provider can supply its
// ids while local creation still works.
func (r *repository) InsertUser(ctx context.Context, id, email, name string) (*models.User, error) {
	if id == "" {
		id = uuid.NewString()
	}
	u := models.User{ID: id, Email: email, Name: name}

	// Email is unique but nullable; store NULL rather than "" so users
	// without one never collide on the constraint.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, u.ID, sql.NullString{String: email, Valid: email != ""}, u.Name).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &u, nil
}

// GetSessionUser resolves a bearer session token to its user id. Expired
// and unknown tokens both come back as ErrNotFound. The sessions table is
// written by the external auth provider; this service only reads it.
func (r *repository) GetSessionUser(ctx context.Context, token string) (string, error) {
	var userID string
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id FROM sessions
		WHERE token = $1 AND expires_at > $2
	`, token, time.Now()).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return userID, nil
}
