package models

import "time"

// WatchlistItem is one symbol pinned to a user's watchlist.
// A symbol appears at most once per user; the pair (UserID, Symbol) is
// unique and the symbol is stored uppercase.
//
// swagger:model WatchlistItem
type WatchlistItem struct {
	ID        string    `json:"id" example:"7f9c24e5-2f8a-4b1d-9c3e-8d5f6a7b8c9d"`
	Symbol    string    `json:"symbol" example:"AAPL"`
	UserID    string    `json:"user_id" example:"b3e1f0a2-1c2d-4e5f-8a9b-0c1d2e3f4a5b"`
	CreatedAt time.Time `json:"created_at"`
}

// User owns zero or more watchlist items. Deleting a user cascades to their
// items at the database level.
//
// swagger:model User
type User struct {
	ID        string    `json:"id" example:"b3e1f0a2-1c2d-4e5f-8a9b-0c1d2e3f4a5b"`
	Email     string    `json:"email" example:"jane@example.com"`
	Name      string    `json:"name" example:"Jane Doe"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile is a user together with their watchlist, as returned by the
// profile endpoint.
//
// swagger:model UserProfile
type UserProfile struct {
	User
	WatchlistItems []WatchlistItem `json:"watchlist_items"`
}
