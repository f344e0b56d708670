package dto

// WatchlistCheckResponse is the body of GET /api/v1/watchlist/{symbol}.
//
// swagger:model WatchlistCheckResponse
type WatchlistCheckResponse struct {
	Symbol      string `json:"symbol" example:"AAPL"`
	InWatchlist bool   `json:"in_watchlist" example:"true"`
}

// AddWatchlistRequest is the body of POST /api/v1/watchlist.
//
// swagger:model AddWatchlistRequest
type AddWatchlistRequest struct {
	Symbol string `json:"symbol" binding:"required" example:"AAPL"`
}

// CreateUserRequest is the body of POST /api/v1/users. ID is optional; when
// omitted the server generates one.
//
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	ID    string `json:"id,omitempty" example:"b3e1f0a2-1c2d-4e5f-8a9b-0c1d2e3f4a5b"`
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
	Name  string `json:"name" binding:"required" example:"Jane Doe"`
}
