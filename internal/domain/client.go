package domain

import "context"

// Client extends a user with a consumable like balance. Created lazily on
// role selection or on the first balance credit.
type Client struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	LikesCount int    `json:"likes_count"`
}

type ClientRepository interface {
	// Create inserts or resets the client row with the given balance.
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, userID int64) (*Client, error)
	GetByUsername(ctx context.Context, username string) (*Client, error)
	// SpendLike atomically subtracts one like if the balance allows it.
	// Returns false without error when the balance is insufficient.
	SpendLike(ctx context.Context, userID int64) (bool, error)
	// CreditLikes adds amount to the balance, creating the client row if
	// it does not exist yet.
	CreditLikes(ctx context.Context, userID int64, amount int) error
}
