package domain

import (
	"context"
	"time"
)

// Like is a client's interest in a trainer profile. The client username is
// a denormalized snapshot taken when the like was placed.
type Like struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"client_id"`
	ClientUsername string    `json:"client_username"`
	TrainerID      int64     `json:"trainer_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type LikeRepository interface {
	// Create inserts the like. A repeat (client, trainer) pair returns
	// ErrDuplicate.
	Create(ctx context.Context, like *Like) error
	Exists(ctx context.Context, clientID, trainerID int64) (bool, error)
	// ListByTrainer returns a trainer's likes, newest first.
	ListByTrainer(ctx context.Context, trainerID int64) ([]Like, error)
	// ListByClient returns everything the client has liked, newest first.
	ListByClient(ctx context.Context, clientID int64) ([]Like, error)
	CountByTrainer(ctx context.Context, trainerID int64) (int, error)
}
