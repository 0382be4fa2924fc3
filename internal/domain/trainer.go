package domain

import (
	"context"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Trainer is a submitted, moderated listing. One profile per user;
// re-registration overwrites the previous row.
type Trainer struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username"`
	Direction  string    `json:"direction"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Experience string    `json:"experience"`
	About      string    `json:"about"`
	PhotoID    string    `json:"photo_id"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrainerWithLikes decorates a profile with its like count for the admin
// browsing views.
type TrainerWithLikes struct {
	Trainer
	LikeCount int `json:"like_count"`
}

type TrainerRepository interface {
	// Upsert creates the profile or overwrites the existing row for the
	// same user, keeping the surrogate id and created_at. Sets trainer.ID.
	Upsert(ctx context.Context, trainer *Trainer) error
	GetByID(ctx context.Context, id int64) (*Trainer, error)
	GetByUserID(ctx context.Context, userID int64) (*Trainer, error)
	// ListPending returns profiles awaiting moderation, oldest first.
	ListPending(ctx context.Context) ([]Trainer, error)
	// ListApprovedByDirection returns approved profiles in a direction,
	// newest first.
	ListApprovedByDirection(ctx context.Context, direction string) ([]Trainer, error)
	// ListApproved returns all approved profiles ordered by direction,
	// then newest first.
	ListApproved(ctx context.Context) ([]Trainer, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	// Delete removes the profile and all of its likes in one transaction.
	Delete(ctx context.Context, id int64) error
}
