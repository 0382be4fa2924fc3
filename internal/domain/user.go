package domain

import (
	"context"
	"errors"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

type Role string

const (
	RoleNone    Role = ""
	RoleClient  Role = "client"
	RoleTrainer Role = "trainer"
)

// User is any account that has talked to the bot. The ID is the
// platform-assigned chat/user identifier. Users are never deleted.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type UserRepository interface {
	// Upsert records the user, refreshing the username. An already
	// assigned role survives an upsert with an empty role.
	Upsert(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateRole(ctx context.Context, id int64, role Role) error
}
