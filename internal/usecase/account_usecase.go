package usecase

import (
	"context"
	"errors"

	"github.com/lavrov08/trainers-tinder/internal/domain"
)

// AccountUsecase tracks who has talked to the bot and which role they
// picked. Clients get their starting like balance here, lazily.
type AccountUsecase struct {
	users        domain.UserRepository
	clients      domain.ClientRepository
	initialLikes int
}

func NewAccountUsecase(users domain.UserRepository, clients domain.ClientRepository, initialLikes int) *AccountUsecase {
	return &AccountUsecase{
		users:        users,
		clients:      clients,
		initialLikes: initialLikes,
	}
}

// EnsureUser records the user on first contact and refreshes the username
// on every later one. The role is left untouched.
func (u *AccountUsecase) EnsureUser(ctx context.Context, userID int64, username string) error {
	return u.users.Upsert(ctx, &domain.User{ID: userID, Username: username})
}

// AssignClientRole marks the user as a client and creates the balance row
// if it does not exist yet. An existing balance is never reset.
func (u *AccountUsecase) AssignClientRole(ctx context.Context, userID int64, username string) error {
	if err := u.users.Upsert(ctx, &domain.User{ID: userID, Username: username, Role: domain.RoleClient}); err != nil {
		return err
	}
	_, err := u.clients.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return u.clients.Create(ctx, &domain.Client{
			UserID:     userID,
			Username:   username,
			LikesCount: u.initialLikes,
		})
	}
	return err
}

// AssignTrainerRole marks the user as a trainer.
func (u *AccountUsecase) AssignTrainerRole(ctx context.Context, userID int64, username string) error {
	return u.users.Upsert(ctx, &domain.User{ID: userID, Username: username, Role: domain.RoleTrainer})
}
