package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lavrov08/trainers-tinder/config"
	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/pkg/apperror"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

// rejectionNotice lists the generic reasons sent to a rejected trainer.
const rejectionNotice = "Your profile was rejected.\n\nPossible reasons:\n- Incorrect information\n- Contact details in the description\n- Platform rules violation\n\nYou can submit a new profile via /start"

// CreditResult reports a completed balance credit.
type CreditResult struct {
	Client *domain.Client
	Added  int
}

// ModerationUsecase is the admin side: reviewing pending profiles,
// browsing and deleting approved ones, and crediting like balances. Every
// operation is gated on the static admin set.
type ModerationUsecase struct {
	trainers domain.TrainerRepository
	likes    domain.LikeRepository
	clients  domain.ClientRepository
	notifier domain.Notifier
	cfg      *config.Config
}

func NewModerationUsecase(
	trainers domain.TrainerRepository,
	likes domain.LikeRepository,
	clients domain.ClientRepository,
	notifier domain.Notifier,
	cfg *config.Config,
) *ModerationUsecase {
	return &ModerationUsecase{
		trainers: trainers,
		likes:    likes,
		clients:  clients,
		notifier: notifier,
		cfg:      cfg,
	}
}

func (u *ModerationUsecase) requireAdmin(adminID int64) error {
	if !u.cfg.IsAdmin(adminID) {
		return apperror.Forbidden("You do not have access to this command.")
	}
	return nil
}

// ListPending returns profiles awaiting review, oldest first.
func (u *ModerationUsecase) ListPending(ctx context.Context, adminID int64) ([]domain.Trainer, error) {
	if err := u.requireAdmin(adminID); err != nil {
		return nil, err
	}
	trainers, err := u.trainers.ListPending(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return trainers, nil
}

// Approve transitions the profile to approved and notifies its owner.
func (u *ModerationUsecase) Approve(ctx context.Context, adminID, trainerID int64) (*domain.Trainer, error) {
	return u.decide(ctx, adminID, trainerID, domain.StatusApproved,
		"Your profile was approved!\n\nClients can now see it. You will be notified whenever someone likes it.")
}

// Reject transitions the profile to rejected and notifies its owner with
// the generic reasons list.
func (u *ModerationUsecase) Reject(ctx context.Context, adminID, trainerID int64) (*domain.Trainer, error) {
	return u.decide(ctx, adminID, trainerID, domain.StatusRejected, rejectionNotice)
}

func (u *ModerationUsecase) decide(ctx context.Context, adminID, trainerID int64, status domain.Status, notice string) (*domain.Trainer, error) {
	if err := u.requireAdmin(adminID); err != nil {
		return nil, err
	}
	trainer, err := u.trainers.GetByID(ctx, trainerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Profile not found.")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.trainers.UpdateStatus(ctx, trainerID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	trainer.Status = status

	if err := u.notifier.SendText(ctx, trainer.UserID, notice); err != nil {
		logger.Log.Warn("moderation decision notification failed",
			"trainer_user_id", trainer.UserID, "status", status, "error", err)
	}
	return trainer, nil
}

// DirectionOverview lists a direction's approved profiles with their like
// counts.
func (u *ModerationUsecase) DirectionOverview(ctx context.Context, adminID int64, direction string) ([]domain.TrainerWithLikes, error) {
	if err := u.requireAdmin(adminID); err != nil {
		return nil, err
	}
	trainers, err := u.trainers.ListApprovedByDirection(ctx, direction)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.withLikeCounts(ctx, trainers)
}

// Overview lists all approved profiles grouped by direction, each with its
// like count.
func (u *ModerationUsecase) Overview(ctx context.Context, adminID int64) ([]domain.TrainerWithLikes, error) {
	if err := u.requireAdmin(adminID); err != nil {
		return nil, err
	}
	trainers, err := u.trainers.ListApproved(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.withLikeCounts(ctx, trainers)
}

func (u *ModerationUsecase) withLikeCounts(ctx context.Context, trainers []domain.Trainer) ([]domain.TrainerWithLikes, error) {
	out := make([]domain.TrainerWithLikes, 0, len(trainers))
	for _, t := range trainers {
		count, err := u.likes.CountByTrainer(ctx, t.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		out = append(out, domain.TrainerWithLikes{Trainer: t, LikeCount: count})
	}
	return out, nil
}

// Detail returns a profile with its full like list for the drill-in view.
func (u *ModerationUsecase) Detail(ctx context.Context, adminID, trainerID int64) (*domain.Trainer, []domain.Like, error) {
	if err := u.requireAdmin(adminID); err != nil {
		return nil, nil, err
	}
	trainer, err := u.trainers.GetByID(ctx, trainerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, apperror.NotFound("Profile not found.")
	}
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	likes, err := u.likes.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return trainer, likes, nil
}

// Delete removes the profile and all of its likes, notifying the owner.
func (u *ModerationUsecase) Delete(ctx context.Context, adminID, trainerID int64) (*domain.Trainer, error) {
	if err := u.requireAdmin(adminID); err != nil {
		return nil, err
	}
	trainer, err := u.trainers.GetByID(ctx, trainerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Profile not found.")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.notifier.SendText(ctx, trainer.UserID,
		"Your profile was removed by an administrator.\n\nYou can submit a new one via /start"); err != nil {
		logger.Log.Warn("deletion notification failed",
			"trainer_user_id", trainer.UserID, "error", err)
	}

	if err := u.trainers.Delete(ctx, trainerID); err != nil {
		return nil, apperror.Internal(err)
	}
	return trainer, nil
}

// CreditLikes resolves a client by @handle or numeric id and adds a
// positive amount to their balance, echoing the result to the admin and
// notifying the client. Both the guided flow and the single-shot command
// end up here.
func (u *ModerationUsecase) CreditLikes(ctx context.Context, adminID int64, target string, amount int) (*CreditResult, error) {
	if err := u.requireAdmin(adminID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, apperror.BadRequest("The amount must be a positive integer.")
	}

	client, err := u.resolveClient(ctx, target)
	if err != nil {
		return nil, err
	}

	if err := u.clients.CreditLikes(ctx, client.UserID, amount); err != nil {
		return nil, apperror.Internal(err)
	}
	updated, err := u.clients.GetByID(ctx, client.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	notice := fmt.Sprintf("Your balance was topped up: +%d likes.\nCurrent balance: %d likes.", amount, updated.LikesCount)
	if err := u.notifier.SendText(ctx, updated.UserID, notice); err != nil {
		logger.Log.Warn("credit notification failed",
			"client_id", updated.UserID, "error", err)
	}

	return &CreditResult{Client: updated, Added: amount}, nil
}

func (u *ModerationUsecase) resolveClient(ctx context.Context, target string) (*domain.Client, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, apperror.BadRequest("Specify the client as @username or a numeric id.")
	}

	var (
		client *domain.Client
		err    error
	)
	if id, convErr := strconv.ParseInt(target, 10, 64); convErr == nil {
		client, err = u.clients.GetByID(ctx, id)
	} else {
		client, err = u.clients.GetByUsername(ctx, strings.TrimPrefix(target, "@"))
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Client not found: " + target)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return client, nil
}
