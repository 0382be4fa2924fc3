package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lavrov08/trainers-tinder/config"
	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/internal/session"
	"github.com/lavrov08/trainers-tinder/pkg/apperror"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

// CardView is what the client currently sees: the profile at the cursor
// plus its position in the cyclic list.
type CardView struct {
	Trainer      *domain.Trainer
	Index        int
	Total        int
	AlreadyLiked bool
	Direction    string
}

type LikeOutcome int

const (
	LikeOK LikeOutcome = iota
	LikeDuplicate
	LikeNoBalance
)

type LikeResult struct {
	Outcome LikeOutcome
	Trainer *domain.Trainer
}

// LikedList is one page of everything the client has liked, independent of
// direction.
type LikedList struct {
	Entries    []domain.Trainer
	Page       int
	TotalPages int
	Total      int
}

// BrowseUsecase is the client side: cyclic pagination over approved
// profiles, the like flow with its balance discipline, and refill
// requests.
type BrowseUsecase struct {
	trainers domain.TrainerRepository
	likes    domain.LikeRepository
	clients  domain.ClientRepository
	sessions *session.Store
	notifier domain.Notifier
	cfg      *config.Config
}

func NewBrowseUsecase(
	trainers domain.TrainerRepository,
	likes domain.LikeRepository,
	clients domain.ClientRepository,
	sessions *session.Store,
	notifier domain.Notifier,
	cfg *config.Config,
) *BrowseUsecase {
	return &BrowseUsecase{
		trainers: trainers,
		likes:    likes,
		clients:  clients,
		sessions: sessions,
		notifier: notifier,
		cfg:      cfg,
	}
}

// SelectDirection snapshots the approved profiles of a direction into the
// session and shows the first card.
func (u *BrowseUsecase) SelectDirection(ctx context.Context, userID int64, direction string) (*CardView, error) {
	if !u.cfg.HasDirection(direction) {
		return nil, apperror.BadRequest("Unknown direction. Pick one from the buttons.")
	}
	trainers, err := u.trainers.ListApprovedByDirection(ctx, direction)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(trainers) == 0 {
		return nil, apperror.NotFound(fmt.Sprintf("No trainers in %s yet. Try another direction:", direction))
	}

	ids := make([]int64, len(trainers))
	for i, t := range trainers {
		ids[i] = t.ID
	}
	sess := u.sessions.Get(userID)
	sess.Browse = &session.Browse{Direction: direction, IDs: ids}

	return u.current(ctx, userID, sess.Browse)
}

// Current re-renders the card at the cursor.
func (u *BrowseUsecase) Current(ctx context.Context, userID int64) (*CardView, error) {
	browse, err := u.browseState(userID)
	if err != nil {
		return nil, err
	}
	return u.current(ctx, userID, browse)
}

// Next advances the cursor with wraparound.
func (u *BrowseUsecase) Next(ctx context.Context, userID int64) (*CardView, error) {
	return u.move(ctx, userID, 1)
}

// Prev retreats the cursor with wraparound.
func (u *BrowseUsecase) Prev(ctx context.Context, userID int64) (*CardView, error) {
	return u.move(ctx, userID, -1)
}

func (u *BrowseUsecase) move(ctx context.Context, userID int64, delta int) (*CardView, error) {
	browse, err := u.browseState(userID)
	if err != nil {
		return nil, err
	}
	n := len(browse.IDs)
	browse.Cursor = ((browse.Cursor+delta)%n + n) % n
	return u.current(ctx, userID, browse)
}

func (u *BrowseUsecase) browseState(userID int64) (*session.Browse, error) {
	sess, ok := u.sessions.Peek(userID)
	if !ok || sess.Browse == nil || len(sess.Browse.IDs) == 0 {
		return nil, apperror.Conflict("Your browsing session expired. Pick a direction:")
	}
	return sess.Browse, nil
}

func (u *BrowseUsecase) current(ctx context.Context, userID int64, browse *session.Browse) (*CardView, error) {
	trainer, err := u.trainers.GetByID(ctx, browse.IDs[browse.Cursor])
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("This trainer is no longer available.")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	liked, err := u.likes.Exists(ctx, userID, trainer.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &CardView{
		Trainer:      trainer,
		Index:        browse.Cursor,
		Total:        len(browse.IDs),
		AlreadyLiked: liked,
		Direction:    browse.Direction,
	}, nil
}

// Like spends one balance unit and records the like. The duplicate check
// makes a repeat a benign no-op; the decrement and the insert are separate
// statements, so a failed insert is compensated by re-crediting the spent
// like.
func (u *BrowseUsecase) Like(ctx context.Context, userID int64, username string, trainerID int64) (*LikeResult, error) {
	liked, err := u.likes.Exists(ctx, userID, trainerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if liked {
		return &LikeResult{Outcome: LikeDuplicate}, nil
	}

	ok, err := u.clients.SpendLike(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !ok {
		return &LikeResult{Outcome: LikeNoBalance}, nil
	}

	like := &domain.Like{ClientID: userID, ClientUsername: username, TrainerID: trainerID}
	if err := u.likes.Create(ctx, like); err != nil {
		if creditErr := u.clients.CreditLikes(ctx, userID, 1); creditErr != nil {
			logger.Log.Error("like compensation failed",
				"client_id", userID, "trainer_id", trainerID, "error", creditErr)
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return &LikeResult{Outcome: LikeDuplicate}, nil
		}
		return nil, apperror.Internal(err)
	}

	trainer, err := u.trainers.GetByID(ctx, trainerID)
	if err != nil {
		// The like stands; the card just cannot be refreshed.
		return &LikeResult{Outcome: LikeOK}, nil
	}

	contact := contactLine(username, userID)
	text := fmt.Sprintf("You have a new like!\n\nA client is interested in your services.\nContact: %s\n\nReach out to discuss the details.", contact)
	if err := u.notifier.SendText(ctx, trainer.UserID, text); err != nil {
		logger.Log.Warn("like notification failed",
			"trainer_user_id", trainer.UserID, "error", err)
	}

	return &LikeResult{Outcome: LikeOK, Trainer: trainer}, nil
}

// Balance returns the client's remaining likes; a missing client row reads
// as zero.
func (u *BrowseUsecase) Balance(ctx context.Context, userID int64) (int, error) {
	client, err := u.clients.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return client.LikesCount, nil
}

// LikedPage returns one fixed-size page of the client's liked profiles.
// The page index is clamped into range.
func (u *BrowseUsecase) LikedPage(ctx context.Context, userID int64, page int) (*LikedList, error) {
	all, err := u.likes.ListByClient(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(all) == 0 {
		return &LikedList{}, nil
	}

	size := u.cfg.LikedPageSize
	totalPages := (len(all) + size - 1) / size
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * size
	end := start + size
	if end > len(all) {
		end = len(all)
	}

	var entries []domain.Trainer
	for _, like := range all[start:end] {
		trainer, err := u.trainers.GetByID(ctx, like.TrainerID)
		if errors.Is(err, domain.ErrNotFound) {
			continue // profile deleted since the like was placed
		}
		if err != nil {
			return nil, apperror.Internal(err)
		}
		entries = append(entries, *trainer)
	}

	return &LikedList{
		Entries:    entries,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(all),
	}, nil
}

// LikedProfile renders a single liked profile in read-only mode.
func (u *BrowseUsecase) LikedProfile(ctx context.Context, trainerID int64) (*domain.Trainer, error) {
	trainer, err := u.trainers.GetByID(ctx, trainerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("This trainer is no longer available.")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return trainer, nil
}

// Tariffs exposes the refill price list.
func (u *BrowseUsecase) Tariffs() []config.Tariff {
	return u.cfg.Tariffs
}

// RequestRefill files a refill request with the admins. It never credits
// the balance; a human admin follows up and credits separately.
func (u *BrowseUsecase) RequestRefill(ctx context.Context, userID int64, username string, likes int) (string, config.Tariff, error) {
	tariff, ok := u.cfg.TariffFor(likes)
	if !ok {
		return "", config.Tariff{}, apperror.BadRequest("Unknown tariff. Pick one from the buttons.")
	}

	requestID := uuid.NewString()
	text := fmt.Sprintf("Refill request %s\n\nClient: %s\nTariff: %d likes for %d.\n\nCredit with /addlikes after payment.",
		requestID, contactLine(username, userID), tariff.Likes, tariff.Price)
	for _, adminID := range u.cfg.AdminIDs {
		if err := u.notifier.SendText(ctx, adminID, text); err != nil {
			logger.Log.Warn("refill request delivery failed",
				"admin_id", adminID, "request_id", requestID, "error", err)
		}
	}
	return requestID, tariff, nil
}

// EndBrowse clears the browsing cursor, keeping nothing stale around when
// the client returns to the direction menu.
func (u *BrowseUsecase) EndBrowse(userID int64) {
	if sess, ok := u.sessions.Peek(userID); ok {
		sess.Browse = nil
	}
}

func contactLine(username string, userID int64) string {
	if username != "" {
		return "@" + username
	}
	return fmt.Sprintf("ID: %d", userID)
}
