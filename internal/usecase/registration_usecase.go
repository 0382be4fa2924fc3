package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lavrov08/trainers-tinder/config"
	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/internal/session"
	"github.com/lavrov08/trainers-tinder/pkg/apperror"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

// RegistrationUsecase drives the linear trainer sign-up state machine:
// direction, name, age, experience, about, photo, then a pending
// submission fanned out to every admin for review.
type RegistrationUsecase struct {
	trainers domain.TrainerRepository
	sessions *session.Store
	notifier domain.Notifier
	validate *validator.Validate
	cfg      *config.Config
}

func NewRegistrationUsecase(
	trainers domain.TrainerRepository,
	sessions *session.Store,
	notifier domain.Notifier,
	validate *validator.Validate,
	cfg *config.Config,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		trainers: trainers,
		sessions: sessions,
		notifier: notifier,
		validate: validate,
		cfg:      cfg,
	}
}

// registrationForm is the assembled submission; the tags are the single
// source of truth for the field limits.
type registrationForm struct {
	Direction  string `validate:"required"`
	Name       string `validate:"required,min=2,max=50"`
	Age        int    `validate:"required,gte=16,lte=100"`
	Experience string `validate:"required,min=2,max=100"`
	About      string `validate:"required,min=20,max=1000"`
}

// Begin applies the re-entry guard. It returns the user's existing profile
// if one exists; the caller informs the user based on its status. When the
// user has no profile, or the previous one was rejected, the session is
// armed at the direction step.
func (u *RegistrationUsecase) Begin(ctx context.Context, userID int64) (*domain.Trainer, error) {
	existing, err := u.trainers.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing == nil || existing.Status == domain.StatusRejected {
		sess := u.sessions.Get(userID)
		*sess = session.Session{Step: session.StepDirection}
	}
	return existing, nil
}

// Step reports what the registration is currently waiting on.
func (u *RegistrationUsecase) Step(userID int64) session.Step {
	sess, ok := u.sessions.Peek(userID)
	if !ok {
		return session.StepNone
	}
	return sess.Step
}

// Cancel drops any in-progress registration.
func (u *RegistrationUsecase) Cancel(userID int64) {
	u.sessions.Clear(userID)
}

func (u *RegistrationUsecase) atStep(userID int64, step session.Step) (*session.Session, error) {
	sess, ok := u.sessions.Peek(userID)
	if !ok || sess.Step != step {
		return nil, apperror.Conflict("Not expecting this input right now. Use /start to begin.")
	}
	return sess, nil
}

func (u *RegistrationUsecase) SetDirection(userID int64, direction string) error {
	sess, err := u.atStep(userID, session.StepDirection)
	if err != nil {
		return err
	}
	if !u.cfg.HasDirection(direction) {
		return apperror.BadRequest("Please pick a direction from the buttons.")
	}
	sess.Form.Direction = direction
	sess.Step = session.StepName
	return nil
}

func (u *RegistrationUsecase) SetName(userID int64, text string) error {
	sess, err := u.atStep(userID, session.StepName)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(text)
	if err := u.validate.Var(name, "required,min=2,max=50"); err != nil {
		return apperror.BadRequest("The name must be between 2 and 50 characters. Try again:")
	}
	sess.Form.Name = name
	sess.Step = session.StepAge
	return nil
}

func (u *RegistrationUsecase) SetAge(userID int64, text string) error {
	sess, err := u.atStep(userID, session.StepAge)
	if err != nil {
		return err
	}
	age, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		return apperror.BadRequest("Please enter your age as a number:")
	}
	if err := u.validate.Var(age, "gte=16,lte=100"); err != nil {
		return apperror.BadRequest("Please enter a valid age (16 to 100):")
	}
	sess.Form.Age = age
	sess.Step = session.StepExperience
	return nil
}

func (u *RegistrationUsecase) SetExperience(userID int64, text string) error {
	sess, err := u.atStep(userID, session.StepExperience)
	if err != nil {
		return err
	}
	experience := strings.TrimSpace(text)
	if err := u.validate.Var(experience, "required,min=2,max=100"); err != nil {
		return apperror.BadRequest("Describe your experience in 2 to 100 characters:")
	}
	sess.Form.Experience = experience
	sess.Step = session.StepAbout
	return nil
}

func (u *RegistrationUsecase) SetAbout(userID int64, text string) error {
	sess, err := u.atStep(userID, session.StepAbout)
	if err != nil {
		return err
	}
	about := strings.TrimSpace(text)
	if err := u.validate.Var(about, "required,min=20,max=1000"); err != nil {
		return apperror.BadRequest("Tell clients more about yourself: 20 to 1000 characters.")
	}
	sess.Form.About = about
	sess.Step = session.StepPhoto
	return nil
}

// AttachPhoto captures the photo reference; the registration stays at the
// photo step until Submit.
func (u *RegistrationUsecase) AttachPhoto(userID int64, photoID string) error {
	sess, err := u.atStep(userID, session.StepPhoto)
	if err != nil {
		return err
	}
	sess.Form.PhotoID = photoID
	return nil
}

// Submit validates the assembled form, upserts the profile as pending and
// fans the moderation card out to every admin. Per-admin delivery failures
// are logged and never abort the submission.
func (u *RegistrationUsecase) Submit(ctx context.Context, userID int64, username string) (*domain.Trainer, error) {
	sess, err := u.atStep(userID, session.StepPhoto)
	if err != nil {
		return nil, err
	}

	form := registrationForm{
		Direction:  sess.Form.Direction,
		Name:       sess.Form.Name,
		Age:        sess.Form.Age,
		Experience: sess.Form.Experience,
		About:      sess.Form.About,
	}
	if err := u.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest("The profile is incomplete. Use /start to begin again.")
	}

	trainer := &domain.Trainer{
		UserID:     userID,
		Username:   username,
		Direction:  form.Direction,
		Name:       form.Name,
		Age:        form.Age,
		Experience: form.Experience,
		About:      form.About,
		PhotoID:    sess.Form.PhotoID,
		Status:     domain.StatusPending,
	}
	if err := u.trainers.Upsert(ctx, trainer); err != nil {
		return nil, apperror.Internal(err)
	}

	u.sessions.Clear(userID)

	for _, adminID := range u.cfg.AdminIDs {
		if err := u.notifier.SendModerationCard(ctx, adminID, trainer); err != nil {
			logger.Log.Warn("moderation card delivery failed",
				"admin_id", adminID, "trainer_id", trainer.ID, "error", err)
		}
	}

	return trainer, nil
}
